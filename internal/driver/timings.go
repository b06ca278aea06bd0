package driver

import (
	"encoding/json"
	"fmt"
	"io"

	"minic/internal/observ"
)

type timingPayload struct {
	Kind    string               `json:"kind"`
	Path    string               `json:"path,omitempty"`
	TotalMS float64              `json:"total_ms"`
	Phases  []observ.PhaseReport `json:"phases"`
}

// WriteTimings writes the per-unit timings collected with Options.Timings,
// as an aligned table or, with asJSON, one JSON object per line.
func WriteTimings(w io.Writer, units []*Unit, asJSON bool) error {
	for _, u := range units {
		if u == nil || u.Timing == nil {
			continue
		}
		if asJSON {
			data, err := json.Marshal(timingPayload{
				Kind:    "unit",
				Path:    u.Path,
				TotalMS: u.Timing.TotalMS,
				Phases:  u.Timing.Phases,
			})
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintf(w, "%s\n", data); err != nil {
				return err
			}
			continue
		}
		if _, err := fmt.Fprintf(w, "%s:\n%s", u.Path, observ.FormatReport(*u.Timing)); err != nil {
			return err
		}
	}
	return nil
}
