package main

import (
	"fmt"
	"io"

	"minic/internal/diag"
	"minic/internal/source"
)

// reportedError carries the exit status of an error already rendered.
type reportedError struct{ status int }

func (e *reportedError) Error() string { return fmt.Sprintf("exit status %d", e.status) }

// render writes err against lines and returns its exit status.
func render(w io.Writer, err error, lines source.LineSource, useColor bool) int {
	r := diag.NewReporter(w, lines, useColor)
	if de, ok := diag.As(err); ok {
		r.Render(de)
	} else {
		r.Render(diag.New(diag.ErrUsage, err.Error()))
	}
	return diag.CodeOf(err).ExitStatus()
}
