package driver

import (
	"context"
	"io"

	"minic/internal/astfmt"
	"minic/internal/trace"
)

// Export checks path and, when it is valid, writes its tree to w. The
// returned unit carries the check outcome; the error is the first failure
// of either step.
func Export(ctx context.Context, path string, w io.Writer, opts Options, eopts astfmt.Options) (*Unit, error) {
	unit := CheckFile(ctx, path, opts, true)
	if unit.Failed() {
		return unit, unit.Err
	}
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopePass, "export", trace.ParentID(ctx))
	eopts.Types = unit.Result.Checker
	if eopts.File == "" {
		eopts.File = path
	}
	err := astfmt.Write(w, unit.Result.Root, eopts)
	span.End(eopts.Format.String())
	return unit, err
}
