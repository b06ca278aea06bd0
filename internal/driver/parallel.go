package driver

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"minic/internal/trace"
)

// Check checks every path, up to jobs files at a time. Units come back in
// input order whatever order they finish in; a failing unit does not stop
// the others. The error is non-nil only when ctx is cancelled.
func Check(ctx context.Context, paths []string, opts Options) ([]*Unit, error) {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeDriver, "check", trace.ParentID(ctx))
	ctx = trace.WithSpan(ctx, span)

	jobs := opts.Jobs
	if jobs <= 0 {
		jobs = opts.Config.Check.Jobs
	}
	if jobs <= 0 {
		jobs = runtime.GOMAXPROCS(0)
	}

	// индекс i уникален для горутины, мьютекс не нужен
	units := make([]*Unit, len(paths))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(jobs, len(paths))))
	for i, path := range paths {
		g.Go(func() error {
			select {
			case <-gctx.Done():
				return gctx.Err()
			default:
			}
			units[i] = CheckFile(gctx, path, opts, false)
			return nil
		})
	}
	err := g.Wait()

	failed := 0
	for _, u := range units {
		if u != nil && u.Failed() {
			failed++
		}
	}
	span.WithExtra("files", fmt.Sprint(len(paths))).End(fmt.Sprintf("failed=%d", failed))
	return units, err
}

// FirstFailure returns the first failed unit in input order, or nil.
func FirstFailure(units []*Unit) *Unit {
	for _, u := range units {
		if u != nil && u.Failed() {
			return u
		}
	}
	return nil
}
