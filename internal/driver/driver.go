// Package driver runs the front end over files: load, lex, parse and
// check, with tracing and phase timings around each step.
package driver

import (
	"context"
	"fmt"
	"time"

	"minic/internal/ast"
	"minic/internal/config"
	"minic/internal/diag"
	"minic/internal/observ"
	"minic/internal/parser"
	"minic/internal/sema"
	"minic/internal/source"
	"minic/internal/trace"
)

// Options configures a run.
type Options struct {
	Config  config.Config
	Jobs    int  // overrides Config.Check.Jobs when > 0
	Timings bool // collect per-unit phase timings
	// Observer, when set, sees every phase boundary.
	Observer PhaseObserver
}

// Unit is the outcome of checking one file.
type Unit struct {
	Path   string
	File   *source.File // nil when the file could not be loaded
	Result *parser.Result
	Err    error
	Stats  sema.Stats
	Freed  ast.FreeStats
	Timing *observ.Report
}

// Failed reports whether the unit stopped on an error.
func (u *Unit) Failed() bool { return u.Err != nil }

// Lines returns the unit's source for diagnostics, nil if it never loaded.
func (u *Unit) Lines() source.LineSource {
	if u.File == nil {
		return nil
	}
	return u.File
}

type phaseRun struct {
	path     string
	timer    *observ.Timer
	observer PhaseObserver
	tracer   trace.Tracer
	parent   uint64
}

func (r *phaseRun) run(name string, fn func() (string, error)) error {
	idx := -1
	if r.timer != nil {
		idx = r.timer.Begin(name)
	}
	r.observer.emit(PhaseEvent{Path: r.path, Name: name, Status: PhaseStart})
	span := trace.Begin(r.tracer, trace.ScopePass, name, r.parent)
	start := time.Now()
	note, err := fn()
	elapsed := time.Since(start)
	if err != nil {
		note = diag.CodeOf(err).ID()
	}
	span.End(note)
	if r.timer != nil {
		r.timer.End(idx, note)
	}
	r.observer.emit(PhaseEvent{Path: r.path, Name: name, Status: PhaseEnd, Elapsed: elapsed, Err: err})
	return err
}

// CheckFile loads path and checks it. With keepTree the syntax tree stays
// in the result; otherwise it is freed before returning.
func CheckFile(ctx context.Context, path string, opts Options, keepTree bool) *Unit {
	tracer := trace.FromContext(ctx)
	span := trace.Begin(tracer, trace.ScopeUnit, "unit:"+path, trace.ParentID(ctx))
	unit := &Unit{Path: path}
	run := &phaseRun{path: path, observer: opts.Observer, tracer: tracer, parent: span.ID()}
	if opts.Timings {
		run.timer = observ.NewTimer()
	}

	fs := source.NewFileSet()
	unit.Err = run.run("load", func() (string, error) {
		id, err := fs.Load(path)
		if err != nil {
			return "", fmt.Errorf("failed to load %s: %w", path, err)
		}
		unit.File = fs.Get(id)
		return fmt.Sprintf("%d bytes", len(unit.File.Content)), nil
	})
	if unit.Err == nil {
		unit.Err = run.run("check", func() (string, error) {
			res, err := parser.Parse(unit.File, opts.Config.SemaOptions(tracer))
			unit.Result = res
			if res != nil {
				unit.Stats = res.Checker.Stats()
			}
			if err != nil {
				return "", err
			}
			return fmt.Sprintf("functions=%d globals=%d", unit.Stats.Functions, unit.Stats.Globals), nil
		})
	}
	if !keepTree && unit.Result != nil && unit.Result.Root != nil {
		_ = run.run("free", func() (string, error) {
			unit.Freed = ast.Free(unit.Result.Root)
			unit.Result.Root = nil
			return fmt.Sprintf("nodes=%d", unit.Freed.Nodes), nil
		})
	}

	if run.timer != nil {
		report := run.timer.Report()
		unit.Timing = &report
	}
	status := "ok"
	if unit.Err != nil {
		status = diag.CodeOf(unit.Err).ID()
	}
	span.End(status)
	return unit
}
