package driver

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/nalgeon/be"

	"minic/internal/astfmt"
	"minic/internal/config"
	"minic/internal/diag"
	"minic/internal/token"
	"minic/internal/trace"
)

func writeUnit(t *testing.T, dir, name, src string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(src), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func defaultOptions() Options {
	return Options{Config: config.Default()}
}

func TestCheckKeepsInputOrder(t *testing.T) {
	dir := t.TempDir()
	paths := []string{
		writeUnit(t, dir, "ok.mc", "int f() { int a; a = 1; }"),
		writeUnit(t, dir, "undeclared.mc", "int f() { b = 1; }"),
		writeUnit(t, dir, "shift.mc", "int f() { int a; a << 20; }"),
		writeUnit(t, dir, "ok2.mc", "int a;"),
	}
	opts := defaultOptions()
	opts.Jobs = 4
	units, err := Check(context.Background(), paths, opts)
	be.Err(t, err, nil)
	be.Equal(t, len(units), 4)
	for i, u := range units {
		be.Equal(t, u.Path, paths[i])
	}
	be.Err(t, units[0].Err, nil)
	be.Equal(t, diag.CodeOf(units[1].Err), diag.ErrUndeclared)
	be.Equal(t, diag.CodeOf(units[2].Err), diag.ErrWrongParShift)
	be.Err(t, units[3].Err, nil)

	first := FirstFailure(units)
	be.Equal(t, first.Path, paths[1])
	be.Equal(t, diag.CodeOf(first.Err).ExitStatus(), 10)
}

func TestCheckFreesTree(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "a.mc", "int f() { int a; a = 1 + 2; }")
	units, err := Check(context.Background(), []string{path}, defaultOptions())
	be.Err(t, err, nil)
	u := units[0]
	be.True(t, u.Result.Root == nil)
	be.Equal(t, u.Freed.Nodes, 6)
	be.Equal(t, u.Freed.Literals, 2)
	be.Equal(t, u.Stats.Functions, 1)
}

func TestMissingFile(t *testing.T) {
	u := CheckFile(context.Background(), filepath.Join(t.TempDir(), "nope.mc"), defaultOptions(), false)
	be.True(t, u.Failed())
	be.True(t, u.File == nil)
	be.True(t, u.Lines() == nil)
	be.Equal(t, diag.CodeOf(u.Err), diag.ErrUsage)
	be.True(t, strings.Contains(u.Err.Error(), "failed to load"))
}

func TestConfigReachesChecker(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "a.mc", "int f() { int a; a << 5; }")
	opts := defaultOptions()
	opts.Config.Check.ShiftLimit = 4
	u := CheckFile(context.Background(), path, opts, false)
	be.Equal(t, diag.CodeOf(u.Err), diag.ErrWrongParShift)

	opts.Config.Scope.Buckets = 1
	u = CheckFile(context.Background(), writeUnit(t, t.TempDir(), "b.mc", "int a, b;"), opts, false)
	be.Equal(t, diag.CodeOf(u.Err), diag.ErrOutOfMemory)
}

func TestTimingsAndObserver(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "a.mc", "int f() { output 1; }")
	var (
		mu     sync.Mutex
		events []string
	)
	opts := defaultOptions()
	opts.Timings = true
	opts.Observer = func(ev PhaseEvent) {
		mu.Lock()
		defer mu.Unlock()
		mark := "+"
		if ev.Status == PhaseEnd {
			mark = "-"
		}
		events = append(events, mark+ev.Name)
	}
	units, err := Check(context.Background(), []string{path}, opts)
	be.Err(t, err, nil)
	be.Equal(t, events, []string{"+load", "-load", "+check", "-check", "+free", "-free"})

	report := units[0].Timing
	be.True(t, report != nil)
	be.Equal(t, len(report.Phases), 3)
	be.Equal(t, report.Phases[1].Note, "functions=1 globals=0")

	var text, js bytes.Buffer
	be.Err(t, WriteTimings(&text, units, false), nil)
	be.True(t, strings.HasPrefix(text.String(), path+":\ntimings:\n"))
	be.Err(t, WriteTimings(&js, units, true), nil)
	be.True(t, strings.Contains(js.String(), `"kind":"unit"`))
	be.True(t, strings.Contains(js.String(), `"name":"check"`))
}

func TestTraceSpans(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "a.mc", "int f() { }")
	ring := trace.NewRingTracer(256, trace.LevelDetail, trace.FormatText)
	ctx := trace.WithTracer(context.Background(), ring)
	_, err := Check(ctx, []string{path}, defaultOptions())
	be.Err(t, err, nil)

	var names []string
	for _, ev := range ring.Snapshot() {
		if ev.Kind == trace.KindSpanBegin {
			names = append(names, ev.Name)
		}
	}
	be.Equal(t, names, []string{"check", "unit:" + path, "load", "check", "free"})
}

func TestExport(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "a.mc", "int f() { output 1; }")
	var buf bytes.Buffer
	u, err := Export(context.Background(), path, &buf, defaultOptions(), astfmt.Options{Format: astfmt.FormatTree})
	be.Err(t, err, nil)
	be.True(t, u.Result.Root != nil)
	be.Equal(t, buf.String(), "f\n  output\n    1 : int\n")
}

func TestExportStopsOnError(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "a.mc", "int f() { output \"s\"; }")
	var buf bytes.Buffer
	_, err := Export(context.Background(), path, &buf, defaultOptions(), astfmt.Options{})
	be.Equal(t, diag.CodeOf(err), diag.ErrWrongParOutput)
	be.Equal(t, buf.Len(), 0)
}

func TestTokenize(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "a.mc", "int x;")
	res, err := Tokenize(path)
	be.Err(t, err, nil)
	be.Equal(t, len(res.Tokens), 4)
	be.Equal(t, res.Tokens[3].Kind, token.EOF)

	bad := writeUnit(t, t.TempDir(), "b.mc", "int @;")
	res, err = Tokenize(bad)
	be.Equal(t, diag.CodeOf(err), diag.ErrSyntax)
	be.True(t, res.File != nil)
}

func TestObserverSeesPathAndError(t *testing.T) {
	path := writeUnit(t, t.TempDir(), "bad.mc", "int f() { x = 1; }")
	var last PhaseEvent
	opts := defaultOptions()
	opts.Observer = func(ev PhaseEvent) {
		if ev.Name == "check" && ev.Status == PhaseEnd {
			last = ev
		}
	}
	CheckFile(context.Background(), path, opts, false)
	be.Equal(t, last.Path, path)
	be.Equal(t, diag.CodeOf(last.Err), diag.ErrUndeclared)
}
