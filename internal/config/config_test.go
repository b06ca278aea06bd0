package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/nalgeon/be"

	"minic/internal/trace"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", path, err)
	}
	return path
}

func TestDefaults(t *testing.T) {
	cfg := Default()
	be.Equal(t, cfg.Scope.Buckets, 521)
	be.Equal(t, cfg.Scope.Stack, 128)
	be.Equal(t, cfg.Output.Color, "auto")
	be.Equal(t, cfg.Output.Export, "edges")
	be.Equal(t, cfg.Check.Jobs, 0)
	be.Equal(t, cfg.Check.ShiftLimit, int32(16))
	be.Err(t, cfg.Validate(), nil)
}

func TestLoadTOML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "minic.toml", `
[scope]
buckets = 31

[output]
export = "tree"

[check]
jobs = 2
shift_limit = 8
`)
	cfg, err := Load(path)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Path, path)
	be.Equal(t, cfg.Scope.Buckets, 31)
	be.Equal(t, cfg.Scope.Stack, 128) // не задан, остаётся по умолчанию
	be.Equal(t, cfg.Output.Export, "tree")
	be.Equal(t, cfg.Output.Color, "auto")
	be.Equal(t, cfg.Check.Jobs, 2)
	be.Equal(t, cfg.Check.ShiftLimit, int32(8))
}

func TestLoadYAML(t *testing.T) {
	path := writeFile(t, t.TempDir(), "minic.yaml", `
scope:
  stack: 4
output:
  color: "off"
trace:
  level: debug
  mode: ring
`)
	cfg, err := Load(path)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Scope.Stack, 4)
	be.Equal(t, cfg.Scope.Buckets, 521)
	be.Equal(t, cfg.Output.Color, "off")

	tc, err := cfg.TraceConfig()
	be.Err(t, err, nil)
	be.Equal(t, tc.Level, trace.LevelDebug)
	be.Equal(t, tc.Mode, trace.ModeRing)
}

func TestLoadEmptyYAML(t *testing.T) {
	cfg, err := Load(writeFile(t, t.TempDir(), "minic.yml", ""))
	be.Err(t, err, nil)
	be.Equal(t, cfg.Scope.Buckets, 521)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name    string
		file    string
		content string
		frag    string
	}{
		{"unknown toml key", "a.toml", "[scope]\nbucket = 3\n", "unknown keys: scope.bucket"},
		{"unknown yaml key", "b.yaml", "scope:\n  bucket: 3\n", "field bucket not found"},
		{"bad toml", "c.toml", "[scope\n", "failed to parse TOML"},
		{"bad color", "d.toml", "[output]\ncolor = \"maybe\"\n", "output.color"},
		{"zero buckets", "e.toml", "[scope]\nbuckets = 0\n", "scope.buckets"},
		{"bad export", "f.yaml", "output:\n  export: dot\n", "output.export"},
		{"bad level", "g.toml", "[trace]\nlevel = \"loud\"\n", "trace.level"},
		{"extension", "h.json", "{}", "unsupported config format"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, dir, tt.file, tt.content))
			be.Err(t, err)
			if !strings.Contains(err.Error(), tt.frag) {
				t.Errorf("error %q lacks %q", err, tt.frag)
			}
		})
	}
}

func TestFindWalksUp(t *testing.T) {
	root := t.TempDir()
	want := writeFile(t, root, "minic.yaml", "scope:\n  buckets: 7\n")
	deep := filepath.Join(root, "a", "b")
	be.Err(t, os.MkdirAll(deep, 0o755), nil)

	path, ok, err := Find(deep)
	be.Err(t, err, nil)
	be.True(t, ok)
	be.Equal(t, path, want)

	cfg, err := Resolve("", deep)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Scope.Buckets, 7)
}

func TestFindPrefersTOML(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "minic.yaml", "")
	want := writeFile(t, root, "minic.toml", "")
	path, ok, err := Find(root)
	be.Err(t, err, nil)
	be.True(t, ok)
	be.Equal(t, path, want)
}

func TestResolveExplicitWins(t *testing.T) {
	root := t.TempDir()
	writeFile(t, root, "minic.toml", "[scope]\nbuckets = 3\n")
	explicit := writeFile(t, t.TempDir(), "other.toml", "[scope]\nbuckets = 5\n")
	cfg, err := Resolve(explicit, root)
	be.Err(t, err, nil)
	be.Equal(t, cfg.Scope.Buckets, 5)
}

func TestSemaOptions(t *testing.T) {
	cfg := Default()
	cfg.Scope.Buckets = 11
	cfg.Check.ShiftLimit = 3
	opts := cfg.SemaOptions(trace.Nop)
	be.Equal(t, opts.Scopes.Buckets, 11)
	be.Equal(t, opts.Scopes.StackCap, 128)
	be.Equal(t, opts.ShiftLimit, int32(3))
}
