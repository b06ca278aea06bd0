package version

import (
	"strings"
	"testing"
)

func TestPrettyPlain(t *testing.T) {
	tests := []struct{ in, want string }{
		{"1.2.3", "1.2.3"},
		{" 0.1.0-dev ", "0.1.0-dev"},
		{"", "dev"},
	}
	for _, tt := range tests {
		if got := Pretty(tt.in, false); got != tt.want {
			t.Errorf("Pretty(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestPrettyColor(t *testing.T) {
	got := Pretty("1.2.3-rc1", true)
	if !strings.Contains(got, "\x1b[") {
		t.Fatalf("expected escapes in %q", got)
	}
	if !strings.HasSuffix(got, "-rc1") {
		t.Errorf("suffix lost: %q", got)
	}
	if n := strings.Count(got, "\x1b[0m"); n != 3 {
		t.Errorf("expected 3 colored parts, got %d in %q", n, got)
	}
}

func TestVersionCanBeOverridden(t *testing.T) {
	orig := Version
	t.Cleanup(func() { Version = orig })
	Version = "9.9.9"
	if Pretty(Version, false) != "9.9.9" {
		t.Errorf("override not picked up")
	}
}
