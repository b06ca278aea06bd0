package fuzztests

import (
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

const (
	maxSeedBytes = 64 << 10 // 64 KiB — ограничение для тестового корпуса
)

var inlineSeeds = []string{
	"",
	"int a;",
	"int main() { return 0; }\n",
	"int f() { int a <= -1; a = a ^ 2 ^ 3; a << 16; }",
	"float v[3];\nfloat f(const float x) { v[0] = x ? 1.5 : 2; return v[0]; }",
	"int f() { if (1) { } else { output 1; }; while (0) do { break; } }",
	"int f() { for (a = 0 : a < 1 : a = a + 1) { continue; } }",
	"int f() { string s <= \"a\\\"b\"; char c <= '\\n'; }",
	"int f() { g(1, 2); }",
	"int f() { @ }",
	"int f() { \"unterminated",
}

func addCorpusSeeds(f *testing.F) {
	for _, s := range inlineSeeds {
		f.Add([]byte(s))
	}
	addTestdataSeeds(f)
}

func addTestdataSeeds(f *testing.F) {
	root := filepath.Join("..", "..", "testdata")
	if _, err := os.Stat(root); err != nil {
		return
	}
	// проходим по дереву testdata, добавляем все *.mc файлы
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil || d.IsDir() || filepath.Ext(path) != ".mc" {
			return nil
		}
		// #nosec G304 -- path comes from repository testdata walk
		src, err := os.ReadFile(path)
		if err != nil {
			return nil
		}
		f.Add(clampSeed(src))
		return nil
	})
}

func clampSeed(src []byte) []byte {
	if len(src) <= maxSeedBytes {
		return append([]byte(nil), src...)
	}
	return append([]byte(nil), src[:maxSeedBytes]...)
}

func clampInput(input []byte) []byte {
	return clampSeed(input)
}
