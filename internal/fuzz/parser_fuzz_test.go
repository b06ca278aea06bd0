package fuzztests

import (
	"context"
	"testing"
	"time"

	"minic/internal/ast"
	"minic/internal/diag"
	"minic/internal/parser"
	"minic/internal/sema"
	"minic/internal/source"
	"minic/internal/testkit"
)

// parseTimeout is the maximum time allowed for parsing a single input.
const parseTimeout = 5 * time.Second

func parseInput(t *testing.T, input []byte) {
	fs := source.NewFileSet()
	fileID, err := fs.AddVirtual("fuzz.mc", clampInput(input))
	if err != nil {
		t.Skip()
	}
	file := fs.Get(fileID)
	res, err := parser.Parse(file, sema.Options{})
	if err != nil {
		de, ok := diag.As(err)
		if !ok {
			t.Fatalf("uncoded error: %v", err)
		}
		if de.Code == diag.UnknownCode {
			t.Fatalf("error without a code: %v", de)
		}
		return
	}
	if err := testkit.CheckTreeInvariants(res.Root, file); err != nil {
		t.Fatalf("invariant: %v\ninput: %q", err, truncateForLog(input, 200))
	}
	ast.Free(res.Root)
}

func FuzzParserBuildsAST(f *testing.F) {
	addCorpusSeeds(f)
	f.Fuzz(func(t *testing.T, input []byte) {
		parseInput(t, input)
	})
}

// FuzzParserNoHang tests that the parser doesn't hang on any input.
func FuzzParserNoHang(f *testing.F) {
	addCorpusSeeds(f)

	f.Add([]byte("int f() { { { { } } } }"))                  // deeply nested blocks
	f.Add([]byte("int f() { int a\nint b; }"))                 // missing semicolon
	f.Add([]byte("int f() { while (1) do while (1) do ; }"))   // no block
	f.Add([]byte("int f() { a = ((((((((1)))))))); }"))        // parens
	f.Add([]byte("int f() { for (a = 0 a < 10 a = a + 1) {} }")) // for without colons

	f.Fuzz(func(t *testing.T, input []byte) {
		ctx, cancel := context.WithTimeout(context.Background(), parseTimeout)
		defer cancel()

		done := make(chan struct{})
		go func() {
			defer close(done)
			fs := source.NewFileSet()
			fileID, err := fs.AddVirtual("fuzz.mc", clampInput(input))
			if err != nil {
				return
			}
			_, _ = parser.Parse(fs.Get(fileID), sema.Options{})
		}()

		select {
		case <-done:
		case <-ctx.Done():
			t.Fatalf("parser hang detected: parsing took longer than %v\ninput (%d bytes): %q",
				parseTimeout, len(input), truncateForLog(input, 200))
		}
	})
}

// truncateForLog truncates input for logging purposes
func truncateForLog(input []byte, maxLen int) []byte {
	if len(input) <= maxLen {
		return input
	}
	return append(input[:maxLen:maxLen], []byte("...")...)
}
