package diag

import (
	"bytes"
	"errors"
	"testing"

	"minic/internal/source"
)

type lines []string

func (l lines) Line(n uint32) string {
	if n == 0 || int(n) > len(l) {
		return ""
	}
	return l[n-1]
}

func TestRenderPrimaryOnly(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, lines{"int x;", "  x = y + 1;"}, false)

	r.Render(New(ErrUndeclared, "y", source.Location{Line: 2, Column: 7, Length: 1}))

	want := "2:7: error: undeclared identifier symbol: y\n" +
		"    |   x = y + 1;\n" +
		"    |       ^\n"
	if buf.String() != want {
		t.Errorf("render mismatch\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestRenderSecondaryLocations(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, lines{"string s;", "int i;", "i = i + s;"}, false)

	err := New(ErrStringToX, "", source.Location{Line: 3, Column: 5, Length: 5}).
		With(source.Location{Line: 1, Column: 8, Length: 1})
	r.Render(err)

	want := "3:5: error: conversion of string symbol\n" +
		"    | i = i + s;\n" +
		"    |     ^~~~~\n" +
		"1:8: note: appeared here\n" +
		"    | string s;\n" +
		"    |        ^\n"
	if buf.String() != want {
		t.Errorf("render mismatch\n got: %q\nwant: %q", buf.String(), want)
	}
}

func TestRenderWithoutLocations(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, false)
	r.Render(New(ErrDeclared, "x"))
	if got := buf.String(); got != "error: symbol was already declared: x\n" {
		t.Errorf("got %q", got)
	}
}

func TestUnderline(t *testing.T) {
	tests := []struct {
		name   string
		line   string
		col    uint32
		length uint16
		want   string
	}{
		{"first column", "abc", 1, 3, "^~~"},
		{"zero length", "abc", 2, 0, " ^"},
		{"tabs kept", "\tx = 1;", 2, 1, "\t^"},
		{"wide runes", "好 x", 5, 1, "   ^"},
		{"past end", "ab", 9, 4, "  ^"},
		{"zero column", "ab", 0, 1, "^"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Underline(tt.line, tt.col, tt.length); got != tt.want {
				t.Errorf("Underline(%q, %d, %d) = %q, want %q", tt.line, tt.col, tt.length, got, tt.want)
			}
		})
	}
}

func TestFatalExitsWithCode(t *testing.T) {
	var buf bytes.Buffer
	got := -1
	r := &Reporter{Out: &buf, Exit: func(code int) { got = code }}

	r.Fatal(New(ErrWrongParShift, "", source.Location{Line: 1, Column: 1, Length: 1}))
	if got != 53 {
		t.Errorf("exit code = %d, want 53", got)
	}

	r.Fatal(errors.New("boom"))
	if got != int(ErrUsage) {
		t.Errorf("exit code = %d, want %d", got, ErrUsage)
	}

	got = -1
	r.Fatal(nil)
	if got != -1 {
		t.Errorf("nil error must not exit")
	}
}

func TestCodeIDs(t *testing.T) {
	tests := map[Code]string{
		ErrSyntax:      "SYN0002",
		ErrUndeclared:  "DCL0010",
		ErrFunction:    "KND0022",
		ErrStringSize:  "TYP0033",
		ErrExcessArgs:  "ARG0041",
		ErrWrongParReturn: "PAR0052",
		ErrHashKey:     "RES0065",
		Code(99):       "E0000",
	}
	for code, want := range tests {
		if got := code.ID(); got != want {
			t.Errorf("%d.ID() = %s, want %s", code, got, want)
		}
	}
}

func TestResourceWrapsCause(t *testing.T) {
	cause := errors.New("value out of range")
	err := Resource(ErrOutOfMemory, cause)
	if !errors.Is(err, cause) {
		t.Errorf("expected cause to be unwrapped")
	}
	if err.Error() != "error: out of memory: value out of range" {
		t.Errorf("message = %q", err.Error())
	}
	if !err.Code.IsResource() {
		t.Errorf("expected resource code")
	}
}
