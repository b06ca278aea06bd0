// Package diagfmt prints token streams for the tokenize command.
package diagfmt

import (
	"encoding/json"
	"fmt"
	"io"

	"minic/internal/token"
)

// TokenOutput — токен в JSON.
type TokenOutput struct {
	Kind   string `json:"kind"`
	Text   string `json:"text,omitempty"`
	Value  string `json:"value,omitempty"` // значение литерала после escape-обработки
	Line   uint32 `json:"line"`
	Column uint32 `json:"col"`
	Length uint16 `json:"len"`
}

func literalValue(tok token.Token) string {
	if !tok.IsLiteral() {
		return ""
	}
	return tok.Lit.String()
}

// FormatTokensPretty выводит токены в человекочитаемом формате
func FormatTokensPretty(w io.Writer, tokens []token.Token) error {
	for i, tok := range tokens {
		if _, err := fmt.Fprintf(w, "%3d: %-12s", i+1, tok.Kind.String()); err != nil {
			return err
		}
		if tok.Text != "" {
			fmt.Fprintf(w, " %q", tok.Text)
		}
		end := tok.Loc.End()
		if end > tok.Loc.Column {
			end--
		}
		fmt.Fprintf(w, " at %d:%d-%d", tok.Loc.Line, tok.Loc.Column, end)
		if v := literalValue(tok); v != "" && v != tok.Text {
			fmt.Fprintf(w, " = %q", v)
		}
		if _, err := fmt.Fprintln(w); err != nil {
			return err
		}
		if tok.Kind == token.EOF {
			break
		}
	}
	return nil
}

// FormatTokensJSON выводит токены в JSON формате
func FormatTokensJSON(w io.Writer, tokens []token.Token) error {
	output := make([]TokenOutput, 0, len(tokens))
	for _, tok := range tokens {
		output = append(output, TokenOutput{
			Kind:   tok.Kind.String(),
			Text:   tok.Text,
			Value:  literalValue(tok),
			Line:   tok.Loc.Line,
			Column: tok.Loc.Column,
			Length: tok.Loc.Length,
		})
		if tok.Kind == token.EOF {
			break
		}
	}
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(output)
}
