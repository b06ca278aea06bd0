package driver

import (
	"fmt"

	"minic/internal/lexer"
	"minic/internal/source"
	"minic/internal/token"
)

type TokenizeResult struct {
	File   *source.File
	Tokens []token.Token
}

// Tokenize lexes path to EOF. On a lexical error the result still holds
// the file, so the error can be shown against its lines.
func Tokenize(path string) (*TokenizeResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	res := &TokenizeResult{File: fs.Get(fileID)}
	res.Tokens, err = lexer.Tokenize(res.File)
	return res, err
}
