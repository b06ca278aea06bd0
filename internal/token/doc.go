// Package token defines the lexical vocabulary of minic source files.
package token
