package diag

import (
	"errors"
	"strings"

	"minic/internal/source"
)

// Error is a fatal diagnostic: a code, a message and the source locations
// it concerns (primary first).
type Error struct {
	Code      Code
	Message   string
	Locations []source.Location
	cause     error
}

// New creates an error whose message is the code title, optionally
// followed by detail.
func New(code Code, detail string, locs ...source.Location) *Error {
	msg := code.Title()
	if detail != "" {
		msg += ": " + detail
	}
	return &Error{Code: code, Message: msg, Locations: locs}
}

// Resource wraps an underlying failure (size overflow, etc.) into a
// resource-class error.
func Resource(code Code, cause error) *Error {
	e := &Error{Code: code, Message: code.Title(), cause: cause}
	if cause != nil {
		e.Message += ": " + cause.Error()
	}
	return e
}

func (e *Error) Error() string {
	var sb strings.Builder
	if loc, ok := e.Primary(); ok {
		sb.WriteString(loc.String())
		sb.WriteString(": ")
	}
	sb.WriteString(SevError.String())
	sb.WriteString(": ")
	sb.WriteString(e.Message)
	return sb.String()
}

func (e *Error) Unwrap() error { return e.cause }

// Primary returns the first valid location.
func (e *Error) Primary() (source.Location, bool) {
	for _, loc := range e.Locations {
		if loc.IsValid() {
			return loc, true
		}
	}
	return source.Location{}, false
}

// With appends further locations.
func (e *Error) With(locs ...source.Location) *Error {
	e.Locations = append(e.Locations, locs...)
	return e
}

// As extracts an *Error from err.
func As(err error) (*Error, bool) {
	var de *Error
	if errors.As(err, &de) {
		return de, true
	}
	return nil, false
}

// CodeOf returns the code carried by err, ErrUsage for foreign errors and
// UnknownCode for nil.
func CodeOf(err error) Code {
	if err == nil {
		return UnknownCode
	}
	if de, ok := As(err); ok {
		return de.Code
	}
	return ErrUsage
}
