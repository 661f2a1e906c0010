// Package qerr defines the error kinds shared across qfilter's packages.
package qerr

import "errors"

// ParseError reports a grammar mismatch, a type-coercion failure, or an
// empty subtree encountered while building or emitting a SQLTerm.
type ParseError struct {
	Msg string
}

func (e *ParseError) Error() string { return e.Msg }

// NewParseError builds a ParseError with the given message.
func NewParseError(msg string) *ParseError {
	return &ParseError{Msg: msg}
}

// ErrLikeNotPossible is returned when a LIKE predicate is attempted
// against a DATE or TIMESTAMP column.
var ErrLikeNotPossible = errors.New("LIKE not possible")

// ErrDenied is returned when a DENIED leaf is asked to emit.
var ErrDenied = errors.New("DENIED")
