// Package diag defines the single fatal error type reported by the tinyc
// front end. There is no warning tier and no recovery: the first Error
// produced by any stage aborts the run.
package diag

import (
	"errors"
	"fmt"
)

// Kind is the taxonomy of a fatal error.
type Kind int

const (
	Lexical Kind = iota // unrecognized character, unterminated literal or comment
	Syntax              // unexpected token
	IO                  // malformed token dump and other input-layer failures
)

func (k Kind) String() string {
	switch k {
	case Lexical:
		return "lexical"
	case Syntax:
		return "syntax"
	case IO:
		return "io"
	default:
		return "unknown"
	}
}

// Error codes.
const (
	ErrUnrecognizedChar     = "L001"
	ErrUnterminatedString   = "L002"
	ErrUnterminatedComment  = "L003"
	ErrMalformedOperator    = "L004"
	ErrUnterminatedCharLit  = "L005"
	ErrExpectingPrimary     = "P001"
	ErrExpectingStatement   = "P002"
	ErrExpectedToken        = "P003"
	ErrUnexpectedEndOfInput = "P004"
	ErrMalformedDumpLine    = "R001"
	ErrUnknownTokenKind     = "R002"
)

// Error is a fatal front-end error. Line and Col are 1-based; a zero Line
// means the position is unknown.
type Error struct {
	Kind Kind
	Code string
	Line int
	Col  int
	Msg  string
}

func (e *Error) Error() string {
	if e.Line > 0 && e.Col > 0 {
		return fmt.Sprintf("%s in line %d, pos %d", e.Msg, e.Line, e.Col)
	}
	return e.Msg
}

// Lexicalf builds a lexical error at line:col.
func Lexicalf(code string, line, col int, format string, args ...any) *Error {
	return &Error{Kind: Lexical, Code: code, Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// Syntaxf builds a syntax error at line:col.
func Syntaxf(code string, line, col int, format string, args ...any) *Error {
	return &Error{Kind: Syntax, Code: code, Line: line, Col: col, Msg: fmt.Sprintf(format, args...)}
}

// IOf builds an input-layer error. line is the dump line number, or 0.
func IOf(code string, line int, format string, args ...any) *Error {
	return &Error{Kind: IO, Code: code, Line: line, Col: 1, Msg: fmt.Sprintf(format, args...)}
}

// As unwraps err to an *Error if there is one in its chain.
func As(err error) (*Error, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e, true
	}
	return nil, false
}

// Is reports whether err carries a diag.Error with the given code.
func Is(err error, code string) bool {
	e, ok := As(err)
	return ok && e.Code == code
}
