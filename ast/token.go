// Package ast defines the token kinds, the Token struct, the operator grammar
// table and the arena-backed syntax tree shared by the tinyc lexer and parser.
//
// Tokens are the smallest meaningful units of a source file. Every token carries
// its kind, an optional text payload and its source position. Position is
// 1-based: the first character of a file is Line 1, Col 1.
package ast

import (
	"fmt"
	"strings"
)

// TokenKind identifies the category of a scanned token.
// The zero value is EndOfInput.
type TokenKind int

const (
	// ── Special ────────────────────────────────────────────────────────────────

	// EndOfInput marks the end of the token stream. A lexer keeps returning it
	// once the input is exhausted.
	EndOfInput TokenKind = iota

	// ── Arithmetic operators ────────────────────────────────────────────────────

	OpMultiply // *
	OpDivide   // /
	OpMod      // %
	OpAdd      // +
	OpSubtract // -
	// OpNegate is never produced by the lexer; it can only arrive through a
	// persisted token dump. A '-' in prefix position is negation regardless.
	OpNegate
	OpNot // !

	// ── Comparison operators ────────────────────────────────────────────────────

	OpLess         // <
	OpLessEqual    // <=
	OpGreater      // >
	OpGreaterEqual // >=
	OpEqual        // ==
	OpNotEqual     // !=

	// ── Assignment and logic ────────────────────────────────────────────────────

	OpAssign // =
	OpAnd    // &&
	OpOr     // ||

	// ── Keywords ───────────────────────────────────────────────────────────────

	KeywordIf
	KeywordElse
	KeywordWhile
	KeywordPrint
	KeywordPutc

	// ── Delimiters ──────────────────────────────────────────────────────────────

	LeftParen  // (
	RightParen // )
	LeftBrace  // {
	RightBrace // }
	Semicolon  // ;
	Comma      // ,

	// ── Literals ───────────────────────────────────────────────────────────────

	// Identifier is a name: letters, digits and '_' with at least one non-digit.
	Identifier
	// Integer is a run of decimal digits, or the code point of a char literal.
	Integer
	// String is a double-quoted literal; the payload is the raw text between
	// the quotes with no escape interpretation.
	String

	numTokenKinds
)

// tokenNames holds the canonical dump names. They are part of the token text
// format and must not change.
var tokenNames = [numTokenKinds]string{
	EndOfInput:     "End_of_input",
	OpMultiply:     "Op_multiply",
	OpDivide:       "Op_divide",
	OpMod:          "Op_mod",
	OpAdd:          "Op_add",
	OpSubtract:     "Op_subtract",
	OpNegate:       "Op_negate",
	OpNot:          "Op_not",
	OpLess:         "Op_less",
	OpLessEqual:    "Op_lessequal",
	OpGreater:      "Op_greater",
	OpGreaterEqual: "Op_greaterequal",
	OpEqual:        "Op_equal",
	OpNotEqual:     "Op_notequal",
	OpAssign:       "Op_assign",
	OpAnd:          "Op_and",
	OpOr:           "Op_or",
	KeywordIf:      "Keyword_if",
	KeywordElse:    "Keyword_else",
	KeywordWhile:   "Keyword_while",
	KeywordPrint:   "Keyword_print",
	KeywordPutc:    "Keyword_putc",
	LeftParen:      "LeftParen",
	RightParen:     "RightParen",
	LeftBrace:      "LeftBrace",
	RightBrace:     "RightBrace",
	Semicolon:      "Semicolon",
	Comma:          "Comma",
	Identifier:     "Identifier",
	Integer:        "Integer",
	String:         "String",
}

var kindsByName = func() map[string]TokenKind {
	m := make(map[string]TokenKind, numTokenKinds)
	for k, name := range tokenNames {
		m[name] = TokenKind(k)
	}
	return m
}()

// String returns the canonical dump name of the kind, e.g. "Op_lessequal".
func (k TokenKind) String() string {
	if k < 0 || k >= numTokenKinds {
		return fmt.Sprintf("TokenKind(%d)", int(k))
	}
	return tokenNames[k]
}

// LookupKind resolves a canonical dump name back to its TokenKind.
func LookupKind(name string) (TokenKind, bool) {
	k, ok := kindsByName[name]
	return k, ok
}

// keywords maps the literal text of every keyword to its TokenKind.
var keywords = map[string]TokenKind{
	"if":    KeywordIf,
	"else":  KeywordElse,
	"print": KeywordPrint,
	"putc":  KeywordPutc,
	"while": KeywordWhile,
}

// LookupIdent checks whether ident is a reserved keyword and returns the
// corresponding TokenKind. If ident is not a keyword, Identifier is returned.
func LookupIdent(ident string) TokenKind {
	if k, ok := keywords[ident]; ok {
		return k
	}
	return Identifier
}

// Token is a single lexical unit. Text is only meaningful for Identifier,
// Integer and String tokens.
type Token struct {
	Kind TokenKind
	Text string
	Line int
	Col  int
}

// String renders the token as one line of the token dump format:
//
//	<line> <col> <kind> [payload]
//
// Identifier and Integer payloads are written as-is, String payloads are
// wrapped in double quotes. Trailing blanks are trimmed.
func (t Token) String() string {
	s := fmt.Sprintf("%-5d %-5d %-15s", t.Line, t.Col, t.Kind)
	switch t.Kind {
	case Integer, Identifier:
		s += t.Text
	case String:
		s += `"` + t.Text + `"`
	}
	return strings.TrimRight(s, " ")
}
