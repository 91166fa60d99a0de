// Package lexer implements the tinyc lexical analyzer.
//
// The lexer converts a source string into a stream of [ast.Token] values on
// demand. Call [New] to create a lexer and then call [Lexer.NextToken]
// repeatedly until you receive a token with Kind == [ast.EndOfInput].
//
// Design notes:
//   - Single-pass, rune-by-rune scanning with one character of look-ahead.
//   - No global state; every [Lexer] is independent.
//   - Line and column numbers are tracked for every token (1-based, columns
//     count runes). The column resets when the cursor moves past a newline.
//   - Comments (// … and /* … */) produce no token; scanning continues with
//     the next real token.
//   - Every error is fatal. Once NextToken has returned an error it returns
//     the same error on every later call.
package lexer

import (
	"strconv"
	"unicode"

	"github.com/metaphox/tinyc/ast"
	"github.com/metaphox/tinyc/diag"
)

// eof is the sentinel held in ch once the input is exhausted.
const eof rune = -1

// Options tunes how strictly the lexer treats malformed literals.
type Options struct {
	// StrictCharLiterals requires a closing ' after a character literal.
	// When false a missing closing quote is tolerated.
	StrictCharLiterals bool
}

// Lexer holds all state required to tokenise a single source string.
// Create one with [New]; never copy a Lexer after first use.
type Lexer struct {
	input []rune
	pos   int  // index of ch in input
	ch    rune // current character, eof when exhausted
	line  int  // 1-based line of ch
	col   int  // 1-based column of ch

	opts Options
	err  error // sticky fatal error
}

// New creates a [Lexer] for input with the default (lenient) options.
func New(input string) *Lexer {
	return NewWithOptions(input, Options{})
}

// NewWithOptions creates a [Lexer] for input using opts.
func NewWithOptions(input string, opts Options) *Lexer {
	l := &Lexer{
		input: []rune(input),
		line:  1,
		col:   1,
		opts:  opts,
	}
	l.ch = eof
	if len(l.input) > 0 {
		l.ch = l.input[0]
	}
	return l
}

// singles maps every one-character token to its kind.
var singles = map[rune]ast.TokenKind{
	'*': ast.OpMultiply,
	'%': ast.OpMod,
	'+': ast.OpAdd,
	'-': ast.OpSubtract,
	'(': ast.LeftParen,
	')': ast.RightParen,
	'{': ast.LeftBrace,
	'}': ast.RightBrace,
	';': ast.Semicolon,
	',': ast.Comma,
}

// NextToken returns the next token from the input.
//
// Whitespace and comments are skipped before each token. When the input is
// exhausted, NextToken returns an [ast.EndOfInput] token on every subsequent
// call.
func (l *Lexer) NextToken() (ast.Token, error) {
	if l.err != nil {
		return ast.Token{}, l.err
	}
	tok, err := l.scan()
	if err != nil {
		l.err = err
		return ast.Token{}, err
	}
	return tok, nil
}

func (l *Lexer) scan() (ast.Token, error) {
	for {
		l.skipWhitespace()
		line, col := l.line, l.col

		if kind, ok := singles[l.ch]; ok {
			l.advance()
			return ast.Token{Kind: kind, Line: line, Col: col}, nil
		}

		switch l.ch {
		case eof:
			return ast.Token{Kind: ast.EndOfInput, Line: line, Col: col}, nil

		// ── Division or comment ─────────────────────────────────────────────
		case '/':
			switch l.peek() {
			case '/':
				l.skipLineComment()
				continue
			case '*':
				if err := l.skipBlockComment(line, col); err != nil {
					return ast.Token{}, err
				}
				continue
			}
			l.advance()
			return ast.Token{Kind: ast.OpDivide, Line: line, Col: col}, nil

		// ── Operators that may be one or two characters ─────────────────────
		case '<':
			return l.follow('=', ast.OpLessEqual, ast.OpLess, line, col)
		case '>':
			return l.follow('=', ast.OpGreaterEqual, ast.OpGreater, line, col)
		case '=':
			return l.follow('=', ast.OpEqual, ast.OpAssign, line, col)
		case '!':
			return l.follow('=', ast.OpNotEqual, ast.OpNot, line, col)
		case '&':
			return l.follow('&', ast.OpAnd, ast.EndOfInput, line, col)
		case '|':
			return l.follow('|', ast.OpOr, ast.EndOfInput, line, col)

		// ── Literals ────────────────────────────────────────────────────────
		case '\'':
			return l.readChar(line, col)
		case '"':
			return l.readString(line, col)

		default:
			return l.readIdentOrInteger(line, col)
		}
	}
}

// ── Internal helpers ──────────────────────────────────────────────────────────

// advance moves the cursor one character forward. Moving past a newline bumps
// the line counter and restarts the column at 1.
func (l *Lexer) advance() {
	if l.ch == eof {
		return
	}
	if l.ch == '\n' {
		l.line++
		l.col = 0
	}
	l.pos++
	l.col++
	if l.pos >= len(l.input) {
		l.ch = eof
		return
	}
	l.ch = l.input[l.pos]
}

// peek returns the character after ch without consuming anything.
func (l *Lexer) peek() rune {
	if l.pos+1 >= len(l.input) {
		return eof
	}
	return l.input[l.pos+1]
}

func (l *Lexer) skipWhitespace() {
	for {
		switch l.ch {
		case ' ', '\t', '\n', '\r', '\f', '\v':
			l.advance()
		default:
			return
		}
	}
}

// follow scans a token that is either one character or that character
// followed by expect. A fallback of EndOfInput means the single character is
// not a token of its own.
func (l *Lexer) follow(expect rune, yes, no ast.TokenKind, line, col int) (ast.Token, error) {
	first := l.ch
	l.advance()
	if l.ch == expect {
		l.advance()
		return ast.Token{Kind: yes, Line: line, Col: col}, nil
	}
	if no == ast.EndOfInput {
		return ast.Token{}, diag.Lexicalf(diag.ErrMalformedOperator, line, col,
			"follow: unrecognized character: (%d) '%c'", first, first)
	}
	return ast.Token{Kind: no, Line: line, Col: col}, nil
}

// skipLineComment consumes "//" through the next newline or end of input.
func (l *Lexer) skipLineComment() {
	for l.ch != '\n' && l.ch != eof {
		l.advance()
	}
	l.advance()
}

// skipBlockComment consumes "/*" through the first "*/". line and col locate
// the opening slash for the error report.
func (l *Lexer) skipBlockComment(line, col int) error {
	l.advance() // '/'
	l.advance() // '*'
	for {
		switch {
		case l.ch == eof:
			return diag.Lexicalf(diag.ErrUnterminatedComment, line, col, "Unterminated block comment")
		case l.ch == '*' && l.peek() == '/':
			l.advance()
			l.advance()
			return nil
		default:
			l.advance()
		}
	}
}

// readChar scans a character literal and returns it as an Integer token whose
// text is the decimal code point. Only \n and \\ are escapes; any other
// backslash sequence yields the escaped character itself.
func (l *Lexer) readChar(line, col int) (ast.Token, error) {
	l.advance() // opening quote
	if l.ch == eof {
		return ast.Token{}, diag.Lexicalf(diag.ErrUnterminatedCharLit, line, col, "Unterminated character literal")
	}
	c := l.ch
	l.advance()
	if c == '\\' {
		if l.ch == eof {
			return ast.Token{}, diag.Lexicalf(diag.ErrUnterminatedCharLit, line, col, "Unterminated character literal")
		}
		c = unescape(l.ch)
		l.advance()
	}

	switch {
	case l.ch == '\'':
		l.advance()
	case l.opts.StrictCharLiterals:
		return ast.Token{}, diag.Lexicalf(diag.ErrUnterminatedCharLit, line, col,
			"Character literal is missing its closing quote")
	}
	return ast.Token{Kind: ast.Integer, Text: strconv.Itoa(int(c)), Line: line, Col: col}, nil
}

func unescape(c rune) rune {
	switch c {
	case 'n':
		return '\n'
	case '\\':
		return '\\'
	default:
		return c
	}
}

// readString scans a double-quoted string literal. The content is kept
// verbatim; backslashes are not interpreted.
func (l *Lexer) readString(line, col int) (ast.Token, error) {
	quote := l.ch
	l.advance()
	start := l.pos
	for l.ch != quote {
		if l.ch == eof {
			return ast.Token{}, diag.Lexicalf(diag.ErrUnterminatedString, line, col, "Unterminated string literal")
		}
		l.advance()
	}
	text := string(l.input[start:l.pos])
	l.advance() // closing quote
	return ast.Token{Kind: ast.String, Text: text, Line: line, Col: col}, nil
}

// readIdentOrInteger scans a run of letters, digits and underscores. A run of
// digits only is an Integer; otherwise keywords are recognised via
// [ast.LookupIdent].
func (l *Lexer) readIdentOrInteger(line, col int) (ast.Token, error) {
	start := l.pos
	integer := true
	for isIdentRune(l.ch) {
		if l.ch < '0' || l.ch > '9' {
			integer = false
		}
		l.advance()
	}
	if l.pos == start {
		return ast.Token{}, diag.Lexicalf(diag.ErrUnrecognizedChar, line, col,
			"Unrecognized character: (%d) '%c'", l.ch, l.ch)
	}

	text := string(l.input[start:l.pos])
	if integer {
		return ast.Token{Kind: ast.Integer, Text: text, Line: line, Col: col}, nil
	}
	kind := ast.LookupIdent(text)
	if kind != ast.Identifier {
		text = ""
	}
	return ast.Token{Kind: kind, Text: text, Line: line, Col: col}, nil
}

func isIdentRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}
