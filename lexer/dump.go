package lexer

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/metaphox/tinyc/ast"
	"github.com/metaphox/tinyc/diag"
)

// Source is anything that yields tokens one at a time.
type Source interface {
	NextToken() (ast.Token, error)
}

// Tokenize scans input to the end and returns every token, the trailing
// EndOfInput included.
func Tokenize(input string, opts Options) ([]ast.Token, error) {
	l := NewWithOptions(input, opts)
	var toks []ast.Token
	for {
		tok, err := l.NextToken()
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
		if tok.Kind == ast.EndOfInput {
			return toks, nil
		}
	}
}

// WriteTokens drains src and writes one dump line per token, ending with the
// EndOfInput line. Nothing is written past the first error.
func WriteTokens(w io.Writer, src Source) error {
	bw := bufio.NewWriter(w)
	for {
		tok, err := src.NextToken()
		if err != nil {
			return err
		}
		if _, err := fmt.Fprintln(bw, tok.String()); err != nil {
			return err
		}
		if tok.Kind == ast.EndOfInput {
			return bw.Flush()
		}
	}
}

// ReadTokens parses a token dump produced by [WriteTokens].
//
// Each non-blank line holds a line number, a column, a kind name and an
// optional payload running to the end of the line. A String payload loses
// one pair of surrounding double quotes.
func ReadTokens(r io.Reader) ([]ast.Token, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1<<20)

	var toks []ast.Token
	for n := 1; sc.Scan(); n++ {
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		tok, err := parseDumpLine(n, text)
		if err != nil {
			return nil, err
		}
		toks = append(toks, tok)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("read token dump: %w", err)
	}
	return toks, nil
}

func parseDumpLine(n int, text string) (ast.Token, error) {
	lineField, rest := cutField(text)
	colField, rest := cutField(rest)
	kindField, rest := cutField(rest)
	if kindField == "" {
		return ast.Token{}, diag.IOf(diag.ErrMalformedDumpLine, n, "malformed token line %q", text)
	}

	line, err := strconv.Atoi(lineField)
	if err != nil {
		return ast.Token{}, diag.IOf(diag.ErrMalformedDumpLine, n, "bad line number %q", lineField)
	}
	col, err := strconv.Atoi(colField)
	if err != nil {
		return ast.Token{}, diag.IOf(diag.ErrMalformedDumpLine, n, "bad column number %q", colField)
	}
	kind, ok := ast.LookupKind(kindField)
	if !ok {
		return ast.Token{}, diag.IOf(diag.ErrUnknownTokenKind, n, "Token not found: '%s'", kindField)
	}

	payload := strings.TrimSpace(rest)
	if kind == ast.String && len(payload) >= 2 && payload[0] == '"' && payload[len(payload)-1] == '"' {
		payload = payload[1 : len(payload)-1]
	}
	return ast.Token{Kind: kind, Text: payload, Line: line, Col: col}, nil
}

// cutField splits off the first blank-delimited field of s.
func cutField(s string) (field, rest string) {
	s = strings.TrimLeft(s, " \t")
	if i := strings.IndexAny(s, " \t"); i >= 0 {
		return s[:i], s[i:]
	}
	return s, ""
}

// Replay serves a materialized token list as a [Source]. Once the list is
// exhausted, or an EndOfInput token has been served, it keeps returning
// EndOfInput.
type Replay struct {
	toks []ast.Token
	next int
	end  *ast.Token
}

// NewReplay returns a Replay over toks. The slice is not copied.
func NewReplay(toks []ast.Token) *Replay {
	return &Replay{toks: toks}
}

// NextToken implements [Source].
func (r *Replay) NextToken() (ast.Token, error) {
	if r.end != nil {
		return *r.end, nil
	}
	if r.next < len(r.toks) {
		tok := r.toks[r.next]
		r.next++
		if tok.Kind == ast.EndOfInput {
			r.end = &tok
		}
		return tok, nil
	}

	end := ast.Token{Kind: ast.EndOfInput, Line: 1, Col: 1}
	if len(r.toks) > 0 {
		last := r.toks[len(r.toks)-1]
		end.Line, end.Col = last.Line, last.Col
	}
	r.end = &end
	return end, nil
}
