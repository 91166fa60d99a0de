// Package parser implements the tinyc recursive-descent parser.
//
// The parser reads tokens from any [TokenSource] (a [lexer.Lexer] or a
// replayed token dump) and builds an [ast.Tree]. Statements are parsed by
// recursive descent with one token of look-ahead; expressions use precedence
// climbing driven by the [ast.Grammar] table, so precedence lives in a table
// rather than in one grammar rule per level.
//
// Usage:
//
//	p := parser.New(lexer.New(source), parser.Options{})
//	tree, err := p.Parse()
//
// Errors are fatal: the first unexpected token aborts the parse and no partial
// tree is returned.
package parser

import (
	"io"
	"log/slog"

	"github.com/metaphox/tinyc/ast"
	"github.com/metaphox/tinyc/diag"
	"github.com/metaphox/tinyc/lexer"
)

// TokenSource yields tokens one at a time and keeps returning EndOfInput once
// the input is exhausted.
type TokenSource interface {
	NextToken() (ast.Token, error)
}

// Options tunes parser strictness and diagnostics.
type Options struct {
	// StrictPutc requires a ';' after putc(...). By default the statement ends
	// at the closing parenthesis.
	StrictPutc bool
	// Logger receives one debug record per completed parse. Nil discards.
	Logger *slog.Logger
}

// Parser holds all state needed to parse one token stream.
// Create one with [New] and call [Parser.Parse] once.
type Parser struct {
	src  TokenSource
	cur  ast.Token // current token (the only look-ahead)
	tree *ast.Tree
	opts Options
	log  *slog.Logger

	consumed int
}

// New creates a Parser that reads tokens from src.
func New(src TokenSource, opts Options) *Parser {
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &Parser{src: src, tree: ast.NewTree(), opts: opts, log: log}
}

// Parse builds the tree for the whole token stream. The root is the
// left-leaning Sequence chain of top-level statements, or None for an empty
// program.
func (p *Parser) Parse() (*ast.Tree, error) {
	if err := p.advance(); err != nil {
		return nil, err
	}
	root := ast.None
	for p.cur.Kind != ast.EndOfInput {
		s, err := p.parseStatement()
		if err != nil {
			return nil, err
		}
		root = p.tree.Branch(ast.NodeSequence, root, s)
	}
	p.tree.Root = root
	p.log.Debug("parsed program", "tokens", p.consumed, "nodes", p.tree.Len())
	return p.tree, nil
}

// ParseString lexes and parses source in one step.
func ParseString(source string, lexOpts lexer.Options, opts Options) (*ast.Tree, error) {
	return New(lexer.NewWithOptions(source, lexOpts), opts).Parse()
}

// ParseTokens parses a materialized token list, e.g. one read back from a dump.
func ParseTokens(toks []ast.Token, opts Options) (*ast.Tree, error) {
	return New(lexer.NewReplay(toks), opts).Parse()
}

// ── Internal token management ─────────────────────────────────────────────────

// advance pulls the next token from the source into cur.
func (p *Parser) advance() error {
	tok, err := p.src.NextToken()
	if err != nil {
		return err
	}
	p.cur = tok
	p.consumed++
	return nil
}

// expect consumes the current token if it has kind k and fails otherwise.
// context names the construct being parsed for the error message.
func (p *Parser) expect(context string, k ast.TokenKind) error {
	if p.cur.Kind != k {
		return diag.Syntaxf(diag.ErrExpectedToken, p.cur.Line, p.cur.Col,
			"%s: Expecting '%s', found: '%s'", context, k, p.cur.Kind)
	}
	return p.advance()
}

// ── Statement parsing ─────────────────────────────────────────────────────────

// parseStatement dispatches on the current token.
func (p *Parser) parseStatement() (ast.NodeID, error) {
	switch p.cur.Kind {
	case ast.Identifier:
		return p.parseAssign()
	case ast.KeywordWhile:
		return p.parseWhile()
	case ast.KeywordIf:
		return p.parseIf()
	case ast.KeywordPrint:
		return p.parsePrint()
	case ast.KeywordPutc:
		return p.parsePutc()
	case ast.LeftBrace:
		return p.parseBlock()
	default:
		return ast.None, diag.Syntaxf(diag.ErrExpectingStatement, p.cur.Line, p.cur.Col,
			"Expecting statement, found: '%s'", p.cur.Kind)
	}
}

// parseAssign parses: ident '=' expr ';'
func (p *Parser) parseAssign() (ast.NodeID, error) {
	ident := p.tree.Leaf(ast.NodeIdent, p.cur.Text)
	if err := p.advance(); err != nil {
		return ast.None, err
	}
	if err := p.expect("Assign", ast.OpAssign); err != nil {
		return ast.None, err
	}
	value, err := p.parseExpr(0)
	if err != nil {
		return ast.None, err
	}
	if err := p.expect("Assign", ast.Semicolon); err != nil {
		return ast.None, err
	}
	return p.tree.Branch(ast.NodeAssign, ident, value), nil
}

// parseWhile parses: 'while' paren_expr stmt
func (p *Parser) parseWhile() (ast.NodeID, error) {
	if err := p.advance(); err != nil {
		return ast.None, err
	}
	cond, err := p.parseParenExpr()
	if err != nil {
		return ast.None, err
	}
	body, err := p.parseStatement()
	if err != nil {
		return ast.None, err
	}
	return p.tree.Branch(ast.NodeWhile, cond, body), nil
}

// parseIf parses: 'if' paren_expr stmt ['else' stmt]
//
// The result is If(cond, If(then, else)); the inner node exists even when
// there is no else branch. An else always binds to the nearest if because the
// innermost parseIf sees it first.
func (p *Parser) parseIf() (ast.NodeID, error) {
	if err := p.advance(); err != nil {
		return ast.None, err
	}
	cond, err := p.parseParenExpr()
	if err != nil {
		return ast.None, err
	}
	then, err := p.parseStatement()
	if err != nil {
		return ast.None, err
	}
	otherwise := ast.None
	if p.cur.Kind == ast.KeywordElse {
		if err := p.advance(); err != nil {
			return ast.None, err
		}
		if otherwise, err = p.parseStatement(); err != nil {
			return ast.None, err
		}
	}
	return p.tree.Branch(ast.NodeIf, cond, p.tree.Branch(ast.NodeIf, then, otherwise)), nil
}

// parsePrint parses: 'print' '(' item {',' item} ')' ';'
//
// A string literal item becomes Prts(String), an integer literal item becomes
// Prti(Integer), any other expression becomes Prtc(expr). Items are folded
// into a left-leaning Sequence chain.
func (p *Parser) parsePrint() (ast.NodeID, error) {
	if err := p.advance(); err != nil {
		return ast.None, err
	}
	if err := p.expect("Print", ast.LeftParen); err != nil {
		return ast.None, err
	}

	seq := ast.None
	for {
		item, err := p.parsePrintItem()
		if err != nil {
			return ast.None, err
		}
		seq = p.tree.Branch(ast.NodeSequence, seq, item)
		if p.cur.Kind != ast.Comma {
			break
		}
		if err := p.advance(); err != nil {
			return ast.None, err
		}
	}

	if err := p.expect("Print", ast.RightParen); err != nil {
		return ast.None, err
	}
	if err := p.expect("Print", ast.Semicolon); err != nil {
		return ast.None, err
	}
	return seq, nil
}

func (p *Parser) parsePrintItem() (ast.NodeID, error) {
	switch p.cur.Kind {
	case ast.String:
		leaf := p.tree.Leaf(ast.NodeString, p.cur.Text)
		if err := p.advance(); err != nil {
			return ast.None, err
		}
		return p.tree.Unary(ast.NodePrts, leaf), nil
	case ast.Integer:
		leaf := p.tree.Leaf(ast.NodeInteger, p.cur.Text)
		if err := p.advance(); err != nil {
			return ast.None, err
		}
		return p.tree.Unary(ast.NodePrti, leaf), nil
	default:
		e, err := p.parseExpr(0)
		if err != nil {
			return ast.None, err
		}
		return p.tree.Unary(ast.NodePrtc, e), nil
	}
}

// parsePutc parses: 'putc' paren_expr, plus ';' in strict mode.
func (p *Parser) parsePutc() (ast.NodeID, error) {
	if err := p.advance(); err != nil {
		return ast.None, err
	}
	e, err := p.parseParenExpr()
	if err != nil {
		return ast.None, err
	}
	if p.opts.StrictPutc {
		if err := p.expect("Putc", ast.Semicolon); err != nil {
			return ast.None, err
		}
	}
	return p.tree.Unary(ast.NodePrtc, e), nil
}

// parseBlock parses: '{' {stmt} '}'. An empty block yields None.
func (p *Parser) parseBlock() (ast.NodeID, error) {
	open := p.cur
	if err := p.advance(); err != nil {
		return ast.None, err
	}
	seq := ast.None
	for p.cur.Kind != ast.RightBrace {
		if p.cur.Kind == ast.EndOfInput {
			return ast.None, diag.Syntaxf(diag.ErrUnexpectedEndOfInput, open.Line, open.Col,
				"Block: Expecting '%s' before end of input", ast.RightBrace)
		}
		s, err := p.parseStatement()
		if err != nil {
			return ast.None, err
		}
		seq = p.tree.Branch(ast.NodeSequence, seq, s)
	}
	if err := p.advance(); err != nil {
		return ast.None, err
	}
	return seq, nil
}

// ── Expression parsing ────────────────────────────────────────────────────────

// parseExpr parses a binary expression whose operators all bind tighter than
// minPrec. The right operand is parsed at the operator's own precedence, which
// makes every operator left-associative.
func (p *Parser) parseExpr(minPrec int) (ast.NodeID, error) {
	left, err := p.parsePrimary()
	if err != nil {
		return ast.None, err
	}
	for {
		info := ast.Grammar(p.cur.Kind)
		if !info.Binary || info.Precedence <= minPrec {
			return left, nil
		}
		if err := p.advance(); err != nil {
			return ast.None, err
		}
		right, err := p.parseExpr(info.Precedence)
		if err != nil {
			return ast.None, err
		}
		left = p.tree.Branch(info.Node, left, right)
	}
}

// parsePrimary parses a literal, an identifier, a parenthesised expression or
// a prefix operator applied to another primary.
func (p *Parser) parsePrimary() (ast.NodeID, error) {
	switch p.cur.Kind {
	case ast.Integer:
		return p.leaf(ast.NodeInteger)
	case ast.Identifier:
		return p.leaf(ast.NodeIdent)
	case ast.LeftParen:
		return p.parseParenExpr()
	case ast.OpSubtract:
		return p.parseUnary(ast.NodeNegate)
	}

	if info := ast.Grammar(p.cur.Kind); info.Unary && p.cur.Kind != ast.OpEqual {
		return p.parseUnary(info.Node)
	}
	return ast.None, diag.Syntaxf(diag.ErrExpectingPrimary, p.cur.Line, p.cur.Col,
		"Expecting primary token, cannot use %s.", p.cur.Kind)
}

func (p *Parser) leaf(kind ast.NodeKind) (ast.NodeID, error) {
	id := p.tree.Leaf(kind, p.cur.Text)
	if err := p.advance(); err != nil {
		return ast.None, err
	}
	return id, nil
}

func (p *Parser) parseUnary(kind ast.NodeKind) (ast.NodeID, error) {
	if err := p.advance(); err != nil {
		return ast.None, err
	}
	operand, err := p.parsePrimary()
	if err != nil {
		return ast.None, err
	}
	return p.tree.Unary(kind, operand), nil
}

// parseParenExpr parses: '(' expr ')'
func (p *Parser) parseParenExpr() (ast.NodeID, error) {
	if err := p.expect("paren_expr", ast.LeftParen); err != nil {
		return ast.None, err
	}
	e, err := p.parseExpr(0)
	if err != nil {
		return ast.None, err
	}
	if err := p.expect("paren_expr", ast.RightParen); err != nil {
		return ast.None, err
	}
	return e, nil
}
