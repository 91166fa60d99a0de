package ast_test

import (
	"testing"

	"github.com/metaphox/tinyc/ast"
)

// TestGrammar_Table pins the operator-precedence table.
func TestGrammar_Table(t *testing.T) {
	tests := []struct {
		kind   ast.TokenKind
		prec   int
		binary bool
		unary  bool
		node   ast.NodeKind
	}{
		{ast.OpMultiply, 13, true, false, ast.NodeMul},
		{ast.OpDivide, 13, true, false, ast.NodeDiv},
		{ast.OpMod, 13, true, false, ast.NodeMod},
		{ast.OpAdd, 12, true, false, ast.NodeAdd},
		{ast.OpSubtract, 12, true, false, ast.NodeSub},
		{ast.OpNegate, 14, false, true, ast.NodeNegate},
		{ast.OpNot, 14, false, true, ast.NodeNot},
		{ast.OpLess, 10, true, false, ast.NodeLss},
		{ast.OpLessEqual, 10, true, false, ast.NodeLeq},
		{ast.OpGreater, 10, true, false, ast.NodeGtr},
		{ast.OpGreaterEqual, 10, true, false, ast.NodeGeq},
		{ast.OpEqual, 9, true, true, ast.NodeEql},
		{ast.OpNotEqual, 9, true, false, ast.NodeNeq},
		{ast.OpAnd, 5, true, false, ast.NodeAnd},
		{ast.OpOr, 4, true, false, ast.NodeOr},
		{ast.OpAssign, -1, false, false, ast.NodeAssign},
		{ast.KeywordIf, -1, false, false, ast.NodeIf},
		{ast.KeywordWhile, -1, false, false, ast.NodeWhile},
		{ast.Identifier, -1, false, false, ast.NodeIdent},
		{ast.Integer, -1, false, false, ast.NodeInteger},
		{ast.String, -1, false, false, ast.NodeString},
		{ast.Semicolon, -1, false, false, ast.NodeNone},
		{ast.EndOfInput, -1, false, false, ast.NodeNone},
	}
	for _, tt := range tests {
		info := ast.Grammar(tt.kind)
		if info.Precedence != tt.prec || info.Binary != tt.binary || info.Unary != tt.unary || info.Node != tt.node {
			t.Errorf("%s: got %+v, want prec=%d binary=%v unary=%v node=%s",
				tt.kind, info, tt.prec, tt.binary, tt.unary, tt.node)
		}
		if info.RightAssoc {
			t.Errorf("%s: no operator is right-associative", tt.kind)
		}
	}
	if got := ast.Grammar(ast.TokenKind(999)); got.Binary || got.Unary || got.Precedence != -1 {
		t.Errorf("unknown kind: got %+v", got)
	}
}

func TestTokenKind_Names(t *testing.T) {
	for k := ast.EndOfInput; k <= ast.String; k++ {
		name := k.String()
		back, ok := ast.LookupKind(name)
		if !ok || back != k {
			t.Errorf("%d: name %q does not resolve back (got %d, %v)", int(k), name, int(back), ok)
		}
	}
	if _, ok := ast.LookupKind("Op_notequalt"); ok {
		t.Error("misspelled kind name must not resolve")
	}
}

func TestLookupIdent(t *testing.T) {
	tests := map[string]ast.TokenKind{
		"if":    ast.KeywordIf,
		"else":  ast.KeywordElse,
		"while": ast.KeywordWhile,
		"print": ast.KeywordPrint,
		"putc":  ast.KeywordPutc,
		"iff":   ast.Identifier,
		"If":    ast.Identifier,
	}
	for in, want := range tests {
		if got := ast.LookupIdent(in); got != want {
			t.Errorf("LookupIdent(%q) = %s, want %s", in, got, want)
		}
	}
}

func TestNodeKind_Names(t *testing.T) {
	tests := map[ast.NodeKind]string{
		ast.NodeIdent: "Identifier",
		ast.NodeMul:   "Multiply",
		ast.NodeDiv:   "Divide",
		ast.NodeSub:   "Subtract",
		ast.NodeLss:   "Less",
		ast.NodeLeq:   "LessEqual",
		ast.NodeGtr:   "Greater",
		ast.NodeGeq:   "GreaterEqual",
		ast.NodeEql:   "Equal",
		ast.NodeNeq:   "NotEqual",
	}
	for k, want := range tests {
		if got := k.String(); got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestTree_Print(t *testing.T) {
	tree := ast.NewTree()
	cond := tree.Branch(ast.NodeLss, tree.Leaf(ast.NodeIdent, "i"), tree.Leaf(ast.NodeInteger, "10"))
	body := tree.Unary(ast.NodePrts, tree.Leaf(ast.NodeString, "hi there"))
	tree.Root = tree.Branch(ast.NodeSequence, ast.None, tree.Branch(ast.NodeWhile, cond, body))

	want := "Sequence\n" +
		";\n" +
		"While\n" +
		"Less\n" +
		"Identifier     i\n" +
		"Integer        10\n" +
		"Prts\n" +
		"String         hi there\n" +
		";\n"
	if got := tree.String(); got != want {
		t.Errorf("got:\n%s\nwant:\n%s", got, want)
	}
	if tree.Len() != 7 {
		t.Errorf("Len: got %d, want 7", tree.Len())
	}
}

func TestTree_PrintEmpty(t *testing.T) {
	if got := ast.NewTree().String(); got != ";\n" {
		t.Errorf("got %q, want %q", got, ";\n")
	}
}

// TestEqual checks that equality is structural: build order and handles do
// not matter, kinds, values and shape do.
func TestEqual(t *testing.T) {
	a := ast.NewTree()
	a.Root = a.Branch(ast.NodeAdd, a.Leaf(ast.NodeInteger, "1"), a.Leaf(ast.NodeInteger, "2"))

	b := ast.NewTree()
	b.Leaf(ast.NodeIdent, "unused")
	two := b.Leaf(ast.NodeInteger, "2")
	one := b.Leaf(ast.NodeInteger, "1")
	b.Root = b.Branch(ast.NodeAdd, one, two)

	if !ast.Equal(a, b) {
		t.Error("trees with the same structure must be equal")
	}

	c := ast.NewTree()
	c.Root = c.Branch(ast.NodeAdd, c.Leaf(ast.NodeInteger, "2"), c.Leaf(ast.NodeInteger, "1"))
	if ast.Equal(a, c) {
		t.Error("swapped operands must not be equal")
	}

	d := ast.NewTree()
	d.Root = d.Branch(ast.NodeSub, d.Leaf(ast.NodeInteger, "1"), d.Leaf(ast.NodeInteger, "2"))
	if ast.Equal(a, d) {
		t.Error("different kinds must not be equal")
	}

	e := ast.NewTree()
	e.Root = e.Unary(ast.NodeAdd, e.Leaf(ast.NodeInteger, "1"))
	if ast.Equal(a, e) {
		t.Error("a missing child must not be equal")
	}

	if !ast.Equal(ast.NewTree(), ast.NewTree()) {
		t.Error("empty trees must be equal")
	}
}
