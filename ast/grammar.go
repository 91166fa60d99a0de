package ast

// Info is the static parsing metadata attached to a TokenKind.
type Info struct {
	Precedence int      // binding strength; -1 when the kind is not an operator
	Binary     bool     // usable as an infix operator
	Unary      bool     // usable as a prefix operator
	RightAssoc bool     // always false in this grammar
	Node       NodeKind // node produced when the token is reduced
}

// grammar is the operator-precedence table. Higher precedence binds tighter.
// Op_equal is flagged unary to match the reference table; the parser skips it
// in prefix position.
var grammar = [numTokenKinds]Info{
	EndOfInput:     {-1, false, false, false, NodeNone},
	OpMultiply:     {13, true, false, false, NodeMul},
	OpDivide:       {13, true, false, false, NodeDiv},
	OpMod:          {13, true, false, false, NodeMod},
	OpAdd:          {12, true, false, false, NodeAdd},
	OpSubtract:     {12, true, false, false, NodeSub},
	OpNegate:       {14, false, true, false, NodeNegate},
	OpNot:          {14, false, true, false, NodeNot},
	OpLess:         {10, true, false, false, NodeLss},
	OpLessEqual:    {10, true, false, false, NodeLeq},
	OpGreater:      {10, true, false, false, NodeGtr},
	OpGreaterEqual: {10, true, false, false, NodeGeq},
	OpEqual:        {9, true, true, false, NodeEql},
	OpNotEqual:     {9, true, false, false, NodeNeq},
	OpAssign:       {-1, false, false, false, NodeAssign},
	OpAnd:          {5, true, false, false, NodeAnd},
	OpOr:           {4, true, false, false, NodeOr},
	KeywordIf:      {-1, false, false, false, NodeIf},
	KeywordElse:    {-1, false, false, false, NodeNone},
	KeywordWhile:   {-1, false, false, false, NodeWhile},
	KeywordPrint:   {-1, false, false, false, NodeNone},
	KeywordPutc:    {-1, false, false, false, NodeNone},
	LeftParen:      {-1, false, false, false, NodeNone},
	RightParen:     {-1, false, false, false, NodeNone},
	LeftBrace:      {-1, false, false, false, NodeNone},
	RightBrace:     {-1, false, false, false, NodeNone},
	Semicolon:      {-1, false, false, false, NodeNone},
	Comma:          {-1, false, false, false, NodeNone},
	Identifier:     {-1, false, false, false, NodeIdent},
	Integer:        {-1, false, false, false, NodeInteger},
	String:         {-1, false, false, false, NodeString},
}

// Grammar returns the metadata for k. Unknown kinds get a non-operator entry.
func Grammar(k TokenKind) Info {
	if k < 0 || k >= numTokenKinds {
		return Info{Precedence: -1}
	}
	return grammar[k]
}
