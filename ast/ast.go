package ast

import "fmt"

// NodeKind identifies the category of a syntax tree node.
type NodeKind int

const (
	// NodeNone denotes an absent subtree. It is never stored in a Tree.
	NodeNone NodeKind = iota
	NodeIdent
	NodeString
	NodeInteger
	NodeSequence
	NodeIf
	NodePrtc
	NodePrts
	NodePrti
	NodeWhile
	NodeAssign
	NodeNegate
	NodeNot
	NodeMul
	NodeDiv
	NodeMod
	NodeAdd
	NodeSub
	NodeLss
	NodeLeq
	NodeGtr
	NodeGeq
	NodeEql
	NodeNeq
	NodeAnd
	NodeOr

	numNodeKinds
)

var nodeNames = [numNodeKinds]string{
	NodeNone:     "",
	NodeIdent:    "Identifier",
	NodeString:   "String",
	NodeInteger:  "Integer",
	NodeSequence: "Sequence",
	NodeIf:       "If",
	NodePrtc:     "Prtc",
	NodePrts:     "Prts",
	NodePrti:     "Prti",
	NodeWhile:    "While",
	NodeAssign:   "Assign",
	NodeNegate:   "Negate",
	NodeNot:      "Not",
	NodeMul:      "Multiply",
	NodeDiv:      "Divide",
	NodeMod:      "Mod",
	NodeAdd:      "Add",
	NodeSub:      "Subtract",
	NodeLss:      "Less",
	NodeLeq:      "LessEqual",
	NodeGtr:      "Greater",
	NodeGeq:      "GreaterEqual",
	NodeEql:      "Equal",
	NodeNeq:      "NotEqual",
	NodeAnd:      "And",
	NodeOr:       "Or",
}

// String returns the display name used by the AST printer.
func (k NodeKind) String() string {
	if k < 0 || k >= numNodeKinds {
		return fmt.Sprintf("NodeKind(%d)", int(k))
	}
	return nodeNames[k]
}

// IsLeaf reports whether nodes of this kind carry a value instead of children.
func (k NodeKind) IsLeaf() bool {
	return k == NodeIdent || k == NodeInteger || k == NodeString
}

// NodeID is a handle to a node inside a Tree. The zero value is None.
type NodeID int32

// None is the handle of an absent subtree.
const None NodeID = 0

// Node is one element of the tree. Leaves carry Value and no children;
// interior nodes carry up to two children.
type Node struct {
	Kind  NodeKind
	Left  NodeID
	Right NodeID
	Value string
}

// Tree is an arena that owns every node built during one parse.
//
// Nodes are appended bottom-up and never mutated, so every child handle is
// smaller than its parent's and the tree cannot contain cycles. Statement lists
// and print argument lists are encoded as left-leaning Sequence chains:
// Sequence(Sequence(None, a), b) for [a, b].
type Tree struct {
	nodes []Node // nodes[0] is the None sentinel
	Root  NodeID
}

// NewTree returns an empty tree whose root is None.
func NewTree() *Tree {
	return &Tree{nodes: make([]Node, 1, 64)}
}

// Leaf adds a leaf node and returns its handle.
func (t *Tree) Leaf(kind NodeKind, value string) NodeID {
	return t.add(Node{Kind: kind, Value: value})
}

// Branch adds an interior node with the given children and returns its handle.
func (t *Tree) Branch(kind NodeKind, left, right NodeID) NodeID {
	return t.add(Node{Kind: kind, Left: left, Right: right})
}

// Unary adds an interior node with a single (left) child.
func (t *Tree) Unary(kind NodeKind, child NodeID) NodeID {
	return t.Branch(kind, child, None)
}

func (t *Tree) add(n Node) NodeID {
	if t.nodes == nil {
		t.nodes = make([]Node, 1, 64)
	}
	t.nodes = append(t.nodes, n)
	return NodeID(len(t.nodes) - 1)
}

// Node returns the node behind id. It panics on None or a foreign handle.
func (t *Tree) Node(id NodeID) Node {
	if id == None {
		panic("ast: Node called with None handle")
	}
	return t.nodes[id]
}

// Len returns the number of real nodes in the tree.
func (t *Tree) Len() int {
	if len(t.nodes) == 0 {
		return 0
	}
	return len(t.nodes) - 1
}

// Equal reports whether a and b have the same shape, kinds and values.
// Handles are not compared; two trees built in a different order are equal
// as long as their structure matches.
func Equal(a *Tree, b *Tree) bool {
	return equalAt(a, a.Root, b, b.Root)
}

func equalAt(a *Tree, x NodeID, b *Tree, y NodeID) bool {
	if x == None || y == None {
		return x == None && y == None
	}
	nx, ny := a.Node(x), b.Node(y)
	if nx.Kind != ny.Kind {
		return false
	}
	if nx.Kind.IsLeaf() {
		return nx.Value == ny.Value
	}
	return equalAt(a, nx.Left, b, ny.Left) && equalAt(a, nx.Right, b, ny.Right)
}
