package ast

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Fprint writes t to w in pre-order, one node per line:
//
//	Sequence
//	;
//	Assign
//	Identifier     x
//	Integer        5
//
// Leaves are written as a 14-column name followed by a space and the value;
// interior nodes are written as the bare name followed by their left and right
// subtrees; absent subtrees are written as ";".
func Fprint(w io.Writer, t *Tree) error {
	bw := bufio.NewWriter(w)
	printNode(bw, t, t.Root)
	return bw.Flush()
}

// String returns the Fprint rendering of t.
func (t *Tree) String() string {
	var sb strings.Builder
	_ = Fprint(&sb, t)
	return sb.String()
}

func printNode(w *bufio.Writer, t *Tree, id NodeID) {
	if id == None {
		w.WriteString(";\n")
		return
	}
	n := t.Node(id)
	if n.Kind.IsLeaf() {
		fmt.Fprintf(w, "%-14s %s\n", n.Kind, n.Value)
		return
	}
	w.WriteString(n.Kind.String())
	w.WriteByte('\n')
	printNode(w, t, n.Left)
	printNode(w, t, n.Right)
}
