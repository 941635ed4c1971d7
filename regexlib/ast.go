package regexlib

import (
	"fmt"
	"strings"
)

type NodeKind int

const (
	KindLeaf NodeKind = iota
	KindConcat
	KindUnion
	KindStar
	KindPlus
	KindOptional
)

// EndMarker is the symbol of the synthetic end-of-input leaf appended to
// every parsed pattern. It never enters the alphabet.
const EndMarker rune = '#'

type Node struct {
	Kind        NodeKind
	Left, Right *Node // Right is nil for unary kinds
	Symbol      rune  // leaves only
	Pos         int   // leaf position, assigned left to right
	Marker      bool  // true for the end-of-input leaf

	// filled in by Annotate
	Nullable    bool
	First, Last PosSet
}

// Tree is the parsed, position-annotated syntax tree of one pattern. Root is
// already augmented: Concat(expression, end-marker leaf).
type Tree struct {
	Pattern  string
	Root     *Node
	Leaves   []*Node // indexed by position, end marker last
	Alphabet []rune  // sorted, end marker excluded
}

// EndPos returns the position of the end-marker leaf.
func (t *Tree) EndPos() int { return len(t.Leaves) - 1 }

func (n *Node) String() string {
	var b strings.Builder
	n.write(&b)
	return b.String()
}

func (n *Node) write(b *strings.Builder) {
	switch n.Kind {
	case KindLeaf:
		if n.Marker {
			fmt.Fprintf(b, "#@%d", n.Pos)
		} else {
			fmt.Fprintf(b, "%c@%d", n.Symbol, n.Pos)
		}
	case KindConcat:
		b.WriteString("cat(")
		n.Left.write(b)
		b.WriteByte(',')
		n.Right.write(b)
		b.WriteByte(')')
	case KindUnion:
		b.WriteString("or(")
		n.Left.write(b)
		b.WriteByte(',')
		n.Right.write(b)
		b.WriteByte(')')
	case KindStar:
		b.WriteString("star(")
		n.Left.write(b)
		b.WriteByte(')')
	case KindPlus:
		b.WriteString("plus(")
		n.Left.write(b)
		b.WriteByte(')')
	case KindOptional:
		b.WriteString("opt(")
		n.Left.write(b)
		b.WriteByte(')')
	}
}
