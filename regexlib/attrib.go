package regexlib

// Annotated is a tree whose nodes carry nullable/firstpos/lastpos plus the
// global followpos table. Follow is frozen once Annotate returns: entries
// are only ever unioned into during the single annotation pass.
type Annotated struct {
	Tree   *Tree
	Follow []PosSet // indexed by position
}

// Annotate computes nullable, firstpos and lastpos bottom-up for every node
// and merges followpos contributions from Concat, Star and Plus nodes.
func Annotate(t *Tree) *Annotated {
	a := &Annotated{Tree: t, Follow: make([]PosSet, len(t.Leaves))}
	a.visit(t.Root)
	return a
}

func (a *Annotated) visit(n *Node) {
	switch n.Kind {
	case KindLeaf:
		n.Nullable = false
		n.First = NewPosSet(n.Pos)
		n.Last = n.First

	case KindConcat:
		a.visit(n.Left)
		a.visit(n.Right)
		n.Nullable = n.Left.Nullable && n.Right.Nullable
		if n.Left.Nullable {
			n.First = n.Left.First.Union(n.Right.First)
		} else {
			n.First = n.Left.First
		}
		if n.Right.Nullable {
			n.Last = n.Left.Last.Union(n.Right.Last)
		} else {
			n.Last = n.Right.Last
		}
		a.follow(n.Left.Last, n.Right.First)

	case KindUnion:
		a.visit(n.Left)
		a.visit(n.Right)
		n.Nullable = n.Left.Nullable || n.Right.Nullable
		n.First = n.Left.First.Union(n.Right.First)
		n.Last = n.Left.Last.Union(n.Right.Last)

	case KindStar:
		a.visit(n.Left)
		n.Nullable = true
		n.First = n.Left.First
		n.Last = n.Left.Last
		a.follow(n.Left.Last, n.Left.First)

	case KindPlus:
		a.visit(n.Left)
		n.Nullable = n.Left.Nullable
		n.First = n.Left.First
		n.Last = n.Left.Last
		a.follow(n.Left.Last, n.Left.First)

	case KindOptional:
		a.visit(n.Left)
		n.Nullable = true
		n.First = n.Left.First
		n.Last = n.Left.Last
	}
}

// follow unions first into followpos(p) for every p in last.
func (a *Annotated) follow(last, first PosSet) {
	for _, p := range last.Members() {
		a.Follow[p] = a.Follow[p].Union(first)
	}
}
