package regexlib

// Epsilon labels an unlabeled NFA edge.
const Epsilon rune = 0

type NFAEdge struct {
	Symbol rune // Epsilon for unlabeled edges
	To     int
}

type NFAState struct {
	Edges []NFAEdge
}

// NFA is a flat state table; states are referenced by index. Thompson
// construction guarantees exactly one start and one accept state.
type NFA struct {
	States []NFAState
	Start  int
	Accept int
}

// BuildNFA runs Thompson construction over the augmented tree. The
// end-marker leaf compiles to an epsilon edge, so the marker never appears
// as a consumable symbol.
func BuildNFA(t *Tree) *NFA {
	b := &nfaBuilder{}
	start, accept := b.frag(t.Root)
	return &NFA{States: b.states, Start: start, Accept: accept}
}

type nfaBuilder struct {
	states []NFAState
}

func (b *nfaBuilder) state() int {
	b.states = append(b.states, NFAState{})
	return len(b.states) - 1
}

func (b *nfaBuilder) edge(from int, sym rune, to int) {
	b.states[from].Edges = append(b.states[from].Edges, NFAEdge{Symbol: sym, To: to})
}

// frag builds the sub-machine for n and returns its start and accept ids.
func (b *nfaBuilder) frag(n *Node) (start, accept int) {
	switch n.Kind {
	case KindLeaf:
		s, a := b.state(), b.state()
		sym := n.Symbol
		if n.Marker {
			sym = Epsilon
		}
		b.edge(s, sym, a)
		return s, a

	case KindConcat:
		ls, la := b.frag(n.Left)
		rs, ra := b.frag(n.Right)
		b.edge(la, Epsilon, rs)
		return ls, ra

	case KindUnion:
		s := b.state()
		ls, la := b.frag(n.Left)
		rs, ra := b.frag(n.Right)
		a := b.state()
		b.edge(s, Epsilon, ls)
		b.edge(s, Epsilon, rs)
		b.edge(la, Epsilon, a)
		b.edge(ra, Epsilon, a)
		return s, a

	case KindStar:
		s := b.state()
		cs, ca := b.frag(n.Left)
		a := b.state()
		b.edge(s, Epsilon, cs)
		b.edge(s, Epsilon, a)
		b.edge(ca, Epsilon, cs)
		b.edge(ca, Epsilon, a)
		return s, a

	case KindPlus:
		// like Star but without the skip edge
		s := b.state()
		cs, ca := b.frag(n.Left)
		a := b.state()
		b.edge(s, Epsilon, cs)
		b.edge(ca, Epsilon, cs)
		b.edge(ca, Epsilon, a)
		return s, a

	case KindOptional:
		s := b.state()
		cs, ca := b.frag(n.Left)
		a := b.state()
		b.edge(s, Epsilon, cs)
		b.edge(s, Epsilon, a)
		b.edge(ca, Epsilon, a)
		return s, a
	}
	panic("regexlib: unknown node kind")
}

// closure returns the epsilon-closure of set.
func (n *NFA) closure(set PosSet) PosSet {
	seen := map[int]struct{}{}
	stack := set.Members()
	for _, s := range stack {
		seen[s] = struct{}{}
	}
	for len(stack) > 0 {
		s := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.States[s].Edges {
			if e.Symbol != Epsilon {
				continue
			}
			if _, ok := seen[e.To]; !ok {
				seen[e.To] = struct{}{}
				stack = append(stack, e.To)
			}
		}
	}
	ids := make([]int, 0, len(seen))
	for s := range seen {
		ids = append(ids, s)
	}
	return NewPosSet(ids...)
}

// move returns the states reachable from set over one sym edge.
func (n *NFA) move(set PosSet, sym rune) PosSet {
	var ids []int
	for _, s := range set.Members() {
		for _, e := range n.States[s].Edges {
			if e.Symbol == sym {
				ids = append(ids, e.To)
			}
		}
	}
	return NewPosSet(ids...)
}
