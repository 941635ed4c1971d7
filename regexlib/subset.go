package regexlib

// Determinize runs subset construction over n. Every (state, symbol) pair
// ends up defined: moves into the empty set target a single shared dead
// state, created lazily on first use, whose own transitions all loop back
// to itself. Worklist order is FIFO by state creation, so ids are
// reproducible across runs for the same input.
func Determinize(n *NFA, alphabet []rune) *Automaton {
	a := newAutomaton(alphabet)
	in := newInterner(a)

	type item struct {
		id  int
		set PosSet
	}

	startSet := n.closure(NewPosSet(n.Start))
	startID, _ := in.intern(startSet, startSet.Has(n.Accept))
	queue := []item{{startID, startSet}}
	dead := -1

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range a.Alphabet {
			moved := n.move(cur.set, sym)
			if moved.Empty() {
				if dead < 0 {
					dead, _ = in.intern(PosSet{}, false)
					for _, c := range a.Alphabet {
						a.link(dead, c, dead)
					}
				}
				a.link(cur.id, sym, dead)
				continue
			}
			next := n.closure(moved)
			id, created := in.intern(next, next.Has(n.Accept))
			if created {
				queue = append(queue, item{id, next})
			}
			a.link(cur.id, sym, id)
		}
	}
	return a
}
