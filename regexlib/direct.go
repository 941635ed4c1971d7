package regexlib

// BuildDirect builds a DFA straight from the tree's position attributes,
// never constructing an NFA. State 0's label is firstpos(root); a state is
// accepting iff its label contains the end-marker position. Symbols whose
// move set is empty record no transition at all.
func BuildDirect(ann *Annotated) *Automaton {
	t := ann.Tree
	end := t.EndPos()
	a := newAutomaton(t.Alphabet)
	in := newInterner(a)

	type item struct {
		id  int
		set PosSet
	}

	startSet := t.Root.First
	startID, _ := in.intern(startSet, startSet.Has(end))
	queue := []item{{startID, startSet}}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range a.Alphabet {
			var next PosSet
			for _, p := range cur.set.Members() {
				leaf := t.Leaves[p]
				if leaf.Marker || leaf.Symbol != sym {
					continue
				}
				next = next.Union(ann.Follow[p])
			}
			if next.Empty() {
				continue
			}
			id, created := in.intern(next, next.Has(end))
			if created {
				queue = append(queue, item{id, next})
			}
			a.link(cur.id, sym, id)
		}
	}
	return a
}
