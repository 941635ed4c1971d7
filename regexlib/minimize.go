package regexlib

import "sort"

// Minimize merges indistinguishable states (Hopcroft refinement) and
// returns a new automaton. It is an optional post-pass: neither
// construction route applies it implicitly. A merged state's label is the
// union of its members' labels, so labels stay non-empty and unique.
func Minimize(a *Automaton) *Automaton {
	if a == nil || len(a.States) == 0 {
		return a
	}

	// initial partition: accepting / non-accepting
	acc, non := map[int]struct{}{}, map[int]struct{}{}
	for _, s := range a.States {
		if s.Accepting {
			acc[s.ID] = struct{}{}
		} else {
			non[s.ID] = struct{}{}
		}
	}
	var partitions []map[int]struct{}
	if len(acc) > 0 {
		partitions = append(partitions, acc)
	}
	if len(non) > 0 {
		partitions = append(partitions, non)
	}

	work := make([]int, len(partitions))
	inWork := map[int]struct{}{}
	for i := range work {
		work[i] = i
		inWork[i] = struct{}{}
	}

	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		delete(inWork, idx)
		A := partitions[idx]

		for _, c := range a.Alphabet {
			// X = preimage of A over c
			X := map[int]struct{}{}
			for _, s := range a.States {
				if to, ok := a.Next(s.ID, c); ok {
					if _, in := A[to]; in {
						X[s.ID] = struct{}{}
					}
				}
			}

			for pIdx := 0; pIdx < len(partitions); pIdx++ {
				Y := partitions[pIdx]
				inter := map[int]struct{}{}
				diff := map[int]struct{}{}
				for s := range Y {
					if _, in := X[s]; in {
						inter[s] = struct{}{}
					} else {
						diff[s] = struct{}{}
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}

				partitions[pIdx] = inter
				partitions = append(partitions, diff)
				dIdx := len(partitions) - 1

				if _, queued := inWork[pIdx]; queued {
					work = append(work, dIdx)
					inWork[dIdx] = struct{}{}
				} else if len(inter) < len(diff) {
					work = append(work, pIdx)
					inWork[pIdx] = struct{}{}
				} else {
					work = append(work, dIdx)
					inWork[dIdx] = struct{}{}
				}
			}
		}
	}

	// order blocks by smallest member so the block holding the old start
	// (always id 0) becomes the new state 0
	sort.Slice(partitions, func(i, j int) bool {
		return minMember(partitions[i]) < minMember(partitions[j])
	})

	blockOf := make([]int, len(a.States))
	for b, P := range partitions {
		for s := range P {
			blockOf[s] = b
		}
	}

	out := newAutomaton(a.Alphabet)
	for b, P := range partitions {
		var label PosSet
		accepting := false
		rep := -1
		for s := range P {
			label = label.Union(a.States[s].Label)
			accepting = accepting || a.States[s].Accepting
			if rep < 0 || s < rep {
				rep = s
			}
		}
		out.States = append(out.States, State{ID: b, Label: label, Accepting: accepting})
		for _, c := range a.Alphabet {
			if to, ok := a.Next(rep, c); ok {
				out.link(b, c, blockOf[to])
			}
		}
	}
	out.Start = blockOf[a.Start]
	return out
}

func minMember(set map[int]struct{}) int {
	min := -1
	for s := range set {
		if min < 0 || s < min {
			min = s
		}
	}
	return min
}
