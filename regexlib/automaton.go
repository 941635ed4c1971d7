package regexlib

// State is one DFA state. Label holds the source positions (direct
// construction) or NFA state ids (subset construction) the state stands
// for; it is empty only for the synthetic dead state of a full automaton.
type State struct {
	ID        int
	Label     PosSet
	Accepting bool
}

// Automaton is a DFA. State ids are dense, zero-based, assigned in creation
// order; the start state is always id 0. Trans is total for automata built
// by Determinize and partial for automata built by BuildDirect: an absent
// entry means no such transition exists.
type Automaton struct {
	States   []State
	Alphabet []rune
	Start    int
	Trans    map[int]map[rune]int
}

// Next looks up the transition for (state, sym).
func (a *Automaton) Next(state int, sym rune) (int, bool) {
	to, ok := a.Trans[state][sym]
	return to, ok
}

func (a *Automaton) link(from int, sym rune, to int) {
	row, ok := a.Trans[from]
	if !ok {
		row = map[rune]int{}
		a.Trans[from] = row
	}
	row[sym] = to
}

// dead reports whether id is the synthetic dead state.
func (a *Automaton) dead(id int) bool {
	return a.States[id].Label.Empty()
}

func newAutomaton(alphabet []rune) *Automaton {
	return &Automaton{
		Alphabet: append([]rune(nil), alphabet...),
		Trans:    map[int]map[rune]int{},
	}
}

// interner deduplicates states by exact label-set equality. Two states with
// identical label sets are always merged into one.
type interner struct {
	a     *Automaton
	index map[string]int
}

func newInterner(a *Automaton) *interner {
	return &interner{a: a, index: map[string]int{}}
}

func (in *interner) intern(label PosSet, accepting bool) (id int, created bool) {
	key := label.Key()
	if id, ok := in.index[key]; ok {
		return id, false
	}
	id = len(in.a.States)
	in.a.States = append(in.a.States, State{ID: id, Label: label, Accepting: accepting})
	in.index[key] = id
	return id, true
}

/* ----------------------- top-level pipelines ----------------------- */

// BuildFullAutomaton parses pattern and determinizes its Thompson NFA into
// a DFA with a total transition function.
func BuildFullAutomaton(pattern string) (*Automaton, error) {
	t, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return Determinize(BuildNFA(t), t.Alphabet), nil
}

// BuildOptimalAutomaton parses pattern and builds a DFA directly from the
// tree's position attributes. The transition function is partial and no
// dead state is materialized.
func BuildOptimalAutomaton(pattern string) (*Automaton, error) {
	t, err := Parse(pattern)
	if err != nil {
		return nil, err
	}
	return BuildDirect(Annotate(t)), nil
}
