package regexlib

// Step records one consumed symbol of a recognition run.
type Step struct {
	Symbol   rune
	From, To int
}

// Trace is the ordered record of a recognition run. It is freshly allocated
// per call and never mutated after return.
type Trace struct {
	Steps    []Step
	Accepted bool
}

// Recognize simulates a over input, one symbol at a time. A missing
// transition, a symbol outside the alphabet, or a move into the dead state
// of a full automaton all stop the run immediately with Accepted=false,
// leaving the remaining input unconsumed; none of them is an error.
func Recognize(a *Automaton, input string) Trace {
	cur := a.Start
	var steps []Step
	for _, sym := range input {
		next, ok := a.Next(cur, sym)
		if !ok || a.dead(next) {
			return Trace{Steps: steps, Accepted: false}
		}
		steps = append(steps, Step{Symbol: sym, From: cur, To: next})
		cur = next
	}
	return Trace{Steps: steps, Accepted: a.States[cur].Accepting}
}
