package main

import (
	"fmt"
	"io"

	"automata/regexlib"
)

// writeAutomatonDOT prints a Graphviz representation of a DFA.
func writeAutomatonDOT(w io.Writer, a *regexlib.Automaton) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")
	for _, s := range a.States {
		shape := "circle"
		if s.Accepting {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    q%d [shape=%s, tooltip=%q];\n", s.ID, shape, s.Label.String())
		for _, c := range a.Alphabet {
			if to, ok := a.Next(s.ID, c); ok {
				fmt.Fprintf(w, "    q%d -> q%d [label=\"%c\"];\n", s.ID, to, c)
			}
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> q%d;\n", a.Start)
	fmt.Fprintln(w, "}")
}

// writeNFADOT prints a Graphviz representation of a Thompson NFA.
func writeNFADOT(w io.Writer, n *regexlib.NFA) {
	fmt.Fprintln(w, "digraph G {")
	fmt.Fprintln(w, "    rankdir=LR;")
	for id, s := range n.States {
		shape := "circle"
		if id == n.Accept {
			shape = "doublecircle"
		}
		fmt.Fprintf(w, "    n%d [shape=%s];\n", id, shape)
		for _, e := range s.Edges {
			label := "ε"
			if e.Symbol != regexlib.Epsilon {
				label = string(e.Symbol)
			}
			fmt.Fprintf(w, "    n%d -> n%d [label=\"%s\"];\n", id, e.To, label)
		}
	}
	fmt.Fprintf(w, "    _start [shape=point]; _start -> n%d;\n", n.Start)
	fmt.Fprintln(w, "}")
}
