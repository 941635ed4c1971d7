package regexlib

import (
	"strings"
	"unicode/utf8"
)

// ToRegexp converts the automaton back into an equivalent pattern by state
// elimination (McNaughton-Yamada). The output is not simplified beyond
// basic grouping.
func (a *Automaton) ToRegexp() string {
	if a == nil || len(a.States) == 0 {
		return "∅"
	}

	n := len(a.States)
	R := make([][]string, n)
	for i := range R {
		R[i] = make([]string, n)
	}

	// direct edges
	for from := 0; from < n; from++ {
		for _, c := range a.Alphabet {
			to, ok := a.Next(from, c)
			if !ok {
				continue
			}
			lex := escapeRune(c)
			if R[from][to] == "" {
				R[from][to] = lex
			} else {
				R[from][to] += "|" + lex
			}
		}
	}

	var finals []int
	for _, s := range a.States {
		if s.Accepting {
			finals = append(finals, s.ID)
		}
	}

	// eliminate intermediate states one by one
	for k := 0; k < n; k++ {
		for i := 0; i < n; i++ {
			if i == k {
				continue
			}
			for j := 0; j < n; j++ {
				if j == k {
					continue
				}
				rik, rkk, rkj := R[i][k], R[k][k], R[k][j]
				if rik == "" || rkj == "" {
					continue
				}
				var middle string
				if rkk != "" {
					middle = "(" + rkk + ")*"
				}
				expr := groupAlt(rik) + middle + groupAlt(rkj)
				if R[i][j] == "" {
					R[i][j] = expr
				} else {
					R[i][j] += "|" + expr
				}
			}
		}
	}

	var parts []string
	epsilonCovered := false
	for _, f := range finals {
		if f == a.Start {
			if R[f][f] != "" {
				parts = append(parts, starWrap(R[f][f]))
				epsilonCovered = true
			}
			continue
		}
		if part := R[a.Start][f]; part != "" {
			parts = append(parts, part)
		}
	}
	if len(parts) == 0 {
		return "∅"
	}
	out := strings.Join(parts, "|")
	if a.States[a.Start].Accepting && !epsilonCovered {
		// an accepting start with no self loop admits the empty word; the
		// grammar has no epsilon literal, so the whole result turns optional
		out = optWrap(out)
	}
	return out
}

func starWrap(s string) string { return wrapPostfix(s, "*") }
func optWrap(s string) string  { return wrapPostfix(s, "?") }

// wrapPostfix applies a postfix operator, parenthesizing any body longer
// than a single rune so the operator binds to the whole of it.
func wrapPostfix(s, op string) string {
	if utf8.RuneCountInString(s) > 1 {
		return "(" + s + ")" + op
	}
	return s + op
}

func escapeRune(r rune) string {
	switch r {
	case '*', '+', '?', '|', '(', ')', '\\':
		return "\\" + string(r)
	default:
		return string(r)
	}
}

func groupAlt(s string) string {
	if strings.ContainsRune(s, '|') {
		return "(" + s + ")"
	}
	return s
}
