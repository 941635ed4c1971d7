package regexlib

import (
	"strings"
	"testing"
)

func verdict(t *testing.T, a *Automaton, in string, want bool) {
	t.Helper()
	if got := Recognize(a, in).Accepted; got != want {
		t.Fatalf("recognize %q: want %v got %v", in, want, got)
	}
}

func TestRecognizeClassic(t *testing.T) {
	for _, build := range []func(*testing.T, string) *Automaton{mustFull, mustShort} {
		a := build(t, "(a|b)*abb")
		verdict(t, a, "aabb", true)
		verdict(t, a, "abb", true)
		verdict(t, a, "babb", true)
		verdict(t, a, "ab", false)
		verdict(t, a, "", false)
		verdict(t, a, "abba", false)
	}
}

func TestRecognizeEmptyAndUnknownSymbol(t *testing.T) {
	for _, build := range []func(*testing.T, string) *Automaton{mustFull, mustShort} {
		a := build(t, "a*")
		verdict(t, a, "", true)
		verdict(t, a, "aaaa", true)
		// b is not in this automaton's alphabet: immediate rejection,
		// never a hard failure
		verdict(t, a, "ab", false)
		verdict(t, a, "xyz", false)
	}
}

func TestRecognizeTrace(t *testing.T) {
	a := mustShort(t, "ab")
	tr := Recognize(a, "ab")
	if !tr.Accepted || len(tr.Steps) != 2 {
		t.Fatalf("trace: %+v", tr)
	}
	if tr.Steps[0] != (Step{Symbol: 'a', From: 0, To: 1}) {
		t.Fatalf("step 0: %+v", tr.Steps[0])
	}
	if tr.Steps[1] != (Step{Symbol: 'b', From: 1, To: 2}) {
		t.Fatalf("step 1: %+v", tr.Steps[1])
	}
}

func TestRecognizeTraceEndsShort(t *testing.T) {
	// on a missing transition the remaining input stays unconsumed
	a := mustShort(t, "ab")
	tr := Recognize(a, "aab")
	if tr.Accepted {
		t.Fatal("aab must be rejected")
	}
	if len(tr.Steps) != 1 || tr.Steps[0].Symbol != 'a' {
		t.Fatalf("trace must stop after the first a: %+v", tr.Steps)
	}
}

func TestRecognizeDeadStateStopsTrace(t *testing.T) {
	// the full automaton is total, but a move into the dead state ends the
	// run exactly like a missing transition
	a := mustFull(t, "ab")
	tr := Recognize(a, "ba")
	if tr.Accepted || len(tr.Steps) != 0 {
		t.Fatalf("trace: %+v", tr)
	}
	tr = Recognize(a, "abb")
	if tr.Accepted || len(tr.Steps) != 2 {
		t.Fatalf("trace: %+v", tr)
	}
}

// ------------------------------------------------------------------- equivalence

// allWords returns every string over alphabet up to maxLen, shortest first.
func allWords(alphabet string, maxLen int) []string {
	words := []string{""}
	prev := []string{""}
	for i := 0; i < maxLen; i++ {
		var next []string
		for _, w := range prev {
			for _, c := range alphabet {
				next = append(next, w+string(c))
			}
		}
		words = append(words, next...)
		prev = next
	}
	return words
}

// Both construction routes must decide the same language.
func TestFullShortEquivalence(t *testing.T) {
	patterns := []string{"(a|b)*abb", "a*", "ab", "a|ab", "(ab|a)*c", "a?b+", "((a|b)?c)*", "a*b*c*"}
	words := allWords("abc", 4)

	for _, pat := range patterns {
		full := mustFull(t, pat)
		short := mustShort(t, pat)
		for _, w := range words {
			f := Recognize(full, w).Accepted
			s := Recognize(short, w).Accepted
			if f != s {
				t.Fatalf("%q on %q: full=%v short=%v", pat, w, f, s)
			}
		}
	}
}

// ------------------------------------------------------------------- bench

func BenchmarkRecognize(b *testing.B) {
	a, err := BuildOptimalAutomaton("(a|b)*abb")
	if err != nil {
		b.Fatal(err)
	}
	in := strings.Repeat("ab", 50_000) + "abb"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Recognize(a, in)
	}
}
