package regexlib

import "testing"

func TestToRegexpSimple(t *testing.T) {
	if got := mustShort(t, "ab").ToRegexp(); got != "ab" {
		t.Fatalf("want ab got %q", got)
	}
}

func TestToRegexpLoop(t *testing.T) {
	if got := mustShort(t, "a(b|c)*d").ToRegexp(); got != "a(b|c)*d" {
		t.Fatalf("got %q", got)
	}
}

func TestToRegexpNullable(t *testing.T) {
	// an accepting start state means the empty word is in the language and
	// must survive the conversion
	cases := []struct {
		pattern string
		want    string
	}{
		{"a?", "a?"},
		{"(ab)?", "(ab)?"},
		{"a*", "a*"},
		{"(ab)*", "(ab)*"},
	}
	for _, c := range cases {
		src := mustShort(t, c.pattern)
		got := src.ToRegexp()
		if got != c.want {
			t.Fatalf("%q: want %q got %q", c.pattern, c.want, got)
		}
		restored := mustShort(t, got)
		if !Recognize(restored, "").Accepted {
			t.Fatalf("%q: restored pattern %q rejects the empty word", c.pattern, got)
		}
	}
}

func TestToRegexpRoundTrip(t *testing.T) {
	for _, pat := range []string{"ab", "a(b|c)*d", "abc", "a?", "(ab)?", "(ab)*", "a*"} {
		src := mustShort(t, pat)
		restored := mustShort(t, src.ToRegexp())
		for _, in := range []string{"", "a", "aa", "ab", "abc", "abab", "ad", "abd", "abcd", "acbd", "abcbcd", "d"} {
			want := Recognize(src, in).Accepted
			if got := Recognize(restored, in).Accepted; got != want {
				t.Fatalf("%q round trip differs on %q: want %v got %v", pat, in, want, got)
			}
		}
	}
}

func TestToRegexpEmptyAutomaton(t *testing.T) {
	if got := (&Automaton{}).ToRegexp(); got != "∅" {
		t.Fatalf("got %q", got)
	}
}
