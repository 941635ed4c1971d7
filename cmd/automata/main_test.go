package main

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"
)

func writeSuite(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "suite.yaml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestSuiteDecode(t *testing.T) {
	var s suite
	err := yaml.Unmarshal([]byte(`
cases:
  - pattern: (a|b)*abb
    accept: [aabb, abb]
    reject: [ab]
`), &s)
	if err != nil {
		t.Fatal(err)
	}
	if len(s.Cases) != 1 || s.Cases[0].Pattern != "(a|b)*abb" {
		t.Fatalf("decoded %+v", s)
	}
	if len(s.Cases[0].Accept) != 2 || len(s.Cases[0].Reject) != 1 {
		t.Fatalf("decoded %+v", s.Cases[0])
	}
}

func TestRunSuite(t *testing.T) {
	good := writeSuite(t, `
cases:
  - pattern: (a|b)*abb
    accept: [aabb, abb, babb]
    reject: [ab, abba]
  - pattern: a*
    accept: ["", aaaa]
    reject: [ab]
`)
	if code := runSuite(good); code != 0 {
		t.Fatalf("good suite: exit %d", code)
	}

	bad := writeSuite(t, `
cases:
  - pattern: ab
    accept: [ba]
`)
	if code := runSuite(bad); code != 1 {
		t.Fatalf("bad suite: exit %d", code)
	}

	broken := writeSuite(t, `
cases:
  - pattern: "(a|b"
    accept: [a]
`)
	if code := runSuite(broken); code != 1 {
		t.Fatalf("syntax-error suite: exit %d", code)
	}
}
