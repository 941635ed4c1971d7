package main

import (
	"bufio"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"automata/regexlib"
)

type suite struct {
	Cases []suiteCase `yaml:"cases"`
}

type suiteCase struct {
	Pattern string   `yaml:"pattern"`
	Accept  []string `yaml:"accept"`
	Reject  []string `yaml:"reject"`
}

func main() {
	suiteFile := flag.String("suite", "", "YAML recognition suite to run")
	flag.Parse()

	if *suiteFile != "" {
		os.Exit(runSuite(*suiteFile))
	}
	repl()
}

func runSuite(path string) int {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	var s suite
	if err := yaml.Unmarshal(data, &s); err != nil {
		log.Fatalf("%s: %v", path, err)
	}

	failures := 0
	for _, c := range s.Cases {
		full, err := regexlib.BuildFullAutomaton(c.Pattern)
		if err != nil {
			fmt.Printf("FAIL %q: %v\n", c.Pattern, err)
			failures++
			continue
		}
		short, err := regexlib.BuildOptimalAutomaton(c.Pattern)
		if err != nil {
			fmt.Printf("FAIL %q: %v\n", c.Pattern, err)
			failures++
			continue
		}
		for _, in := range c.Accept {
			failures += check(c.Pattern, full, short, in, true)
		}
		for _, in := range c.Reject {
			failures += check(c.Pattern, full, short, in, false)
		}
	}
	if failures > 0 {
		fmt.Printf("%d failure(s)\n", failures)
		return 1
	}
	fmt.Println("ok")
	return 0
}

func check(pattern string, full, short *regexlib.Automaton, in string, want bool) int {
	bad := 0
	for name, a := range map[string]*regexlib.Automaton{"full": full, "short": short} {
		if got := regexlib.Recognize(a, in).Accepted; got != want {
			fmt.Printf("FAIL %q (%s) on %q: want %v got %v\n", pattern, name, in, want, got)
			bad++
		}
	}
	return bad
}

func repl() {
	rdr := bufio.NewReader(os.Stdin)
	for {
		fmt.Print("pattern> ")
		pat, err := rdr.ReadString('\n')
		if err != nil {
			return
		}
		pat = strings.TrimRight(pat, "\r\n")
		if pat == "" {
			return
		}
		full, err := regexlib.BuildFullAutomaton(pat)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		short, err := regexlib.BuildOptimalAutomaton(pat)
		if err != nil {
			fmt.Println("error:", err)
			continue
		}
		fmt.Printf("full DFA: %d states, short DFA: %d states, alphabet %q\n",
			len(full.States), len(short.States), string(short.Alphabet))

		for {
			fmt.Print("string> ")
			in, err := rdr.ReadString('\n')
			if err != nil {
				return
			}
			in = strings.TrimRight(in, "\r\n")
			if in == "." {
				break
			}
			printTrace("full ", regexlib.Recognize(full, in))
			printTrace("short", regexlib.Recognize(short, in))
		}
	}
}

func printTrace(tag string, tr regexlib.Trace) {
	var b strings.Builder
	for _, st := range tr.Steps {
		fmt.Fprintf(&b, " q%d -%c-> q%d", st.From, st.Symbol, st.To)
	}
	verdict := "rejected"
	if tr.Accepted {
		verdict = "accepted"
	}
	fmt.Printf("%s:%s => %s\n", tag, b.String(), verdict)
}
