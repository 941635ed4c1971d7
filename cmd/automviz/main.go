package main

import (
	"bytes"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/exec"

	"automata/regexlib"
)

func main() {
	pattern := flag.String("re", "", "pattern (required)")
	shortFlag := flag.Bool("short", false, "export the direct-construction DFA (partial transitions)")
	nfaFlag := flag.Bool("nfa", false, "export the Thompson NFA")
	minFlag := flag.Bool("min", false, "minimize the DFA before export")
	outFile := flag.String("o", "graph.dot", "output file, - for stdout")
	pngFlag := flag.Bool("png", false, "render PNG via dot -Tpng")
	flag.Parse()

	if *pattern == "" {
		fmt.Fprintln(os.Stderr, "usage: automviz -re <pattern> [-short|-nfa] [-min] [-o file] [-png]")
		flag.PrintDefaults()
		os.Exit(2)
	}

	var buf bytes.Buffer
	switch {
	case *nfaFlag:
		tree, err := regexlib.Parse(*pattern)
		if err != nil {
			log.Fatal(err)
		}
		writeNFADOT(&buf, regexlib.BuildNFA(tree))
	case *shortFlag:
		a, err := regexlib.BuildOptimalAutomaton(*pattern)
		if err != nil {
			log.Fatal(err)
		}
		if *minFlag {
			a = regexlib.Minimize(a)
		}
		writeAutomatonDOT(&buf, a)
	default:
		a, err := regexlib.BuildFullAutomaton(*pattern)
		if err != nil {
			log.Fatal(err)
		}
		if *minFlag {
			a = regexlib.Minimize(a)
		}
		writeAutomatonDOT(&buf, a)
	}

	if *pngFlag {
		cmd := exec.Command("dot", "-Tpng", "-o", *outFile)
		cmd.Stdin = bytes.NewReader(buf.Bytes())
		cmd.Stderr = os.Stderr
		if err := cmd.Run(); err != nil {
			log.Fatalf("dot failed: %v", err)
		}
		fmt.Printf("PNG written to %s\n", *outFile)
		return
	}

	var w io.Writer
	if *outFile == "-" {
		w = os.Stdout
	} else {
		f, err := os.Create(*outFile)
		if err != nil {
			log.Fatalf("cannot create %s: %v", *outFile, err)
		}
		defer f.Close()
		w = f
	}
	_, _ = io.Copy(w, &buf)
	if *outFile != "-" {
		fmt.Printf("DOT written to %s\n", *outFile)
	}
}
