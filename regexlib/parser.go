package regexlib

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf8"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// SyntaxError reports a malformed pattern: empty input, an unbalanced
// parenthesis, or an operator with a missing operand. No partial tree is
// ever returned alongside it.
type SyntaxError struct {
	Pattern string
	Offset  int
	Msg     string
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("syntax error in %q at offset %d: %s", e.Pattern, e.Offset, e.Msg)
}

/* ----------------------- surface grammar ----------------------- */

// Binding, tightest first: postfix * + ?, implicit concatenation, union |.
// Escaping with backslash turns any metacharacter into a literal.

var patternLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Meta", Pattern: `[()|*+?]`},
	{Name: "Char", Pattern: `\\.|[^()|*+?\\]`},
})

type patternAST struct {
	Alt *altAST `parser:"@@"`
}

type altAST struct {
	First *catAST   `parser:"@@"`
	Rest  []*catAST `parser:"( '|' @@ )*"`
}

type catAST struct {
	Terms []*termAST `parser:"@@+"`
}

type termAST struct {
	Atom *atomAST `parser:"@@"`
	Ops  []string `parser:"( @'*' | @'+' | @'?' )*"`
}

type atomAST struct {
	Char  *string `parser:"@Char"`
	Group *altAST `parser:"| '(' @@ ')'"`
}

var patternParser = participle.MustBuild[patternAST](
	participle.Lexer(patternLexer),
)

/* ----------------------- tree building ----------------------- */

// Parse turns a pattern into its syntax tree, augmented with the end-marker
// leaf. Leaf positions are assigned in the left-to-right order operands
// appear in the pattern; every later algorithm depends on that order.
func Parse(pattern string) (*Tree, error) {
	if pattern == "" {
		return nil, &SyntaxError{Pattern: pattern, Msg: "empty pattern"}
	}
	ast, err := patternParser.ParseString("", pattern)
	if err != nil {
		var perr participle.Error
		if errors.As(err, &perr) {
			return nil, &SyntaxError{Pattern: pattern, Offset: perr.Position().Offset, Msg: perr.Message()}
		}
		return nil, &SyntaxError{Pattern: pattern, Msg: err.Error()}
	}

	t := &Tree{Pattern: pattern}
	expr := t.fromAlt(ast.Alt)

	marker := &Node{Kind: KindLeaf, Symbol: EndMarker, Marker: true, Pos: len(t.Leaves)}
	t.Leaves = append(t.Leaves, marker)
	t.Root = &Node{Kind: KindConcat, Left: expr, Right: marker}

	alpha := map[rune]struct{}{}
	for _, leaf := range t.Leaves {
		if !leaf.Marker {
			alpha[leaf.Symbol] = struct{}{}
		}
	}
	t.Alphabet = make([]rune, 0, len(alpha))
	for r := range alpha {
		t.Alphabet = append(t.Alphabet, r)
	}
	sort.Slice(t.Alphabet, func(i, j int) bool { return t.Alphabet[i] < t.Alphabet[j] })

	return t, nil
}

func (t *Tree) fromAlt(a *altAST) *Node {
	n := t.fromCat(a.First)
	for _, alt := range a.Rest {
		n = &Node{Kind: KindUnion, Left: n, Right: t.fromCat(alt)}
	}
	return n
}

func (t *Tree) fromCat(c *catAST) *Node {
	n := t.fromTerm(c.Terms[0])
	for _, term := range c.Terms[1:] {
		n = &Node{Kind: KindConcat, Left: n, Right: t.fromTerm(term)}
	}
	return n
}

func (t *Tree) fromTerm(tm *termAST) *Node {
	n := t.fromAtom(tm.Atom)
	for _, op := range tm.Ops {
		switch op {
		case "*":
			n = &Node{Kind: KindStar, Left: n}
		case "+":
			n = &Node{Kind: KindPlus, Left: n}
		case "?":
			n = &Node{Kind: KindOptional, Left: n}
		}
	}
	return n
}

func (t *Tree) fromAtom(a *atomAST) *Node {
	if a.Group != nil {
		return t.fromAlt(a.Group)
	}
	sym, _ := utf8.DecodeRuneInString(*a.Char)
	if sym == '\\' && len(*a.Char) > 1 {
		sym, _ = utf8.DecodeRuneInString((*a.Char)[1:])
	}
	leaf := &Node{Kind: KindLeaf, Symbol: sym, Pos: len(t.Leaves)}
	t.Leaves = append(t.Leaves, leaf)
	return leaf
}
