package regex

import (
	"strconv"
)

// Pattern is a node of a parsed expression. Match sets t[b][e] for every
// substring text[b:e] the node matches; t must be sized for len(text).
// A Pattern never changes after construction, so one tree can be matched
// against any number of lines.
type Pattern interface {
	Match(text string, t *Table)
	String() string
}

type literal struct{ sym byte }
type anyChar struct{}
type startAnchor struct{}
type endAnchor struct{}

type charClass struct {
	members string
	set     [256]bool
}

type concat struct{ left, right Pattern }
type alternation struct{ left, right Pattern }

type zeroOrMore struct{ inner Pattern }
type oneOrMore struct{ inner Pattern }
type zeroOrOne struct{ inner Pattern }

// Literal matches the single byte sym.
func Literal(sym byte) Pattern { return &literal{sym: sym} }

// AnyChar matches any single byte.
func AnyChar() Pattern { return &anyChar{} }

// StartAnchor matches the empty string at the start of the line.
func StartAnchor() Pattern { return &startAnchor{} }

// EndAnchor matches the empty string at the end of the line.
func EndAnchor() Pattern { return &endAnchor{} }

// CharClass matches any single byte listed in members.
func CharClass(members string) Pattern {
	c := &charClass{members: members}
	for i := 0; i < len(members); i++ {
		c.set[members[i]] = true
	}
	return c
}

func Concat(left, right Pattern) Pattern      { return &concat{left: left, right: right} }
func Alternation(left, right Pattern) Pattern { return &alternation{left: left, right: right} }

func ZeroOrMore(inner Pattern) Pattern { return &zeroOrMore{inner: inner} }
func OneOrMore(inner Pattern) Pattern  { return &oneOrMore{inner: inner} }
func ZeroOrOne(inner Pattern) Pattern  { return &zeroOrOne{inner: inner} }

func (p *literal) String() string     { return string([]byte{p.sym}) }
func (p *anyChar) String() string     { return "." }
func (p *startAnchor) String() string { return "^" }
func (p *endAnchor) String() string   { return "$" }
func (p *charClass) String() string   { return "[" + p.members + "]" }

func (p *concat) String() string {
	return group(p.left, false) + group(p.right, false)
}

func (p *alternation) String() string {
	return p.left.String() + "|" + p.right.String()
}

func (p *zeroOrMore) String() string { return group(p.inner, true) + "*" }
func (p *oneOrMore) String() string  { return group(p.inner, true) + "+" }
func (p *zeroOrOne) String() string  { return group(p.inner, true) + "?" }

// group parenthesizes p where printing it bare would change how it parses
// back: alternations inside a concatenation, and anything but an atom under
// a quantifier.
func group(p Pattern, quantified bool) string {
	switch p.(type) {
	case *alternation:
		return "(" + p.String() + ")"
	case *concat, *zeroOrMore, *oneOrMore, *zeroOrOne:
		if quantified {
			return "(" + p.String() + ")"
		}
	}
	return p.String()
}

// children returns the direct sub-patterns of p in left-to-right order.
func children(p Pattern) []Pattern {
	switch x := p.(type) {
	case *concat:
		return []Pattern{x.left, x.right}
	case *alternation:
		return []Pattern{x.left, x.right}
	case *zeroOrMore:
		return []Pattern{x.inner}
	case *oneOrMore:
		return []Pattern{x.inner}
	case *zeroOrOne:
		return []Pattern{x.inner}
	}
	return nil
}

// label names the variant of p for tree dumps.
func label(p Pattern) string {
	switch x := p.(type) {
	case *literal:
		return "Literal('" + string([]byte{x.sym}) + "')"
	case *anyChar:
		return "AnyChar"
	case *startAnchor:
		return "StartAnchor"
	case *endAnchor:
		return "EndAnchor"
	case *charClass:
		return "CharClass(" + strconv.Quote(x.members) + ")"
	case *concat:
		return "Concat"
	case *alternation:
		return "Alternation"
	case *zeroOrMore:
		return "ZeroOrMore"
	case *oneOrMore:
		return "OneOrMore"
	case *zeroOrOne:
		return "ZeroOrOne"
	}
	return p.String()
}
