package regex

import (
	"strings"

	"github.com/pkg/errors"
)

// ErrInvalidPattern is the cause of every error returned by Parse.
var ErrInvalidPattern = errors.New("invalid pattern")

// metachars are the bytes that never stand for themselves in a pattern.
const metachars = ".^$*?+|()[{"

func ordinary(c byte) bool {
	return strings.IndexByte(metachars, c) < 0
}

type parser struct {
	pattern string
	pos     int
}

func newParser(p string) *parser {
	return &parser{pattern: p, pos: 0}
}

// Parse turns a pattern string into a Pattern tree. Any syntax error is
// reported as ErrInvalidPattern wrapped with the offset where parsing
// stopped.
func Parse(pattern string) (Pattern, error) {
	p := newParser(pattern)
	root, err := p.parseAlternation()
	if err != nil {
		return nil, err
	}
	if !p.eof() {
		return nil, p.errorf("unexpected %q", p.peek())
	}
	return root, nil
}

func (p *parser) eof() bool {
	return p.pos >= len(p.pattern)
}

func (p *parser) peek() byte {
	if p.eof() {
		return 0
	}
	return p.pattern[p.pos]
}

func (p *parser) errorf(format string, args ...interface{}) error {
	return errors.Wrapf(errors.WithMessagef(ErrInvalidPattern, format, args...),
		"offset %d", p.pos)
}

func (p *parser) parseAlternation() (Pattern, error) {
	left, err := p.parseConcatenation()
	if err != nil {
		return nil, err
	}
	for !p.eof() && p.peek() == '|' {
		p.pos++
		right, err := p.parseConcatenation()
		if err != nil {
			return nil, err
		}
		left = Alternation(left, right)
	}
	return left, nil
}

func (p *parser) parseConcatenation() (Pattern, error) {
	left, err := p.parseRepetition()
	if err != nil {
		return nil, err
	}
	for !p.eof() {
		if ch := p.peek(); ch == '|' || ch == ')' {
			break
		}
		right, err := p.parseRepetition()
		if err != nil {
			return nil, err
		}
		left = Concat(left, right)
	}
	return left, nil
}

func (p *parser) parseRepetition() (Pattern, error) {
	atom, err := p.parseAtom()
	if err != nil {
		return nil, err
	}
	if p.eof() {
		return atom, nil
	}
	switch p.peek() {
	case '*':
		p.pos++
		return ZeroOrMore(atom), nil
	case '+':
		p.pos++
		return OneOrMore(atom), nil
	case '?':
		p.pos++
		return ZeroOrOne(atom), nil
	}
	return atom, nil
}

func (p *parser) parseAtom() (Pattern, error) {
	if p.eof() {
		return nil, p.errorf("unexpected end of pattern")
	}
	ch := p.peek()
	if ordinary(ch) {
		p.pos++
		return Literal(ch), nil
	}
	switch ch {
	case '.':
		p.pos++
		return AnyChar(), nil

	case '^':
		p.pos++
		return StartAnchor(), nil

	case '$':
		p.pos++
		return EndAnchor(), nil

	case '[':
		p.pos++
		end := strings.IndexByte(p.pattern[p.pos:], ']')
		if end < 0 {
			return nil, p.errorf("unterminated character class")
		}
		members := p.pattern[p.pos : p.pos+end]
		p.pos += end + 1
		return CharClass(members), nil

	case '(':
		p.pos++
		sub, err := p.parseAlternation()
		if err != nil {
			return nil, err
		}
		if p.eof() || p.peek() != ')' {
			return nil, p.errorf("unterminated group")
		}
		p.pos++
		return sub, nil
	}
	return nil, p.errorf("unexpected %q", ch)
}
