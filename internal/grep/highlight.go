package grep

import (
	"io"

	"github.com/funkybooboo/ugrep/internal/regex"
)

// ANSI sequences that switch the foreground to red and back.
const (
	ColorRed   = "\x1b[31m"
	ColorReset = "\x1b[0m"
)

// Span is a highlighted substring [Begin, End) of a line.
type Span struct {
	Begin, End int
}

// Spans picks the substrings to highlight from a line's match table. From
// each cursor position it takes the longest non-empty match starting there
// and resumes after it; where nothing starts, it moves on by one byte. The
// spans are disjoint and in order, though not necessarily the leftmost
// longest match of the line as a whole.
func Spans(t *regex.Table) []Span {
	var spans []Span
	for p := 0; p < t.Len(); {
		if e, ok := t.Longest(p); ok {
			spans = append(spans, Span{Begin: p, End: e})
			p = e
			continue
		}
		p++
	}
	return spans
}

// Highlighter wraps spans of a line in start and stop markers.
type Highlighter struct {
	Start, Stop string
}

// Red highlights with ANSI colour codes.
var Red = Highlighter{Start: ColorRed, Stop: ColorReset}

// Plain leaves spans unmarked.
var Plain = Highlighter{}

// Render writes text with each span wrapped in the markers. spans must be
// sorted and disjoint, as returned by Spans.
func (h Highlighter) Render(w io.Writer, text string, spans []Span) error {
	prev := 0
	for _, s := range spans {
		if _, err := io.WriteString(w, text[prev:s.Begin]+h.Start+text[s.Begin:s.End]+h.Stop); err != nil {
			return err
		}
		prev = s.End
	}
	_, err := io.WriteString(w, text[prev:])
	return err
}
