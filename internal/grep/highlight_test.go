package grep

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/funkybooboo/ugrep/internal/regex"
)

var brackets = Highlighter{Start: "<", Stop: ">"}

func spansOf(t *testing.T, pattern, text string) []Span {
	t.Helper()
	p, err := regex.Parse(pattern)
	require.NoError(t, err)
	return Spans(regex.Matches(p, text))
}

func TestSpans(t *testing.T) {
	cases := []struct {
		pattern string
		text    string
		want    []Span
	}{
		{"b+", "abbba", []Span{{1, 4}}},
		{"a*", "aaa", []Span{{0, 3}}},
		{"a", "banana", []Span{{1, 2}, {3, 4}, {5, 6}}},
		{"x*", "ab", nil},
		{"^a", "aaa", []Span{{0, 1}}},
		{"a$", "aaa", []Span{{2, 3}}},
		// The longest match starting at each cursor wins, even when a longer
		// match starts inside it.
		{"ab|bcd", "abcd", []Span{{0, 2}}},
		{"aa", "aaa", []Span{{0, 2}}},
	}

	for _, tc := range cases {
		t.Run(tc.pattern+"/"+tc.text, func(t *testing.T) {
			assert.Equal(t, tc.want, spansOf(t, tc.pattern, tc.text))
		})
	}
}

func TestRender(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, brackets.Render(&sb, "abbba", []Span{{1, 4}}))
	assert.Equal(t, "a<bbb>a", sb.String())

	sb.Reset()
	require.NoError(t, brackets.Render(&sb, "banana", []Span{{0, 1}, {1, 2}, {5, 6}}))
	assert.Equal(t, "<b><a>nan<a>", sb.String())

	sb.Reset()
	require.NoError(t, brackets.Render(&sb, "plain", nil))
	assert.Equal(t, "plain", sb.String())
}

func TestRenderRed(t *testing.T) {
	var sb strings.Builder
	require.NoError(t, Red.Render(&sb, "abbba", []Span{{1, 4}}))
	assert.Equal(t, "a\x1b[31mbbb\x1b[0ma", sb.String())

	sb.Reset()
	require.NoError(t, Plain.Render(&sb, "abbba", []Span{{1, 4}}))
	assert.Equal(t, "abbba", sb.String())
}
