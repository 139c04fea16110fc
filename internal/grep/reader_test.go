package grep

import (
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readAll(t *testing.T, r *LineReader) ([]string, error) {
	t.Helper()
	var lines []string
	for {
		line, err := r.Next()
		if err == io.EOF {
			return lines, nil
		}
		if err != nil {
			return lines, err
		}
		lines = append(lines, line)
	}
}

func TestLineReader(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"empty input", "", nil},
		{"single", "abc\n", []string{"abc"}},
		{"no final newline", "abc\nde", []string{"abc", "de"}},
		{"empty lines", "\na\n\n", []string{"", "a", ""}},
		{"exactly the cap", "abcde\nxy\n", []string{"abcde", "xy"}},
		{"cap at end of input", "xy\nabcde", []string{"xy", "abcde"}},
		{"carriage return kept", "a\r\nb", []string{"a\r", "b"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readAll(t, NewLineReader(strings.NewReader(tc.input), 5))
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLineReaderTooLong(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  []string
	}{
		{"first line", "abcdef\n", nil},
		{"at end of input", "abcdef", nil},
		{"after good lines", "ab\n\nabcdefgh\nx\n", []string{"ab", ""}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := readAll(t, NewLineReader(strings.NewReader(tc.input), 5))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrLineTooLong))
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestLineReaderDefaultCap(t *testing.T) {
	ok := strings.Repeat("x", DefaultMaxLineLength)
	r := NewLineReader(strings.NewReader(ok+"\n"+ok), DefaultMaxLineLength)
	got, err := readAll(t, r)
	require.NoError(t, err)
	assert.Equal(t, []string{ok, ok}, got)

	r = NewLineReader(strings.NewReader(ok+"x\n"), DefaultMaxLineLength)
	_, err = r.Next()
	assert.True(t, errors.Is(err, ErrLineTooLong))
	assert.Contains(t, err.Error(), "line 1 exceeds 100 bytes")
}

func TestLineReaderCounts(t *testing.T) {
	r := NewLineReader(strings.NewReader("abc\n\nde\n"), 10)
	_, err := readAll(t, r)
	require.NoError(t, err)
	assert.Equal(t, 3, r.Line())
	assert.Equal(t, int64(5), r.Bytes())
}

func TestLineReaderReadError(t *testing.T) {
	boom := errors.New("boom")
	r := NewLineReader(iotest.ErrReader(boom), 10)
	_, err := r.Next()
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.False(t, errors.Is(err, ErrLineTooLong))
}

func TestLineReaderGrowsPastInitialBuffer(t *testing.T) {
	long := strings.Repeat("y", initialBufferSize+10)
	r := NewLineReader(strings.NewReader(long+"\nz\n"), initialBufferSize+10)

	got, err := readAll(t, r)
	require.NoError(t, err)
	assert.Equal(t, []string{long, "z"}, got)

	r = NewLineReader(strings.NewReader(long+"y\n"), initialBufferSize+10)
	_, err = r.Next()
	assert.True(t, errors.Is(err, ErrLineTooLong))
}
