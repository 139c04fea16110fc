package grep

import (
	"bufio"
	"bytes"
	"io"

	"github.com/pkg/errors"
)

// DefaultMaxLineLength is the longest line accepted unless configured
// otherwise, not counting the terminator.
const DefaultMaxLineLength = 100

// MaxLineLengthLimit bounds the configurable cap. A line of length L costs
// (L+1)^2 bits per pattern node and cubic time per concatenation.
const MaxLineLengthLimit = 4096

// initialBufferSize is how much the reader allocates up front; the buffer
// grows toward the cap only when a line needs it.
const initialBufferSize = 4096

// ErrLineTooLong is returned when a line exceeds the configured cap.
var ErrLineTooLong = errors.New("input line too long")

// LineReader yields the lines of an input, refusing any line longer than
// the cap. Lines end at '\n'; a last line without a terminator still counts.
type LineReader struct {
	scanner *bufio.Scanner
	max     int
	n       int
	bytes   int64
}

func NewLineReader(r io.Reader, limit int) *LineReader {
	s := bufio.NewScanner(r)
	// A full line plus its terminator must fit; anything longer makes the
	// scanner fail with bufio.ErrTooLong.
	s.Buffer(make([]byte, 0, min(limit+1, initialBufferSize)), limit+1)
	s.Split(scanLines)
	return &LineReader{scanner: s, max: limit}
}

// scanLines is bufio.ScanLines without the carriage return stripping: only
// '\n' separates lines and every other byte belongs to the line.
func scanLines(data []byte, atEOF bool) (int, []byte, error) {
	if atEOF && len(data) == 0 {
		return 0, nil, nil
	}
	if i := bytes.IndexByte(data, '\n'); i >= 0 {
		return i + 1, data[:i], nil
	}
	if atEOF {
		return len(data), data, nil
	}
	return 0, nil, nil
}

// Next returns the next line. It returns io.EOF after the last line.
func (r *LineReader) Next() (string, error) {
	if !r.scanner.Scan() {
		err := r.scanner.Err()
		switch {
		case err == nil:
			return "", io.EOF
		case errors.Is(err, bufio.ErrTooLong):
			return "", errors.Wrapf(ErrLineTooLong, "line %d exceeds %d bytes", r.n+1, r.max)
		default:
			return "", errors.Wrapf(err, "reading line %d", r.n+1)
		}
	}
	line := r.scanner.Text()
	r.n++
	r.bytes += int64(len(line))
	return line, nil
}

// Line is the number of lines returned so far.
func (r *LineReader) Line() int { return r.n }

// Bytes is the number of line bytes returned so far, terminators excluded.
func (r *LineReader) Bytes() int64 { return r.bytes }
