// Package grep runs a parsed pattern over lines of input and prints the
// lines that match with their matches highlighted.
package grep

import (
	"bufio"
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/funkybooboo/ugrep/internal/logging"
	"github.com/funkybooboo/ugrep/internal/regex"
)

type Options struct {
	// MaxLineLength caps input lines; DefaultMaxLineLength when zero.
	MaxLineLength int
	Highlighter   Highlighter
	Logger        *zap.Logger
}

// Stats summarizes a run.
type Stats struct {
	Lines   int
	Printed int
	Bytes   int64
}

type Grep struct {
	pattern regex.Pattern
	opts    Options
	log     *zap.Logger
}

func New(pattern regex.Pattern, opts Options) *Grep {
	if opts.MaxLineLength == 0 {
		opts.MaxLineLength = DefaultMaxLineLength
	}
	log := opts.Logger
	if log == nil {
		log = logging.Nop()
	}
	return &Grep{pattern: pattern, opts: opts, log: log.Named("scan")}
}

// Line matches one line. It reports whether the line has any match, even an
// empty one, and if so returns the line with its spans highlighted.
func (g *Grep) Line(text string) (string, bool) {
	t := regex.Matches(g.pattern, text)
	if !t.Any() {
		return "", false
	}
	var sb strings.Builder
	// strings.Builder never fails to write.
	_ = g.opts.Highlighter.Render(&sb, text, Spans(t))
	return sb.String(), true
}

// Run reads r line by line and writes every matching line to w. It stops
// at the first error; lines already written stay written.
func (g *Grep) Run(r io.Reader, w io.Writer) (Stats, error) {
	lines := NewLineReader(r, g.opts.MaxLineLength)
	out := bufio.NewWriter(w)

	stats, err := g.scan(lines, out)
	if ferr := out.Flush(); err == nil && ferr != nil {
		err = errors.Wrap(ferr, "writing output")
	}
	stats.Lines = lines.Line()
	stats.Bytes = lines.Bytes()

	g.log.Debug("done",
		zap.Int("lines", stats.Lines),
		zap.Int("printed", stats.Printed),
		zap.String("read", humanize.Bytes(uint64(stats.Bytes))))
	return stats, err
}

func (g *Grep) scan(lines *LineReader, out *bufio.Writer) (Stats, error) {
	var stats Stats
	for {
		text, err := lines.Next()
		if err == io.EOF {
			return stats, nil
		}
		if err != nil {
			g.log.Debug("read failed", zap.Int("line", lines.Line()+1), zap.Error(err))
			return stats, err
		}
		g.log.Debug("line", zap.Int("n", lines.Line()), zap.String("text", text))

		hl, ok := g.Line(text)
		if !ok {
			continue
		}
		if _, err := out.WriteString(hl + "\n"); err != nil {
			return stats, errors.Wrap(err, "writing output")
		}
		stats.Printed++
	}
}
