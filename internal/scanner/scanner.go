// Package scanner turns one file's contents into an output block.
package scanner

import (
	"io"

	"github.com/cockroachdb/errors"

	"github.com/dl/rgrep/internal/input"
	"github.com/dl/rgrep/internal/matcher"
	"github.com/dl/rgrep/internal/output"
)

// ErrWrite marks failures writing a block to the output sink.
var ErrWrite = errors.New("write output")

// ErrRead marks a read failure partway through a file. The block for the
// lines read before it is still complete and should be delivered.
var ErrRead = errors.New("read input")

// Strategy scans a single file and emits whatever it found.
//
// Implementations are called concurrently, once per file, with a matcher
// shared by all calls. Anything written to w for one file is delivered to
// the shared sink as one uninterrupted block.
type Strategy interface {
	Scan(path string, r io.Reader, m matcher.Matcher, w io.Writer) error
}

// LineStrategy scans sequentially, first line to last, and highlights the
// first match on each line.
type LineStrategy struct {
	formatter output.Formatter
}

// NewLineStrategy creates a LineStrategy rendering through f.
func NewLineStrategy(f output.Formatter) *LineStrategy {
	return &LineStrategy{formatter: f}
}

// Scan writes the path header followed by one entry per matching line, in
// line order. A file without matches writes nothing at all. A read error
// ends the scan early: matches before it are still written, and the error
// is returned marked with ErrRead.
func (s *LineStrategy) Scan(path string, r io.Reader, m matcher.Matcher, w io.Writer) error {
	var body []byte
	readErr := input.ScanLines(r, func(line []byte, lineNum int) {
		lm, ok := matcher.FindLine(m, line, lineNum)
		if !ok {
			return
		}
		if len(body) > 0 {
			body = append(body, '\n')
		}
		body = s.formatter.AppendLine(body, path, lm)
	})

	if readErr != nil {
		readErr = errors.Mark(errors.Wrapf(readErr, "read %s", path), ErrRead)
	}

	if len(body) == 0 {
		return readErr
	}

	block := s.formatter.AppendHeader(make([]byte, 0, len(path)+len(body)+16), path)
	block = append(block, body...)
	block = append(block, '\n')

	if _, err := w.Write(block); err != nil {
		return errors.Mark(errors.Wrapf(err, "write %s", path), ErrWrite)
	}
	return readErr
}

var _ Strategy = (*LineStrategy)(nil)
