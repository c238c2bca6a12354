package output

import "github.com/dl/rgrep/internal/matcher"

// Formatter renders one file's matches.
// Implementations append to buf and return the result, so callers can pass
// buf[:0] to reuse the underlying array without allocating.
type Formatter interface {
	// AppendHeader appends the line printed once above a file's matches.
	// Formats without a header return buf unchanged.
	AppendHeader(buf []byte, path string) []byte

	// AppendLine appends one matched line, without a trailing newline.
	AppendLine(buf []byte, path string, m matcher.LineMatch) []byte
}
