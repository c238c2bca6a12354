package output

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/dl/rgrep/internal/matcher"
)

// TextFormatter formats results as human-readable text with optional color.
type TextFormatter struct {
	styles Styles
}

// NewTextFormatter creates a TextFormatter.
func NewTextFormatter(styles Styles) *TextFormatter {
	return &TextFormatter{styles: styles}
}

func (f *TextFormatter) AppendHeader(buf []byte, path string) []byte {
	buf = append(buf, f.styles.Filename.Render(path)...)
	return append(buf, '\n')
}

func (f *TextFormatter) AppendLine(buf []byte, _ string, m matcher.LineMatch) []byte {
	return append(buf, FormatLine(f.styles, m.Line, m.LineNum, m.Start, m.End)...)
}

// FormatLine renders a matched line as
//
//	<lineNum:6>:<column:-3> <prefix><match><suffix>
//
// with the line number right-aligned and the 1-based character column
// left-aligned. Padding is applied before styling so escape codes never
// shift the alignment.
func FormatLine(styles Styles, line []byte, lineNum, start, end int) string {
	start, end = clampRange(len(line), start, end)

	num := fmt.Sprintf("%6d", lineNum)
	pad := len(num) - len(strings.TrimLeft(num, " "))

	col := fmt.Sprintf("%-3d", Column(line, start))
	colDigits := strings.TrimRight(col, " ")

	var b strings.Builder
	b.Grow(len(line) + 32)
	b.WriteString(num[:pad])
	b.WriteString(styles.LineNum.Render(num[pad:]))
	b.WriteByte(':')
	b.WriteString(styles.Column.Render(colDigits))
	b.WriteString(col[len(colDigits):])
	b.WriteByte(' ')
	b.Write(line[:start])
	b.WriteString(styles.Match.Render(string(line[start:end])))
	b.Write(line[end:])
	return b.String()
}

// Column returns the 1-based character column of byte offset start in line.
// Counts runes, not bytes, so multi-byte text before the match is reported
// as it appears on screen.
func Column(line []byte, start int) int {
	start, _ = clampRange(len(line), start, start)
	return utf8.RuneCount(line[:start]) + 1
}

func clampRange(n, start, end int) (int, int) {
	start = max(0, min(start, n))
	end = max(start, min(end, n))
	return start, end
}

// Ensure TextFormatter implements Formatter.
var _ Formatter = (*TextFormatter)(nil)
