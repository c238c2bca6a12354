package matcher

// LineMatch is the first match found on a single line.
type LineMatch struct {
	LineNum int    // 1-based line number
	Line    []byte // full line content (no trailing newline)
	Start   int    // byte offset of the match start within Line
	End     int    // byte offset of the match end within Line (exclusive)
}

// Text returns the matched span.
func (m LineMatch) Text() []byte {
	return m.Line[m.Start:m.End]
}

// Matcher finds the first pattern match within a line.
//
// A Matcher is compiled once per search and shared by every worker,
// so implementations must be safe for concurrent use and never mutate
// state after construction.
type Matcher interface {
	// FindFirst returns the byte range [start, end) of the leftmost match in line.
	FindFirst(line []byte) (start, end int, ok bool)
}

// FindLine runs m against line and wraps a hit in a LineMatch.
func FindLine(m Matcher, line []byte, lineNum int) (LineMatch, bool) {
	start, end, ok := m.FindFirst(line)
	if !ok {
		return LineMatch{}, false
	}
	return LineMatch{
		LineNum: lineNum,
		Line:    line,
		Start:   start,
		End:     end,
	}, true
}
