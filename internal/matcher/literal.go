package matcher

import "bytes"

// LiteralMatcher finds a fixed byte string with bytes.Index.
type LiteralMatcher struct {
	pattern []byte
}

// NewLiteralMatcher creates a LiteralMatcher for pattern.
func NewLiteralMatcher(pattern string) *LiteralMatcher {
	return &LiteralMatcher{pattern: []byte(pattern)}
}

func (m *LiteralMatcher) FindFirst(line []byte) (int, int, bool) {
	i := bytes.Index(line, m.pattern)
	if i < 0 {
		return 0, 0, false
	}
	return i, i + len(m.pattern), true
}

var _ Matcher = (*LiteralMatcher)(nil)
