package matcher

import "regexp"

// RegexMatcher uses Go's RE2 regexp engine.
type RegexMatcher struct {
	re *regexp.Regexp
}

// NewRegexMatcher creates a RegexMatcher for the given pattern.
func NewRegexMatcher(pattern string, ignoreCase bool) (*RegexMatcher, error) {
	if ignoreCase {
		pattern = "(?i)" + pattern
	}
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, err
	}
	return &RegexMatcher{re: re}, nil
}

func (m *RegexMatcher) FindFirst(line []byte) (int, int, bool) {
	loc := m.re.FindIndex(line)
	if loc == nil {
		return 0, 0, false
	}
	return loc[0], loc[1], true
}

// String returns the source pattern.
func (m *RegexMatcher) String() string {
	return m.re.String()
}

var _ Matcher = (*RegexMatcher)(nil)
