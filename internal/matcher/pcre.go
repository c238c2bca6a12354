package matcher

import (
	"go.elara.ws/pcre"
)

// PCREMatcher matches using PCRE2-compatible regexes via the pure Go pcre package.
// Supports lookahead, lookbehind, backreferences, atomic groups, and all PCRE2 features.
type PCREMatcher struct {
	re *pcre.Regexp
}

// NewPCREMatcher creates a PCREMatcher from a PCRE2 pattern string.
func NewPCREMatcher(pattern string, ignoreCase bool) (*PCREMatcher, error) {
	var opts pcre.CompileOption
	if ignoreCase {
		opts |= pcre.Caseless
	}

	re, err := pcre.CompileOpts(pattern, opts)
	if err != nil {
		return nil, err
	}

	return &PCREMatcher{re: re}, nil
}

func (m *PCREMatcher) FindFirst(line []byte) (int, int, bool) {
	locs := m.re.FindAllIndex(line, 1)
	if len(locs) == 0 {
		return 0, 0, false
	}
	return locs[0][0], locs[0][1], true
}

// Close releases the compiled PCRE regex resources.
func (m *PCREMatcher) Close() {
	if m.re != nil {
		m.re.Close()
	}
}

var _ Matcher = (*PCREMatcher)(nil)
