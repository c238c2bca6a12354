package matcher

import "strings"

// Options selects the matching engine and its flags.
type Options struct {
	PCRE       bool
	IgnoreCase bool
}

// NewMatcher creates the appropriate Matcher for pattern.
// Selection logic:
//   - PCRE flag -> PCREMatcher (PCRE2 via pure Go port)
//   - literal pattern, case-sensitive -> LiteralMatcher
//   - otherwise -> RegexMatcher (RE2)
func NewMatcher(pattern string, opts Options) (Matcher, error) {
	if opts.PCRE {
		return NewPCREMatcher(pattern, opts.IgnoreCase)
	}

	// Literal patterns skip the regex engine entirely, same as ripgrep.
	if !opts.IgnoreCase && isLiteral(pattern) {
		return NewLiteralMatcher(pattern), nil
	}

	return NewRegexMatcher(pattern, opts.IgnoreCase)
}

// isLiteral returns true if the pattern contains no regex metacharacters
// and can be treated as a fixed string.
func isLiteral(pattern string) bool {
	return !strings.ContainsAny(pattern, `\.+*?()|[]{}^$`)
}
