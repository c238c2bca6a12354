package search

import (
	"github.com/cockroachdb/errors"

	"github.com/dl/rgrep/internal/scanner"
)

var (
	// ErrPatternSyntax marks a pattern that failed to compile.
	ErrPatternSyntax = errors.New("invalid pattern")

	// ErrGlobSyntax marks a malformed glob expression.
	ErrGlobSyntax = errors.New("invalid glob")

	// ErrIO marks a failed output write. It never escapes Run; it shows up
	// in the per-file diagnostics.
	ErrIO = scanner.ErrWrite
)
