package glob

import (
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"

	"github.com/bmatcuk/doublestar/v4"
)

// ErrBadPattern is returned by Expand for malformed glob syntax.
var ErrBadPattern = doublestar.ErrBadPattern

// Entry is one result of glob expansion: either a resolved file path or an
// error encountered while resolving that entry.
type Entry struct {
	Path string
	Err  error
}

// Options configures glob expansion.
type Options struct {
	// Gitignore drops entries matched by the .gitignore in the glob's base directory.
	Gitignore bool

	// SkipBinary drops entries whose extension marks a binary format.
	SkipBinary bool
}

// Expand validates pattern and resolves it lazily. Matching regular files are
// sent on the returned channel as they are found; the channel is closed once
// the walk completes.
//
// Malformed syntax is reported immediately and nothing is walked. Problems
// with individual entries are delivered as Entry.Err and never stop the walk.
func Expand(pattern string, opts Options) (<-chan Entry, error) {
	pattern = filepath.ToSlash(pattern)
	if pattern == "" || !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("%w: %q", ErrBadPattern, pattern)
	}

	base, rel := doublestar.SplitPattern(pattern)
	var ignores ignoreLayer
	if opts.Gitignore {
		ignores = loadIgnoreLayer(base)
	}

	entryCh := make(chan Entry, 256)

	go func() {
		defer close(entryCh)

		fsys := os.DirFS(base)
		err := doublestar.GlobWalk(fsys, rel, func(p string, d fs.DirEntry) error {
			fullPath := joinPath(base, p)
			if ignores.matches(p, false) {
				return nil
			}
			if opts.SkipBinary && isBinaryName(path.Base(p)) {
				return nil
			}
			info, err := d.Info()
			if err == nil && info.Mode()&fs.ModeSymlink != 0 {
				info, err = fs.Stat(fsys, p)
			}
			if err != nil {
				entryCh <- Entry{Path: fullPath, Err: &ExpandError{Path: fullPath, Err: err}}
				return nil
			}
			// FIFOs, sockets and devices can block a reader forever.
			if !info.Mode().IsRegular() {
				return nil
			}
			entryCh <- Entry{Path: fullPath}
			return nil
		}, doublestar.WithFilesOnly())
		if err != nil {
			entryCh <- Entry{Err: &ExpandError{Path: base, Err: err}}
		}
	}()

	return entryCh, nil
}

// joinPath rebuilds the on-disk path for a match relative to base.
func joinPath(base, rel string) string {
	if base == "." {
		return filepath.FromSlash(rel)
	}
	return filepath.Join(filepath.FromSlash(base), filepath.FromSlash(rel))
}

// ExpandError represents an error while resolving a single glob entry.
type ExpandError struct {
	Path string
	Err  error
}

func (e *ExpandError) Error() string {
	return "glob " + e.Path + ": " + e.Err.Error()
}

func (e *ExpandError) Unwrap() error {
	return e.Err
}
