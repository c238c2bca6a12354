package glob

import (
	"path/filepath"

	ignore "github.com/sabhiram/go-gitignore"
)

// ignoreLayer holds the compiled .gitignore of one directory.
// A zero layer ignores nothing.
type ignoreLayer struct {
	dir    string
	parser *ignore.GitIgnore
}

// loadIgnoreLayer loads and compiles a .gitignore from the given directory.
// Returns a layer with nil parser if no .gitignore exists or on parse error.
func loadIgnoreLayer(dir string) ignoreLayer {
	parser, err := ignore.CompileIgnoreFile(filepath.Join(filepath.FromSlash(dir), ".gitignore"))
	if err != nil {
		return ignoreLayer{dir: dir}
	}
	return ignoreLayer{dir: dir, parser: parser}
}

// matches reports whether rel, a slash-separated path relative to the
// layer's directory, is ignored.
func (l ignoreLayer) matches(rel string, isDir bool) bool {
	if l.parser == nil {
		return false
	}
	if isDir {
		rel += "/"
	}
	return l.parser.MatchesPath(rel)
}
