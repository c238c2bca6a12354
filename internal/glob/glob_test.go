package glob

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/sys/unix"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, content := range files {
		path := filepath.Join(dir, filepath.FromSlash(name))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func drain(ch <-chan Entry) (paths []string, errs []error) {
	for e := range ch {
		if e.Err != nil {
			errs = append(errs, e.Err)
			continue
		}
		paths = append(paths, e.Path)
	}
	sort.Strings(paths)
	return paths, errs
}

func TestExpand(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.go":          "",
		"b.go":          "",
		"c.txt":         "",
		"sub/d.go":      "",
		"sub/deep/e.go": "",
	})

	tests := []struct {
		name    string
		pattern string
		want    []string
	}{
		{"star", "*.go", []string{"a.go", "b.go"}},
		{"single char", "?.txt", []string{"c.txt"}},
		{"brackets", "[ab].go", []string{"a.go", "b.go"}},
		{"alternation", "{a,c}.*", []string{"a.go", "c.txt"}},
		{"subdir", "sub/*.go", []string{"sub/d.go"}},
		{"doublestar", "**/*.go", []string{"a.go", "b.go", "sub/d.go", "sub/deep/e.go"}},
		{"no match", "*.rs", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ch, err := Expand(filepath.Join(dir, tt.pattern), Options{})
			require.NoError(t, err)

			paths, errs := drain(ch)
			assert.Empty(t, errs)

			var want []string
			for _, w := range tt.want {
				want = append(want, filepath.Join(dir, filepath.FromSlash(w)))
			}
			assert.Equal(t, want, paths)
		})
	}
}

func TestExpand_DirectoriesExcluded(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"file.txt": ""})
	require.NoError(t, os.Mkdir(filepath.Join(dir, "folder"), 0o755))

	ch, err := Expand(filepath.Join(dir, "*"), Options{})
	require.NoError(t, err)

	paths, _ := drain(ch)
	assert.Equal(t, []string{filepath.Join(dir, "file.txt")}, paths)
}

func TestExpand_NonRegularExcluded(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"file.txt": "x"})
	require.NoError(t, unix.Mkfifo(filepath.Join(dir, "pipe"), 0o644))

	ch, err := Expand(filepath.Join(dir, "*"), Options{})
	require.NoError(t, err)

	paths, errs := drain(ch)
	assert.Empty(t, errs)
	assert.Equal(t, []string{filepath.Join(dir, "file.txt")}, paths)
}

func TestExpand_SymlinkToFileIncluded(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"target.txt": "x"})
	require.NoError(t, os.Symlink(filepath.Join(dir, "target.txt"), filepath.Join(dir, "link.txt")))

	ch, err := Expand(filepath.Join(dir, "*.txt"), Options{})
	require.NoError(t, err)

	paths, _ := drain(ch)
	assert.Equal(t, []string{filepath.Join(dir, "link.txt"), filepath.Join(dir, "target.txt")}, paths)
}

func TestExpand_BadPattern(t *testing.T) {
	for _, pattern := range []string{"[abc", "src/[", "{a,b", ""} {
		t.Run(pattern, func(t *testing.T) {
			ch, err := Expand(pattern, Options{})
			assert.ErrorIs(t, err, ErrBadPattern)
			assert.Nil(t, ch)
		})
	}
}

func TestExpand_MissingBase(t *testing.T) {
	ch, err := Expand(filepath.Join(t.TempDir(), "missing", "*.go"), Options{})
	require.NoError(t, err)

	paths, _ := drain(ch)
	assert.Empty(t, paths)
}

func TestExpand_Gitignore(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		".gitignore":    "*.log\nbuild/\n!important.log\n",
		"app.log":       "",
		"important.log": "",
		"main.go":       "",
		"build/out.go":  "",
	})

	ch, err := Expand(filepath.Join(dir, "**/*"), Options{Gitignore: true})
	require.NoError(t, err)
	paths, _ := drain(ch)
	assert.Equal(t, []string{
		filepath.Join(dir, ".gitignore"),
		filepath.Join(dir, "important.log"),
		filepath.Join(dir, "main.go"),
	}, paths)

	ch, err = Expand(filepath.Join(dir, "*.log"), Options{})
	require.NoError(t, err)
	paths, _ = drain(ch)
	assert.Len(t, paths, 2, "without the option nothing is filtered")
}

func TestIgnoreLayer_NoGitignore(t *testing.T) {
	l := loadIgnoreLayer(t.TempDir())
	assert.False(t, l.matches("anything.txt", false))

	var zero ignoreLayer
	assert.False(t, zero.matches("anything.txt", false))
}

func TestIgnoreLayer_DirPattern(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{".gitignore": "build/\n"})

	l := loadIgnoreLayer(dir)
	assert.True(t, l.matches("build", true))
	assert.False(t, l.matches("build", false))
}

func TestJoinPath(t *testing.T) {
	assert.Equal(t, "main.go", joinPath(".", "main.go"))
	assert.Equal(t, filepath.Join("src", "main.go"), joinPath("src", "main.go"))
	assert.Equal(t, filepath.FromSlash("/abs/x/y.go"), joinPath("/abs", "x/y.go"))
}

func TestExpand_SkipBinary(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"main.go":     "",
		"logo.PNG":    "",
		"libx.so.1.2": "",
		"bundle.tar":  "",
		"notes.txt":   "",
	})

	ch, err := Expand(filepath.Join(dir, "*"), Options{SkipBinary: true})
	require.NoError(t, err)
	paths, _ := drain(ch)
	assert.Equal(t, []string{filepath.Join(dir, "main.go"), filepath.Join(dir, "notes.txt")}, paths)
}

func TestIsBinaryName(t *testing.T) {
	tests := []struct {
		name string
		want bool
	}{
		{"main.go", false},
		{"README", false},
		{"image.png", true},
		{"IMAGE.JPG", true},
		{"archive.tar", true},
		{"libc.so.6", true},
		{"obj.o", true},
		{"config.yaml", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, isBinaryName(tt.name), tt.name)
	}
}
