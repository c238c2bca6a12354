package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	valid := Config{Pattern: "x", Glob: "*.go"}

	tests := []struct {
		name    string
		mutate  func(c *Config)
		wantErr bool
	}{
		{"valid", func(c *Config) {}, false},
		{"empty pattern", func(c *Config) { c.Pattern = "" }, false},
		{"no glob", func(c *Config) { c.Glob = "" }, true},
		{"negative workers", func(c *Config) { c.Workers = -1 }, true},
		{"json with forced color", func(c *Config) { c.JSONOutput = true; c.Color = ColorAlways }, true},
		{"json with auto color", func(c *Config) { c.JSONOutput = true }, false},
		{"bad log level", func(c *Config) { c.LogLevel = "loud" }, true},
		{"debug log level", func(c *Config) { c.LogLevel = "debug" }, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := valid
			tt.mutate(&c)
			if tt.wantErr {
				assert.Error(t, c.Validate())
			} else {
				assert.NoError(t, c.Validate())
			}
		})
	}
}

func TestParseColorMode(t *testing.T) {
	for in, want := range map[string]ColorMode{
		"":       ColorAuto,
		"auto":   ColorAuto,
		"always": ColorAlways,
		"NEVER":  ColorNever,
	} {
		got, err := ParseColorMode(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseColorMode("sometimes")
	assert.Error(t, err)
	assert.Equal(t, "always", ColorAlways.String())
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rgrep.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadConfigFile(t *testing.T) {
	path := writeConfig(t, "color: never\nworkers: 3\nignore-case: true\n")

	fc, err := LoadConfigFile(path)
	require.NoError(t, err)
	require.NotNil(t, fc.Color)
	assert.Equal(t, "never", *fc.Color)
	require.NotNil(t, fc.Workers)
	assert.Equal(t, 3, *fc.Workers)
	require.NotNil(t, fc.IgnoreCase)
	assert.True(t, *fc.IgnoreCase)
	assert.Nil(t, fc.PCRE)
}

func TestLoadConfigFile_MissingAndEmpty(t *testing.T) {
	fc, err := LoadConfigFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, fc)

	fc, err = LoadConfigFile(writeConfig(t, ""))
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, fc)

	fc, err = LoadConfigFile("")
	require.NoError(t, err)
	assert.Equal(t, FileConfig{}, fc)
}

func TestLoadConfigFile_Invalid(t *testing.T) {
	_, err := LoadConfigFile(writeConfig(t, "colour: never\n"))
	assert.Error(t, err, "unknown key")

	_, err = LoadConfigFile(writeConfig(t, "workers: [1\n"))
	assert.Error(t, err, "malformed yaml")
}

func TestConfigFilePath(t *testing.T) {
	t.Setenv("RGREP_CONFIG_PATH", "/etc/rgrep.yaml")
	assert.Equal(t, "/etc/rgrep.yaml", ConfigFilePath())

	t.Setenv("RGREP_CONFIG_PATH", "")
	t.Setenv("HOME", "/home/someone")
	assert.Equal(t, filepath.Join("/home/someone", ".rgrep.yaml"), ConfigFilePath())
}

func TestFileConfig_Apply(t *testing.T) {
	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	color := flags.String("color", "auto", "")
	workers := flags.Int("workers", 0, "")
	pcre := flags.Bool("pcre", false, "")
	ignoreCase := flags.Bool("ignore-case", false, "")
	flags.Bool("gitignore", false, "")
	flags.Bool("skip-binary", false, "")
	flags.Bool("json", false, "")
	flags.String("log-level", "warn", "")
	flags.String("log-file", "", "")

	require.NoError(t, flags.Parse([]string{"--workers", "7"}))

	fc, err := LoadConfigFile(writeConfig(t, "color: always\nworkers: 2\npcre: true\n"))
	require.NoError(t, err)
	require.NoError(t, fc.Apply(flags))

	assert.Equal(t, "always", *color)
	assert.Equal(t, 7, *workers, "explicit flag wins")
	assert.True(t, *pcre)
	assert.False(t, *ignoreCase)
}
