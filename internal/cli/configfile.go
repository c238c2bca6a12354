package cli

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// FileConfig holds defaults read from the rgrep config file.
// Unset keys leave the corresponding flag alone.
type FileConfig struct {
	Color      *string `yaml:"color"`
	Workers    *int    `yaml:"workers"`
	PCRE       *bool   `yaml:"pcre"`
	IgnoreCase *bool   `yaml:"ignore-case"`
	Gitignore  *bool   `yaml:"gitignore"`
	SkipBinary *bool   `yaml:"skip-binary"`
	JSON       *bool   `yaml:"json"`
	LogLevel   *string `yaml:"log-level"`
	LogFile    *string `yaml:"log-file"`
}

// ConfigFilePath returns the config file location: RGREP_CONFIG_PATH env
// var, or ~/.rgrep.yaml. Returns "" if neither can be determined.
func ConfigFilePath() string {
	if path := os.Getenv("RGREP_CONFIG_PATH"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".rgrep.yaml")
}

// LoadConfigFile reads the config file at path. A missing file yields an
// empty FileConfig; unknown keys are an error.
func LoadConfigFile(path string) (FileConfig, error) {
	var fc FileConfig
	if path == "" {
		return fc, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return fc, nil
	}
	if err != nil {
		return fc, fmt.Errorf("read config %s: %w", path, err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&fc); err != nil && !errors.Is(err, io.EOF) {
		return fc, fmt.Errorf("parse config %s: %w", path, err)
	}
	return fc, nil
}

// Apply sets every configured value on flags, skipping flags given
// explicitly on the command line.
func (fc FileConfig) Apply(flags *pflag.FlagSet) error {
	values := map[string]*string{
		"color":     fc.Color,
		"log-level": fc.LogLevel,
		"log-file":  fc.LogFile,
	}
	if fc.Workers != nil {
		values["workers"] = ptr(strconv.Itoa(*fc.Workers))
	}
	for name, b := range map[string]*bool{
		"pcre":        fc.PCRE,
		"ignore-case": fc.IgnoreCase,
		"gitignore":   fc.Gitignore,
		"skip-binary": fc.SkipBinary,
		"json":        fc.JSON,
	} {
		if b != nil {
			values[name] = ptr(strconv.FormatBool(*b))
		}
	}

	for name, v := range values {
		if v == nil || flags.Changed(name) {
			continue
		}
		if err := flags.Set(name, *v); err != nil {
			return fmt.Errorf("config %s: %w", name, err)
		}
	}
	return nil
}

func ptr[T any](v T) *T { return &v }
