package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/log"
)

// ColorMode controls when colored output is used.
type ColorMode int

const (
	ColorAuto   ColorMode = iota // color when stdout is a terminal
	ColorAlways                  // always use color
	ColorNever                   // never use color
)

// ParseColorMode parses the --color flag value.
func ParseColorMode(s string) (ColorMode, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return ColorAuto, nil
	case "always":
		return ColorAlways, nil
	case "never":
		return ColorNever, nil
	}
	return ColorAuto, fmt.Errorf("invalid color mode %q (want auto, always or never)", s)
}

func (m ColorMode) String() string {
	switch m {
	case ColorAlways:
		return "always"
	case ColorNever:
		return "never"
	default:
		return "auto"
	}
}

// Config holds all configuration for an rgrep search.
type Config struct {
	Pattern    string
	Glob       string
	PCRE       bool
	IgnoreCase bool
	Gitignore  bool
	SkipBinary bool
	JSONOutput bool
	Color      ColorMode
	Workers    int
	LogLevel   string
	LogFile    string
}

// Validate checks that the config is valid and returns an error if not.
func (c *Config) Validate() error {
	if c.Glob == "" {
		return fmt.Errorf("no glob specified")
	}
	if c.Workers < 0 {
		return fmt.Errorf("invalid workers: %d", c.Workers)
	}
	if c.JSONOutput && c.Color == ColorAlways {
		return fmt.Errorf("cannot use --json and --color=always together")
	}
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return fmt.Errorf("invalid log level %q", c.LogLevel)
		}
	}
	return nil
}
