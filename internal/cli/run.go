package cli

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"
	"github.com/muesli/termenv"

	"github.com/dl/rgrep/internal/output"
	"github.com/dl/rgrep/internal/scanner"
	"github.com/dl/rgrep/internal/search"
)

// Run executes the search with the given config.
// Returns exit code: 0 = search completed (with or without matches), 2 = error.
func Run(cfg Config, stdout, stderr io.Writer) int {
	logger, closer := newLogger(stderr, cfg.LogLevel, cfg.LogFile)
	defer closer.Close()

	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "err", err)
		return ExitError
	}

	// Determine color mode
	useColor := false
	switch cfg.Color {
	case ColorAlways:
		useColor = true
	case ColorNever:
		useColor = false
	case ColorAuto:
		if f, ok := stdout.(*os.File); ok {
			useColor = output.IsTerminal(f.Fd())
		}
	}

	var formatter output.Formatter
	if cfg.JSONOutput {
		formatter = output.NewJSONFormatter()
	} else {
		styles := output.NoStyles()
		if useColor {
			styles = output.NewStyles(termenv.ANSI)
		}
		formatter = output.NewTextFormatter(styles)
	}

	s := search.New(
		search.WithStrategy(scanner.NewLineStrategy(formatter)),
		search.WithOutput(stdout),
		search.WithLogger(logger),
		search.WithWorkers(cfg.Workers),
	)

	err := s.Run(search.Config{
		Pattern:    cfg.Pattern,
		Glob:       cfg.Glob,
		PCRE:       cfg.PCRE,
		IgnoreCase: cfg.IgnoreCase,
		Gitignore:  cfg.Gitignore,
		SkipBinary: cfg.SkipBinary,
	})
	if err != nil {
		reportSetupError(logger, err)
		return ExitError
	}
	return ExitOK
}

func reportSetupError(logger *log.Logger, err error) {
	msg := "search failed"
	switch {
	case errors.Is(err, search.ErrPatternSyntax):
		msg = "invalid pattern"
	case errors.Is(err, search.ErrGlobSyntax):
		msg = "invalid glob"
	}

	keyvals := []any{"err", err}
	for _, hint := range errors.GetAllHints(err) {
		keyvals = append(keyvals, "hint", hint)
	}
	logger.Error(msg, keyvals...)
}
