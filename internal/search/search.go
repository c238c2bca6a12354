// Package search runs a pattern over every file a glob resolves to.
package search

import (
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/cockroachdb/errors"

	"github.com/dl/rgrep/internal/glob"
	"github.com/dl/rgrep/internal/matcher"
	"github.com/dl/rgrep/internal/output"
	"github.com/dl/rgrep/internal/scanner"
	"github.com/dl/rgrep/internal/scheduler"
)

// Config describes a single search.
type Config struct {
	Pattern    string
	Glob       string
	PCRE       bool
	IgnoreCase bool
	Gitignore  bool
	SkipBinary bool
}

// Searcher runs searches. It keeps no state between runs, so one Searcher
// may serve any number of Run calls.
type Searcher struct {
	strategy scanner.Strategy
	sink     *output.Writer
	logger   *log.Logger
	workers  int

	expand func(pattern string, opts glob.Options) (<-chan glob.Entry, error)
}

// Option configures a Searcher.
type Option func(*Searcher)

// WithStrategy replaces the per-file scanning strategy.
func WithStrategy(s scanner.Strategy) Option {
	return func(sr *Searcher) { sr.strategy = s }
}

// WithOutput sends results to w instead of stdout.
func WithOutput(w io.Writer) Option {
	return func(sr *Searcher) { sr.sink = output.NewWriter(w) }
}

// WithLogger sets the logger for per-file diagnostics.
func WithLogger(l *log.Logger) Option {
	return func(sr *Searcher) { sr.logger = l }
}

// WithWorkers sets the worker pool size. Zero picks a default.
func WithWorkers(n int) Option {
	return func(sr *Searcher) { sr.workers = n }
}

// New creates a Searcher. Without options it prints uncolored text to stdout.
func New(opts ...Option) *Searcher {
	s := &Searcher{expand: glob.Expand}
	for _, opt := range opts {
		opt(s)
	}
	if s.strategy == nil {
		s.strategy = scanner.NewLineStrategy(output.NewTextFormatter(output.NoStyles()))
	}
	if s.sink == nil {
		s.sink = output.NewStdoutWriter()
	}
	if s.logger == nil {
		s.logger = log.NewWithOptions(os.Stderr, log.Options{Level: log.WarnLevel})
	}
	return s
}

// Run compiles the pattern, expands the glob and scans every resolved file
// concurrently.
//
// Only setup can fail: a bad pattern returns ErrPatternSyntax before the glob
// is looked at, and a bad glob returns ErrGlobSyntax before any file is
// opened. Unreadable files and failed writes are logged and skipped.
func (s *Searcher) Run(cfg Config) error {
	m, err := matcher.NewMatcher(cfg.Pattern, matcher.Options{
		PCRE:       cfg.PCRE,
		IgnoreCase: cfg.IgnoreCase,
	})
	if err != nil {
		return errors.Mark(errors.Wrapf(err, "compile pattern %q", cfg.Pattern), ErrPatternSyntax)
	}
	if c, ok := m.(interface{ Close() }); ok {
		defer c.Close()
	}

	entries, err := s.expand(cfg.Glob, glob.Options{
		Gitignore:  cfg.Gitignore,
		SkipBinary: cfg.SkipBinary,
	})
	if err != nil {
		err = errors.WithHint(errors.Wrap(err, "expand glob"), "quote the glob so the shell does not expand it")
		return errors.Mark(err, ErrGlobSyntax)
	}

	sched := scheduler.New(s.workers, m, s.strategy, s.sink, s.logger)
	stats := sched.Run(entries)

	s.logger.Debug("search complete",
		"scanned", stats.Scanned,
		"skipped", stats.Skipped,
		"failed", stats.Failed,
	)
	return nil
}
