package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"gopkg.in/natefinch/lumberjack.v2"
)

// newLogger builds the diagnostics logger. When logFile is set, output is
// also appended to a size-rotated file. The returned closer releases it.
func newLogger(stderr io.Writer, level, logFile string) (*log.Logger, io.Closer) {
	lvl := log.WarnLevel
	if level != "" {
		if l, err := log.ParseLevel(level); err == nil {
			lvl = l
		}
	}

	var w io.Writer = stderr
	var closer io.Closer = nopCloser{}
	if logFile != "" {
		lj := &lumberjack.Logger{
			Filename:   logFile,
			MaxSize:    10, // megabytes
			MaxBackups: 3,
			MaxAge:     28, // days
			Compress:   true,
		}
		w = io.MultiWriter(stderr, lj)
		closer = lj
	}

	logger := log.NewWithOptions(w, log.Options{
		Level:  lvl,
		Prefix: "rgrep",
	})
	return logger, closer
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }
