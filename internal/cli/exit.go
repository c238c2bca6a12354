package cli

import (
	"github.com/cockroachdb/errors"
)

const (
	ExitOK    = 0
	ExitError = 2
)

// exitCoder wraps an error and specifies an exit code.
type exitCoder struct {
	cause    error
	code     int
	reported bool // already logged; callers should not print it again
}

func (e *exitCoder) Error() string { return e.cause.Error() }
func (e *exitCoder) Unwrap() error { return e.cause }

// WithExitCode attaches an exit code to an error.
func WithExitCode(err error, code int) error {
	if err == nil {
		return nil
	}
	return &exitCoder{cause: err, code: code}
}

func reported(err error, code int) error {
	return &exitCoder{cause: err, code: code, reported: true}
}

// ExitCode extracts the exit code from an error chain.
// Returns 0 if err is nil and ExitError unless another code was attached.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var ec *exitCoder
	if errors.As(err, &ec) {
		return ec.code
	}
	return ExitError
}

// Reported returns true if err was already shown to the user.
func Reported(err error) bool {
	var ec *exitCoder
	return errors.As(err, &ec) && ec.reported
}
