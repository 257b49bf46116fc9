package cli

import "errors"

// Process exit codes.
const (
	ExitSuccess     = 0 // Success, including non-fatal command failures such as a duplicate name
	ExitError       = 1 // Invalid arguments, unknown command or runtime failure
	ExitConfigError = 2 // Configuration could not be resolved
	ExitLoadError   = 3 // Alias store could not be loaded
)

// exitError attaches an exit code to an error returned from a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }

func withExitCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}

// ExitCode maps an error returned by the root command to a process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ee *exitError
	if errors.As(err, &ee) {
		return ee.code
	}
	return ExitError
}
