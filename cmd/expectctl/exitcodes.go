package main

// Exit codes for expectctl
const (
	// ExitSuccess indicates all suites passed
	ExitSuccess = 0

	// ExitTestFailure indicates one or more suites failed
	ExitTestFailure = 1

	// ExitParseError indicates a suite or data file could not be
	// parsed
	ExitParseError = 2

	// ExitConfigError indicates a configuration error
	ExitConfigError = 3

	// ExitUsageError indicates invalid CLI usage
	ExitUsageError = 64
)

// exitError carries an exit code out of a command.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }

func (e *exitError) Unwrap() error { return e.err }

func withCode(code int, err error) error {
	if err == nil {
		return nil
	}
	return &exitError{code: code, err: err}
}
