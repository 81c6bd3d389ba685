// errors.go
package pyup

import (
	"errors"
	"fmt"

	"github.com/arc-language/pyup/pkg/core"
	"github.com/arc-language/pyup/pkg/platform"
)

var (
	// ErrCommandFailed indicates a required command exited non-zero
	ErrCommandFailed = core.ErrCommandFailed

	// ErrCommandNotFound indicates a required command is not installed
	ErrCommandNotFound = core.ErrCommandNotFound

	// ErrUnsupportedEnvironment indicates the environment is not supported
	ErrUnsupportedEnvironment = core.ErrUnsupportedEnvironment
)

// opInstall marks errors from the install run itself
const opInstall = "install"

// Error wraps an error with additional context
type Error struct {
	Op          string         // Operation that failed
	Environment platform.Label // Environment label if known
	Err         error          // Underlying error
}

func (e *Error) Error() string {
	if e.Environment != "" {
		return fmt.Sprintf("%s (%s): %v", e.Op, e.Environment, e.Err)
	}
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Reported reports whether Installer.Run already printed err to its output
func Reported(err error) bool {
	var e *Error
	return errors.As(err, &e) && e.Op == opInstall
}

// ExitCode maps a run's error to the process exit status
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return 1
}
