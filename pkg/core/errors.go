// pkg/core/errors.go
package core

import (
	"errors"
	"fmt"
	"strings"
)

// ExcerptLimit is how many characters of a failed command's error stream
// are shown to the user.
const ExcerptLimit = 300

var (
	// ErrCommandFailed indicates a required command exited non-zero
	ErrCommandFailed = errors.New("command failed")

	// ErrCommandNotFound indicates the command's executable is not installed
	ErrCommandNotFound = errors.New("command not found")

	// ErrUnsupportedEnvironment indicates the environment could not be classified
	ErrUnsupportedEnvironment = errors.New("unsupported environment")
)

// CommandError describes a required command that did not complete
type CommandError struct {
	Op       string // Step that failed (e.g. "update package index")
	Command  string // Command line as run
	Started  bool   // The process ran; false when it could not be started
	ExitCode int    // Exit status, -1 if it was terminated by a signal
	Stderr   string // Captured error stream
	Err      error  // ErrCommandFailed or the start error
}

func (e *CommandError) Error() string {
	switch {
	case !e.Started:
		return fmt.Sprintf("%s: %s: %v", e.Op, e.Command, e.Err)
	case e.ExitCode < 0:
		return fmt.Sprintf("%s: %s: terminated by signal", e.Op, e.Command)
	default:
		return fmt.Sprintf("%s: %s: exit status %d", e.Op, e.Command, e.ExitCode)
	}
}

func (e *CommandError) Unwrap() error {
	return e.Err
}

// Excerpt returns at most n characters of the captured error stream. When
// nothing was captured and the process never started, the start error text
// is used instead.
func (e *CommandError) Excerpt(n int) string {
	text := e.Stderr
	if text == "" && !e.Started && e.Err != nil {
		text = e.Err.Error()
	}
	return Truncate(text, n)
}

// Truncate cuts s down to its first n characters.
func Truncate(s string, n int) string {
	if n < 0 {
		n = 0
	}
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}

// FormatCommand renders a command line for messages and logs
func FormatCommand(name string, args []string) string {
	if len(args) == 0 {
		return name
	}
	return name + " " + strings.Join(args, " ")
}
