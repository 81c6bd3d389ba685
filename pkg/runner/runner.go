// Package runner executes external commands for the installer backends.
//
// A Runner reports a non-zero exit through Result.ExitCode, never through
// the returned error. The error is reserved for commands that could not be
// started at all; a missing executable matches ErrNotFound.
package runner

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"os/exec"
	"time"

	"github.com/charmbracelet/log"

	"github.com/arc-language/pyup/pkg/core"
)

// ErrNotFound indicates the command's executable does not exist
var ErrNotFound = core.ErrCommandNotFound

// Command is a single external invocation
type Command struct {
	Name        string   // Executable name or path
	Args        []string // Arguments, not including Name
	Interactive bool     // Attach the terminal as well as capturing output
}

// Cmd builds a non-interactive Command
func Cmd(name string, args ...string) Command {
	return Command{Name: name, Args: args}
}

// String returns the command line
func (c Command) String() string {
	return core.FormatCommand(c.Name, c.Args)
}

// Result holds the outcome of a command that ran to completion
type Result struct {
	ExitCode int
	Stdout   string
	Stderr   string
}

// Success reports whether the command exited zero
func (r *Result) Success() bool {
	return r != nil && r.ExitCode == 0
}

// Runner runs commands
type Runner interface {
	// Run blocks until the command exits
	Run(ctx context.Context, cmd Command) (*Result, error)

	// LookPath searches PATH for an executable
	LookPath(name string) (string, error)
}

// ExecRunner runs commands as real processes
type ExecRunner struct {
	Stdin  io.Reader // Terminal streams for interactive commands
	Stdout io.Writer
	Stderr io.Writer
	logger *log.Logger
}

// NewExecRunner creates a runner attached to the process's own terminal
func NewExecRunner(logger *log.Logger) *ExecRunner {
	if logger == nil {
		logger = log.Default()
	}
	return &ExecRunner{
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
		logger: logger,
	}
}

// Run implements Runner
func (r *ExecRunner) Run(ctx context.Context, c Command) (*Result, error) {
	var stdout, stderr bytes.Buffer

	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if c.Interactive {
		cmd.Stdin = r.Stdin
		cmd.Stdout = io.MultiWriter(r.Stdout, &stdout)
		cmd.Stderr = io.MultiWriter(r.Stderr, &stderr)
	}

	r.logger.Debug("Running command", "cmd", c.String(), "interactive", c.Interactive)
	start := time.Now()

	err := cmd.Run()
	res := &Result{
		Stdout: stdout.String(),
		Stderr: stderr.String(),
	}

	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			res.ExitCode = exitErr.ExitCode()
		case errors.Is(err, exec.ErrNotFound), errors.Is(err, fs.ErrNotExist):
			r.logger.Debug("Command not found", "cmd", c.Name)
			return nil, fmt.Errorf("%s: %w", c.Name, ErrNotFound)
		default:
			return nil, fmt.Errorf("starting %s: %w", c.Name, err)
		}
	}

	r.logger.Debug("Command finished", "cmd", c.String(), "exit", res.ExitCode, "took", time.Since(start))
	return res, nil
}

// LookPath implements Runner
func (r *ExecRunner) LookPath(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s: %w", name, ErrNotFound)
	}
	return path, nil
}
