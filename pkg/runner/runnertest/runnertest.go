// Package runnertest provides a scripted runner.Runner for tests.
package runnertest

import (
	"context"
	"fmt"

	"github.com/arc-language/pyup/pkg/runner"
)

// Runner records every command and answers from a script. Commands with
// no scripted result succeed with empty output.
type Runner struct {
	results map[string]runner.Result
	missing map[string]bool
	calls   []runner.Command
}

// New creates an empty script
func New() *Runner {
	return &Runner{
		results: make(map[string]runner.Result),
		missing: make(map[string]bool),
	}
}

// On scripts the result for a full command line such as "pkg update -y"
func (r *Runner) On(cmdline string, res runner.Result) *Runner {
	r.results[cmdline] = res
	return r
}

// Fail scripts a non-zero exit with the given error stream
func (r *Runner) Fail(cmdline string, code int, stderr string) *Runner {
	return r.On(cmdline, runner.Result{ExitCode: code, Stderr: stderr})
}

// Output scripts a successful command printing stdout
func (r *Runner) Output(cmdline, stdout string) *Runner {
	return r.On(cmdline, runner.Result{Stdout: stdout})
}

// Missing marks executables as not installed
func (r *Runner) Missing(names ...string) *Runner {
	for _, name := range names {
		r.missing[name] = true
	}
	return r
}

// Run implements runner.Runner
func (r *Runner) Run(_ context.Context, c runner.Command) (*runner.Result, error) {
	r.calls = append(r.calls, c)

	if r.missing[c.Name] {
		return nil, fmt.Errorf("%s: %w", c.Name, runner.ErrNotFound)
	}

	res := r.results[c.String()]
	return &res, nil
}

// LookPath implements runner.Runner
func (r *Runner) LookPath(name string) (string, error) {
	if r.missing[name] {
		return "", fmt.Errorf("%s: %w", name, runner.ErrNotFound)
	}
	return "/usr/bin/" + name, nil
}

// Calls returns the commands run so far
func (r *Runner) Calls() []runner.Command {
	return r.calls
}

// CommandLines returns the command lines run so far
func (r *Runner) CommandLines() []string {
	lines := make([]string, 0, len(r.calls))
	for _, c := range r.calls {
		lines = append(lines, c.String())
	}
	return lines
}
