package backend

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/arc-language/pyup/pkg/core"
	"github.com/arc-language/pyup/pkg/platform"
	"github.com/arc-language/pyup/pkg/runner"
)

// steps carries the helpers shared by the command-running backends
type steps struct {
	config *Config
}

// step prints a numbered progress line
func (s *steps) step(n, total int, msg string) {
	fmt.Fprintf(s.config.Out, "[%d/%d] %s...\n", n, total, msg)
}

// required runs a command whose failure ends the install
func (s *steps) required(ctx context.Context, op string, cmd runner.Command) error {
	res, err := s.config.Runner.Run(ctx, cmd)
	if err != nil {
		return &core.CommandError{
			Op:       op,
			Command:  cmd.String(),
			ExitCode: -1,
			Err:      err,
		}
	}

	if !res.Success() {
		s.config.Logger.Debug("Required command failed", "cmd", cmd.String(), "exit", res.ExitCode)
		return &core.CommandError{
			Op:       op,
			Command:  cmd.String(),
			Started:  true,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
			Err:      core.ErrCommandFailed,
		}
	}

	return nil
}

// sequence runs required commands in order, stopping at the first failure
func (s *steps) sequence(ctx context.Context, op string, cmds ...runner.Command) error {
	for _, cmd := range cmds {
		if err := s.required(ctx, op, cmd); err != nil {
			return err
		}
	}
	return nil
}

// version runs a verification command. Its failure is only logged: the
// trimmed stdout is returned whatever the outcome.
func (s *steps) version(ctx context.Context, binary string) string {
	cmd := runner.Cmd(binary, "--version")

	res, err := s.config.Runner.Run(ctx, cmd)
	if err != nil {
		s.config.Logger.Debug("Version check could not run", "cmd", cmd.String(), "err", err)
		return ""
	}
	if !res.Success() {
		s.config.Logger.Debug("Version check failed", "cmd", cmd.String(), "exit", res.ExitCode)
	}

	return strings.TrimSpace(res.Stdout)
}

// verify queries the installed runtime and package installer versions
func (s *steps) verify(ctx context.Context, label platform.Label, name BackendType) (*core.Report, error) {
	rt, inst, err := s.config.Entry.BinariesFor(label.String())
	if err != nil {
		return nil, err
	}

	return &core.Report{
		Runtime:          s.config.Entry.Name,
		Backend:          string(name),
		RuntimeBinary:    rt,
		RuntimeVersion:   s.version(ctx, rt),
		InstallerBinary:  inst,
		InstallerVersion: s.version(ctx, inst),
	}, nil
}

// packageCommand builds "<manager> <verb> <pkgs...> [extra...]"
func packageCommand(manager, verb string, pkgs []string, extra ...string) runner.Command {
	args := make([]string, 0, len(pkgs)+len(extra)+1)
	args = append(args, verb)
	args = append(args, pkgs...)
	args = append(args, extra...)
	return runner.Cmd(manager, args...)
}

// isNotFound reports whether err is the command-not-found condition
func isNotFound(err error) bool {
	return errors.Is(err, core.ErrCommandNotFound)
}
