// pkg/backend/linux.go
package backend

import (
	"context"
	"fmt"

	"github.com/arc-language/pyup/pkg/core"
	"github.com/arc-language/pyup/pkg/platform"
	"github.com/arc-language/pyup/pkg/runner"
)

// LinuxBackend installs through apt, or through yum when apt is not
// installed
type LinuxBackend struct {
	steps
}

// NewLinuxBackend creates a new Linux backend
func NewLinuxBackend(config *Config) *LinuxBackend {
	return &LinuxBackend{steps{config: config}}
}

// Install runs the apt sequence, falling back to yum when apt (or sudo) is
// missing. A package manager that runs and fails is not retried with the
// other one.
func (b *LinuxBackend) Install(ctx context.Context) (*core.Report, error) {
	entry := b.config.Entry

	b.step(1, 2, fmt.Sprintf("Installing %s", entry.DisplayName()))

	err := core.ErrCommandNotFound
	if _, lookErr := b.config.Runner.LookPath("apt"); lookErr == nil {
		err = b.installWith(ctx, "apt", []string{"update"}, "-y")
	}

	if isNotFound(err) {
		b.config.Logger.Info("apt not available, falling back to yum")
		fmt.Fprintln(b.config.Out, "apt not available, using yum instead...")
		err = b.installWith(ctx, "yum", []string{"update", "-y"}, "-y")
	}

	if err != nil {
		return nil, err
	}

	b.step(2, 2, "Verifying installation")
	return b.verify(ctx, platform.LabelLinux, BackendLinux)
}

// installWith refreshes the index with update and installs the runtime's
// packages for manager
func (b *LinuxBackend) installWith(ctx context.Context, manager string, update []string, assumeYes string) error {
	pkgs, err := b.config.Entry.Resolve(manager)
	if err != nil {
		return err
	}

	return b.sequence(ctx, "installing "+b.config.Entry.Name+" with "+manager,
		b.privileged(runner.Cmd(manager, update...)),
		b.privileged(packageCommand(manager, "install", pkgs, assumeYes)),
	)
}

// privileged prefixes cmd with sudo when configured to
func (b *LinuxBackend) privileged(cmd runner.Command) runner.Command {
	if !b.config.Sudo {
		return cmd
	}
	return runner.Cmd("sudo", append([]string{cmd.Name}, cmd.Args...)...)
}

// Name returns the backend name
func (b *LinuxBackend) Name() string {
	return string(BackendLinux)
}
