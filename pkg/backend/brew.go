// pkg/backend/brew.go
package backend

import (
	"context"
	"fmt"

	"github.com/arc-language/pyup/pkg/core"
	"github.com/arc-language/pyup/pkg/platform"
	"github.com/arc-language/pyup/pkg/runner"
)

// BrewBackend installs through Homebrew, bootstrapping Homebrew first when
// it is not installed
type BrewBackend struct {
	steps
}

// NewBrewBackend creates a new Homebrew backend
func NewBrewBackend(config *Config) *BrewBackend {
	return &BrewBackend{steps{config: config}}
}

// Install makes sure brew exists, installs the runtime and reports its
// version
func (b *BrewBackend) Install(ctx context.Context) (*core.Report, error) {
	entry := b.config.Entry

	pkgs, err := entry.Resolve("brew")
	if err != nil {
		return nil, err
	}

	b.step(1, 2, "Checking Homebrew")
	if err := b.ensureBrew(ctx); err != nil {
		return nil, err
	}

	b.step(2, 2, fmt.Sprintf("Installing %s", entry.DisplayName()))
	if err := b.required(ctx, "installing "+entry.Name, packageCommand("brew", "install", pkgs)); err != nil {
		return nil, err
	}

	return b.verify(ctx, platform.LabelMacOS, BackendBrew)
}

// ensureBrew probes "brew --version". Only a missing brew binary triggers
// the bootstrap; a probe that runs but fails is ignored.
func (b *BrewBackend) ensureBrew(ctx context.Context) error {
	res, err := b.config.Runner.Run(ctx, runner.Cmd("brew", "--version"))
	switch {
	case err == nil:
		if !res.Success() {
			b.config.Logger.Debug("brew --version failed, continuing", "exit", res.ExitCode)
		}
		return nil
	case !isNotFound(err):
		b.config.Logger.Debug("brew probe could not run, continuing", "err", err)
		return nil
	}

	fmt.Fprintln(b.config.Out, "Homebrew not found, installing it first...")
	b.config.Logger.Info("Bootstrapping Homebrew", "url", b.config.BootstrapURL)

	return b.required(ctx, "installing Homebrew", bootstrapCommand(b.config.BootstrapURL))
}

// bootstrapCommand fetches the Homebrew install script and runs it with
// bash. The script prompts, so the terminal stays attached.
func bootstrapCommand(url string) runner.Command {
	return runner.Command{
		Name:        "/bin/sh",
		Args:        []string{"-c", fmt.Sprintf(`/bin/bash -c "$(curl -fsSL %s)"`, url)},
		Interactive: true,
	}
}

// Name returns the backend name
func (b *BrewBackend) Name() string {
	return string(BackendBrew)
}
