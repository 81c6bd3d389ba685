// pkg/backend/termux.go
package backend

import (
	"context"
	"fmt"

	"github.com/arc-language/pyup/pkg/core"
	"github.com/arc-language/pyup/pkg/platform"
	"github.com/arc-language/pyup/pkg/runner"
)

// TermuxBackend installs through Termux's pkg command
type TermuxBackend struct {
	steps
}

// NewTermuxBackend creates a new Termux backend
func NewTermuxBackend(config *Config) *TermuxBackend {
	return &TermuxBackend{steps{config: config}}
}

// Install refreshes the package index, installs the runtime and reports
// its version
func (b *TermuxBackend) Install(ctx context.Context) (*core.Report, error) {
	entry := b.config.Entry

	pkgs, err := entry.Resolve("pkg")
	if err != nil {
		return nil, err
	}

	b.step(1, 3, "Updating package sources")
	if err := b.required(ctx, "updating package sources", runner.Cmd("pkg", "update", "-y")); err != nil {
		return nil, err
	}

	b.step(2, 3, fmt.Sprintf("Installing %s", entry.DisplayName()))
	if err := b.required(ctx, "installing "+entry.Name, packageCommand("pkg", "install", pkgs, "-y")); err != nil {
		return nil, err
	}

	b.step(3, 3, "Verifying installation")
	return b.verify(ctx, platform.LabelTermux, BackendPkg)
}

// Name returns the backend name
func (b *TermuxBackend) Name() string {
	return string(BackendPkg)
}
