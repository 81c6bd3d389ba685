// pkg/backend/windows.go
package backend

import (
	"context"
	"fmt"

	"github.com/arc-language/pyup/pkg/core"
	"github.com/arc-language/pyup/pkg/platform"
)

// WindowsBackend prints manual installation steps. It runs no commands.
type WindowsBackend struct {
	config *Config
}

// NewWindowsBackend creates a new Windows backend
func NewWindowsBackend(config *Config) *WindowsBackend {
	return &WindowsBackend{config: config}
}

// Install prints the official installer instructions
func (b *WindowsBackend) Install(_ context.Context) (*core.Report, error) {
	entry := b.config.Entry
	out := b.config.Out

	rt, inst, err := entry.BinariesFor(platform.LabelWindows.String())
	if err != nil {
		return nil, err
	}

	fmt.Fprintf(out, "\n%s must be installed manually on Windows:\n", entry.DisplayName())
	fmt.Fprintf(out, "1. Visit %s\n", entry.DownloadURL)
	if entry.PathOption != "" {
		fmt.Fprintf(out, "2. Download the latest release and tick \"%s\" in the installer\n", entry.PathOption)
	} else {
		fmt.Fprintf(out, "2. Download the latest release and run the installer\n")
	}
	fmt.Fprintf(out, "3. Open cmd and run \"%s --version\" to verify\n", rt)

	return &core.Report{
		Runtime:         entry.Name,
		Backend:         string(BackendManual),
		RuntimeBinary:   rt,
		InstallerBinary: inst,
		Manual:          true,
	}, nil
}

// Name returns the backend name
func (b *WindowsBackend) Name() string {
	return string(BackendManual)
}
