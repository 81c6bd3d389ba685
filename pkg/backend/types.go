// pkg/backend/types.go
package backend

import (
	"context"
	"fmt"
	"io"

	"github.com/charmbracelet/log"

	"github.com/arc-language/pyup/pkg/core"
	"github.com/arc-language/pyup/pkg/platform"
	"github.com/arc-language/pyup/pkg/registry"
	"github.com/arc-language/pyup/pkg/runner"
)

// BackendType represents the package manager backend
type BackendType string

const (
	// BackendPkg uses the Termux package manager
	BackendPkg BackendType = "pkg"
	// BackendBrew uses Homebrew, bootstrapping it when absent
	BackendBrew BackendType = "brew"
	// BackendLinux uses apt, falling back to yum
	BackendLinux BackendType = "apt/yum"
	// BackendManual prints installation instructions
	BackendManual BackendType = "manual"
)

// Backend defines the interface that all installer backends must implement
type Backend interface {
	// Install installs the runtime and reports the installed versions
	Install(ctx context.Context) (*core.Report, error)

	// Name returns the name of the backend
	Name() string
}

// Config holds what every backend needs to run
type Config struct {
	// Runner executes package manager commands
	Runner runner.Runner

	// Out receives progress and instructions
	Out io.Writer

	// Logger for debug logging
	Logger *log.Logger

	// Entry is the runtime being installed
	Entry *registry.Entry

	// Sudo prefixes Linux package manager commands with sudo
	Sudo bool

	// BootstrapURL is the Homebrew install script
	BootstrapURL string
}

// New returns the backend for an environment label. LabelUnknown has no
// backend and yields core.ErrUnsupportedEnvironment.
func New(label platform.Label, config *Config) (Backend, error) {
	if config == nil || config.Runner == nil || config.Out == nil || config.Entry == nil {
		return nil, fmt.Errorf("backend: incomplete config")
	}
	if config.Logger == nil {
		config.Logger = log.New(io.Discard)
	}
	if config.BootstrapURL == "" {
		config.BootstrapURL = core.DefaultBootstrapURL
	}

	switch label {
	case platform.LabelTermux:
		return NewTermuxBackend(config), nil
	case platform.LabelWindows:
		return NewWindowsBackend(config), nil
	case platform.LabelMacOS:
		return NewBrewBackend(config), nil
	case platform.LabelLinux:
		return NewLinuxBackend(config), nil
	default:
		return nil, fmt.Errorf("%w: %s", core.ErrUnsupportedEnvironment, label)
	}
}
