// pyup.go
package pyup

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/arc-language/pyup/pkg/backend"
	"github.com/arc-language/pyup/pkg/core"
	"github.com/arc-language/pyup/pkg/platform"
	"github.com/arc-language/pyup/pkg/registry"
	"github.com/arc-language/pyup/pkg/runner"
)

// Re-export types for convenience
type (
	Config      = core.Config
	Report      = core.Report
	Label       = platform.Label
	Environment = platform.Environment
	Runner      = runner.Runner
	// RegistryEntry is the package metadata for one runtime
	RegistryEntry = registry.Entry
)

// Re-export labels
const (
	LabelTermux  = platform.LabelTermux
	LabelWindows = platform.LabelWindows
	LabelMacOS   = platform.LabelMacOS
	LabelLinux   = platform.LabelLinux
	LabelUnknown = platform.LabelUnknown
)

// DefaultConfig returns a configuration with sensible defaults
func DefaultConfig() *Config {
	return core.DefaultConfig()
}

// Options injects the process-level capabilities an Installer uses. Zero
// fields fall back to the real process.
type Options struct {
	Env    Environment
	Runner Runner
	Stdout io.Writer
	Logger *log.Logger
}

// Installer detects the environment and installs the configured runtime
type Installer struct {
	config *Config
	env    Environment
	runner Runner
	out    io.Writer
	logger *log.Logger
	entry  *registry.Entry
}

// NewInstaller creates an installer for the configured runtime
func NewInstaller(config *Config, opts *Options) (*Installer, error) {
	if config == nil {
		config = core.DefaultConfig()
	}
	if opts == nil {
		opts = &Options{}
	}

	logger := opts.Logger
	if logger == nil {
		logger = NewLogger(os.Stderr, config.Debug)
	}

	inst := &Installer{
		config: config,
		env:    opts.Env,
		runner: opts.Runner,
		out:    opts.Stdout,
		logger: logger,
	}
	if inst.env == nil {
		inst.env = platform.HostEnvironment{}
	}
	if inst.runner == nil {
		inst.runner = runner.NewExecRunner(logger)
	}
	if inst.out == nil {
		inst.out = os.Stdout
	}

	reg, err := loadRegistry(config.Registry)
	if err != nil {
		return nil, &Error{Op: "loading registry", Err: err}
	}

	runtimeName := config.Runtime
	if runtimeName == "" {
		runtimeName = core.DefaultRuntime
	}
	inst.entry, err = reg.Lookup(runtimeName)
	if err != nil {
		err = fmt.Errorf("%w (available: %s)", err, strings.Join(reg.Names(), ", "))
		return nil, &Error{Op: "loading registry", Err: err}
	}

	return inst, nil
}

func loadRegistry(path string) (*registry.Registry, error) {
	if path == "" {
		return registry.Default()
	}
	return registry.Load(path)
}

// NewLogger returns the stderr logger used for diagnostics
func NewLogger(w io.Writer, debug bool) *log.Logger {
	logger := log.NewWithOptions(w, log.Options{
		Prefix: "pyup",
	})
	if debug {
		logger.SetLevel(log.DebugLevel)
	}
	return logger
}

// Detect returns the environment label, honouring a configured override
func (i *Installer) Detect() (Label, error) {
	return platform.Resolve(i.env, i.config.Environment)
}

// Entry returns the runtime being installed
func (i *Installer) Entry() *RegistryEntry {
	return i.entry
}

// Run detects the environment and installs the runtime, printing progress
// and the outcome. Install failures are printed before being returned, see
// Reported.
func (i *Installer) Run(ctx context.Context) (*Report, error) {
	title := i.entry.DisplayName()
	fmt.Fprintf(i.out, "=== %s installer ===\n", title)

	label, err := i.Detect()
	if err != nil {
		return nil, err
	}
	fmt.Fprintf(i.out, "Environment: %s\n", label)
	i.logger.Debug("Environment resolved", "label", label, "override", i.config.Environment)

	b, err := backend.New(label, &backend.Config{
		Runner:       i.runner,
		Out:          i.out,
		Logger:       i.logger,
		Entry:        i.entry,
		Sudo:         i.config.Sudo,
		BootstrapURL: i.config.BootstrapURL,
	})
	if err != nil {
		if errors.Is(err, core.ErrUnsupportedEnvironment) {
			fmt.Fprintf(i.out, "\n✗ Unsupported environment, please install %s manually.\n", title)
		}
		return nil, &Error{Op: opInstall, Environment: label, Err: err}
	}

	report, err := b.Install(ctx)
	if err != nil {
		fmt.Fprintf(i.out, "\n✗ Installation failed! Error details: %s\n", excerpt(err))
		return nil, &Error{Op: opInstall, Environment: label, Err: err}
	}

	if !report.Manual {
		fmt.Fprintf(i.out, "\n✓ Installation complete! %s: %s\n%s: %s\n",
			report.RuntimeBinary, report.RuntimeVersion,
			report.InstallerBinary, report.InstallerVersion)
	}

	return report, nil
}

// excerpt returns the part of a failure shown to the user
func excerpt(err error) string {
	var cmdErr *core.CommandError
	if errors.As(err, &cmdErr) {
		return cmdErr.Excerpt(core.ExcerptLimit)
	}
	return core.Truncate(err.Error(), core.ExcerptLimit)
}
