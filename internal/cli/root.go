// internal/cli/root.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/pyup/pkg/core"
)

var (
	cfgFile     string
	environment string
	debug       bool
	dryRun      bool
	config      *core.Config
	configErr   error
)

// rootCmd installs the runtime when invoked without a subcommand
var rootCmd = &cobra.Command{
	Use:   "pyup",
	Short: "One-step Python installer",
	Long: `pyup - One-step Python installer

Detects whether it is running in Termux, on Windows, on macOS or on Linux
and installs Python and pip with the native package manager:

  Termux   pkg
  macOS    Homebrew (installed first if missing)
  Linux    apt, or yum when apt is not available
  Windows  prints the steps for the official installer`,
	Version:           version,
	Args:              cobra.NoArgs,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: checkConfig,
	RunE:              runInstall,
}

// Execute executes the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $PYUP_CONFIG or $HOME/.config/pyup/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&environment, "env", "", "skip detection and install for this environment (termux, windows, macos, linux)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")

	rootCmd.Flags().BoolVar(&dryRun, "dry-run", false, "print the commands instead of running them")

	// Add commands
	rootCmd.AddCommand(detectCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(versionCmd)
}

// checkConfig stops every command when the config file failed to load
func checkConfig(cmd *cobra.Command, args []string) error {
	return configErr
}

func initConfig() {
	var err error
	config, err = core.LoadConfig(cfgFile)
	configErr = nil
	if err != nil {
		configErr = fmt.Errorf("loading config: %w", err)
		config = core.DefaultConfig()
	}

	// Override config with flags
	if environment != "" {
		config.Environment = environment
	}
	if debug {
		config.Debug = true
	}
}
