// internal/cli/install.go
package cli

import (
	"context"
	"os"

	"github.com/spf13/cobra"

	"github.com/arc-language/pyup"
	"github.com/arc-language/pyup/pkg/runner"
)

func runInstall(cmd *cobra.Command, args []string) error {
	ctx := context.Background()

	opts := &pyup.Options{
		Stdout: cmd.OutOrStdout(),
		Logger: pyup.NewLogger(os.Stderr, config.Debug),
	}
	if dryRun {
		opts.Runner = &runner.DryRunner{Out: cmd.OutOrStdout()}
	}

	inst, err := pyup.NewInstaller(config, opts)
	if err != nil {
		return err
	}

	_, err = inst.Run(ctx)
	return err
}
