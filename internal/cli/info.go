// internal/cli/info.go
package cli

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arc-language/pyup"
)

var infoCmd = &cobra.Command{
	Use:   "info [runtime]",
	Short: "Show what would be installed",
	Long:  `Display the packages and binaries pyup uses for a runtime (default: the configured one).`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runInfo,
}

func runInfo(cmd *cobra.Command, args []string) error {
	if len(args) == 1 {
		config.Runtime = args[0]
	}

	inst, err := pyup.NewInstaller(config, &pyup.Options{
		Stdout: cmd.OutOrStdout(),
		Logger: pyup.NewLogger(cmd.ErrOrStderr(), config.Debug),
	})
	if err != nil {
		return err
	}

	entry := inst.Entry()
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "Runtime: %s\n", entry.DisplayName())
	if entry.Description != "" {
		fmt.Fprintf(out, "Description: %s\n", entry.Description)
	}
	if entry.DownloadURL != "" {
		fmt.Fprintf(out, "Download: %s\n", entry.DownloadURL)
	}

	fmt.Fprintf(out, "\nPackages:\n")
	for _, manager := range sortedKeys(entry.Packages) {
		fmt.Fprintf(out, "  %-6s %s\n", manager, strings.Join(entry.Packages[manager], " "))
	}

	fmt.Fprintf(out, "\nVerified with:\n")
	for _, label := range sortedKeys(entry.Binaries) {
		fmt.Fprintf(out, "  %-8s %s\n", label, strings.Join(entry.Binaries[label], ", "))
	}

	return nil
}

func sortedKeys(m map[string][]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
