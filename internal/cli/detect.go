// internal/cli/detect.go
package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arc-language/pyup/pkg/platform"
)

var detectCmd = &cobra.Command{
	Use:   "detect",
	Short: "Show the detected environment",
	Long:  `Show which environment pyup detects and which package managers are on PATH.`,
	Args:  cobra.NoArgs,
	RunE:  runDetect,
}

func runDetect(cmd *cobra.Command, args []string) error {
	env := platform.HostEnvironment{}
	plat := platform.Detect(env, nil)

	label, err := platform.Resolve(env, config.Environment)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Environment: %s\n", plat.Label)
	if label != plat.Label {
		fmt.Fprintf(out, "Configured:  %s\n", label)
	}
	fmt.Fprintf(out, "Platform:    %s/%s\n\n", plat.OS, plat.Arch)

	preferred := preferredManager(plat, label)

	fmt.Fprintf(out, "Package managers:\n")
	if len(plat.Available) == 0 {
		fmt.Fprintf(out, "  (none found)\n")
	}
	for _, manager := range plat.Available {
		marker := " "
		if manager == preferred {
			marker = "*"
		}
		fmt.Fprintf(out, "  %s %s\n", marker, manager)
	}

	if preferred != "" {
		fmt.Fprintf(out, "\n* = used for %s\n", label)
	}

	return nil
}

// managersByLabel lists, in order of preference, the package managers an
// install for each label runs
var managersByLabel = map[platform.Label][]string{
	platform.LabelTermux: {"pkg"},
	platform.LabelMacOS:  {"brew"},
	platform.LabelLinux:  {"apt", "yum"},
}

// preferredManager returns the first manager for label found on the
// platform, or "" when none is
func preferredManager(plat *platform.Platform, label platform.Label) string {
	for _, manager := range managersByLabel[label] {
		if plat.Has(manager) {
			return manager
		}
	}
	return ""
}
