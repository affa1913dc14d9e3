package cmd

import (
	"fmt"
	"runtime"

	"github.com/crantools/preflight/pkg/buildinfo"
	"github.com/spf13/cobra"
)

// newVersionCommand creates a fresh version command.
func newVersionCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "version",
		Short: "Show preflight version information",
		RunE:  runVersion,
	}
	cmd.Flags().Bool("extended", false, "Show detailed build information")
	return cmd
}

func runVersion(cmd *cobra.Command, _ []string) error {
	extended, _ := cmd.Flags().GetBool("extended")
	out := cmd.OutOrStdout()

	fmt.Fprintf(out, "preflight %s\n", buildinfo.BinaryVersion)
	if extended {
		if mv := buildinfo.ModuleVersion(); mv != "" {
			fmt.Fprintf(out, "module version: %s\n", mv)
		}
		fmt.Fprintf(out, "go: %s\n", runtime.Version())
		fmt.Fprintf(out, "platform: %s/%s\n", runtime.GOOS, runtime.GOARCH)
	}
	return nil
}
