package cmd

import (
	"os"

	"github.com/crantools/preflight/internal/checks"
	"github.com/crantools/preflight/pkg/config"
	"github.com/crantools/preflight/pkg/exitcode"
	"github.com/crantools/preflight/pkg/logger"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// newCheckCommand creates a fresh check command. Built per command tree so
// flag state never leaks between trees.
func newCheckCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [package-path]",
		Short: "Run pre-release checks on an R package directory",
		Long: `Run the release checks against a package directory (default: current
directory). Output is advisory: every check runs regardless of earlier
outcomes, and the command exits zero unless --strict is set.`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}
	bindCheckFlags(cmd.Flags())
	return cmd
}

func bindCheckFlags(fs *pflag.FlagSet) {
	fs.Bool("summary", false, "Print an aligned results table after the run")
	fs.Bool("strict", false, "Exit non-zero when any check fails or errors")
	fs.Bool("git-state", false, "Also warn on uncommitted tracked changes in the worktree")
}

func runCheck(cmd *cobra.Command, args []string) error {
	pkgPath := "."
	if len(args) == 1 {
		pkgPath = args[0]
	}

	summary, _ := cmd.Flags().GetBool("summary")
	strict, _ := cmd.Flags().GetBool("strict")
	gitState, _ := cmd.Flags().GetBool("git-state")

	policy, err := config.LoadPolicy(pkgPath)
	if err != nil {
		logger.Error("Failed to load policy", logger.Err(err))
		os.Exit(exitcode.ConfigError)
	}
	// Flags layer on top of the policy file.
	if gitState {
		policy.Checks.GitState = true
	}
	if strict {
		policy.Checks.Strict = true
	}

	out := cmd.OutOrStdout()
	results, err := checks.Run(pkgPath, checks.Options{Out: out, Policy: policy})
	if err != nil {
		return err
	}

	if summary {
		checks.WriteSummary(out, results)
	}

	if policy.Checks.Strict && checks.AnyFailed(results) {
		logger.Debug("Strict mode: failing run", logger.Int("results", len(results)))
		os.Exit(exitcode.ValidationError)
	}
	return nil
}
