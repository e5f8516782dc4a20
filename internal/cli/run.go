package cli

import (
	"github.com/buddy-build/buddy/internal/bazel"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(runCmd)
}

var runCmd = &cobra.Command{
	Use:   "run [targets...]",
	Short: "Run a binary or example of the local package",
	Long: `Run a binary of the local package with bazelisk.

Targets are passed through verbatim; without any, the binary named after
the manifest's package name is run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBazel(cmd, bazel.OpRun, args)
	},
}
