package cli

import (
	"github.com/buddy-build/buddy/internal/bazel"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(buildCmd)
}

var buildCmd = &cobra.Command{
	Use:   "build [targets...]",
	Short: "Compile the current package",
	Long: `Compile the current package with bazelisk.

Targets are passed through verbatim; without any, all sources under //src
are built.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBazel(cmd, bazel.OpBuild, args)
	},
}
