package cli

import (
	"github.com/buddy-build/buddy/internal/bazel"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(testCmd)
}

var testCmd = &cobra.Command{
	Use:   "test [targets...]",
	Short: "Run the tests",
	Long: `Run the package tests with bazelisk, showing full test output.

Targets are passed through verbatim; without any, all tests under //test
are run.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBazel(cmd, bazel.OpTest, args)
	},
}
