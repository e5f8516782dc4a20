package cli

import (
	"github.com/buddy-build/buddy/internal/plugins"
	"github.com/buddy-build/buddy/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(initCmd)
}

var initCmd = &cobra.Command{
	Use:   "init [path]",
	Short: "Create a new Buddy package in an existing directory",
	Long: `Initialize a Buddy package at the given path (default: the current
directory), creating the directory when needed.

The manifest is always written. The WORKSPACE and the source/test skeleton
are only scaffolded when no WORKSPACE exists yet; files that already exist
are never overwritten, so re-running init is safe.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := "."
		if len(args) == 1 {
			path = args[0]
		}
		return scaffold.InitInPlace(path, plugins.Default(), cmd.OutOrStdout())
	},
}
