package cli

import (
	"github.com/buddy-build/buddy/internal/plugins"
	"github.com/buddy-build/buddy/internal/scaffold"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCmd)
}

var newCmd = &cobra.Command{
	Use:   "new <path>",
	Short: "Create a new Buddy package",
	Long: `Create a new binary (application) package at the given path.

The destination must not exist. The generated skeleton includes the
Buddy.toml manifest, the Buddy.lock file, a WORKSPACE with the pinned
dependency rules, and placeholder source and test targets.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return scaffold.CreateNew(args[0], plugins.Default(), cmd.OutOrStdout())
	},
}
