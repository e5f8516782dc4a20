package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/buddy-build/buddy/internal/bazel"
	"github.com/buddy-build/buddy/internal/branding"
	"github.com/buddy-build/buddy/internal/config"
	"github.com/buddy-build/buddy/internal/observability"
	"github.com/buddy-build/buddy/internal/styles"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string

	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   branding.CLIName(),
	Short: branding.Description(),
	Long: branding.DisplayName() + ` manages Bazel-based C++ packages through a Buddy.toml manifest:
scaffold a package with new/init, then delegate compilation, execution, and
testing to bazelisk without hand-writing WORKSPACE rules.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		config.Load()
		observability.InitLogger(branding.CLIName(), verbose || config.Verbose())
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}

// Execute runs the root command with build info injected via ldflags. A
// launcher exit status is returned as-is for main to propagate; any other
// error is printed as a styled error line first.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	err := rootCmd.Execute()
	if err != nil {
		var exitErr *bazel.ExitError
		if !errors.As(err, &exitErr) {
			fmt.Fprintf(os.Stderr, "%s %v\n", styles.ErrorPrefix(), err)
		}
	}
	return err
}
