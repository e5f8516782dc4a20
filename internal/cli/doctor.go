package cli

import (
	"fmt"
	"os"

	"github.com/buddy-build/buddy/internal/bazel"
	"github.com/buddy-build/buddy/internal/config"
	"github.com/buddy-build/buddy/internal/lockfile"
	"github.com/buddy-build/buddy/internal/manifest"
	"github.com/buddy-build/buddy/internal/plugins"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(doctorCmd)
}

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check the local environment for problems",
	Long: `Check that the build toolchain is reachable, that configuration is
readable, and that the current directory's package manifest (if any) is
well formed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		healthy := true

		binary := config.BazelBinary()
		if path, err := bazel.Find(binary); err != nil {
			healthy = false
			fmt.Fprintf(out, "[FAIL] %s: not found on PATH\n", binary)
		} else {
			fmt.Fprintf(out, "[ OK ] %s: %s\n", binary, path)
		}

		cfgPath := config.FilePath()
		if _, err := os.Stat(cfgPath); err != nil {
			fmt.Fprintf(out, "[ OK ] config: %s (not present, using defaults)\n", cfgPath)
		} else {
			fmt.Fprintf(out, "[ OK ] config: %s\n", cfgPath)
		}

		if _, err := os.Stat(manifest.FileName); err != nil {
			fmt.Fprintf(out, "[ OK ] manifest: no %s in current directory\n", manifest.FileName)
		} else if result, err := manifest.ValidateFile(manifest.FileName); err != nil {
			healthy = false
			fmt.Fprintf(out, "[FAIL] manifest: %v\n", err)
		} else if !result.Valid {
			healthy = false
			fmt.Fprintf(out, "[FAIL] manifest: %s\n", manifest.FileName)
			for _, issue := range result.Issues {
				fmt.Fprintf(out, "       - %s: %s\n", issue.Path, issue.Message)
			}
		} else {
			fmt.Fprintf(out, "[ OK ] manifest: %s\n", manifest.FileName)
		}

		if _, err := os.Stat(lockfile.FileName); err == nil {
			if lock, err := lockfile.Load(lockfile.FileName); err != nil {
				healthy = false
				fmt.Fprintf(out, "[FAIL] lock file: %v\n", err)
			} else {
				fmt.Fprintf(out, "[ OK ] lock file: %s (%d packages)\n", lockfile.FileName, len(lock.Packages))
			}
		}

		if err := catalogSelfCheck(); err != nil {
			healthy = false
			fmt.Fprintf(out, "[FAIL] plugin catalog: %v\n", err)
		} else {
			reg := plugins.Default()
			fmt.Fprintf(out, "[ OK ] plugin catalog: %d plugins render cleanly\n", len(reg.Plugins()))
		}

		if !healthy {
			return fmt.Errorf("doctor found problems")
		}
		return nil
	},
}

// catalogSelfCheck renders every known plugin at every pinned version so a
// broken rule template surfaces here rather than during `buddy new`.
func catalogSelfCheck() error {
	reg := plugins.Default()
	for _, p := range reg.Plugins() {
		for _, pin := range p.Versions {
			if _, err := reg.Resolve(p.Name, pin.Version); err != nil {
				return fmt.Errorf("%s@%s: %w", p.Name, pin.Version, err)
			}
		}
	}
	return nil
}
