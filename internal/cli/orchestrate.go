package cli

import (
	"github.com/buddy-build/buddy/internal/bazel"
	"github.com/buddy-build/buddy/internal/config"
	"github.com/buddy-build/buddy/internal/manifest"
	"github.com/spf13/cobra"
)

// runBazel is the shared path for build/run/test: resolve the launcher
// binary, load the manifest (a missing one degrades to defaults, a
// malformed one aborts), construct the invocation, and drive it.
func runBazel(cmd *cobra.Command, op bazel.Op, targets []string) error {
	bin, err := bazel.Find(config.BazelBinary())
	if err != nil {
		return err
	}

	m, err := manifest.Load(manifest.FileName)
	if err != nil {
		return err
	}

	inv := bazel.NewInvocation(bin, op, targets, bazel.DefaultTarget(op, m))
	orch := &bazel.Orchestrator{}
	return orch.Run(cmd.Context(), inv)
}
