package bazel

import "github.com/buddy-build/buddy/internal/manifest"

// Op is a launcher subcommand.
type Op string

const (
	OpBuild Op = "build"
	OpRun   Op = "run"
	OpTest  Op = "test"
)

// symlinkPrefixFlag keeps the launcher's convenience symlinks under our own
// target/ tree.
const symlinkPrefixFlag = "--symlink_prefix=target/"

// CleanupDir is the transient output-symlink directory removed after every
// invocation.
const CleanupDir = "bazel-out"

// Invocation is a fully constructed launcher command line.
type Invocation struct {
	Bin  string
	Args []string
}

// DefaultTarget returns the target expression used when the user supplies
// none: all sources for build, all tests for test, and for run the single
// binary named after the manifest's package.
func DefaultTarget(op Op, m manifest.Manifest) string {
	switch op {
	case OpTest:
		return "//test/..."
	case OpRun:
		return "//src:" + m.Package.Name
	default:
		return "//src/..."
	}
}

// NewInvocation builds the launcher command line for op. User targets are
// passed through verbatim when present; otherwise defaultTarget is
// appended.
func NewInvocation(bin string, op Op, targets []string, defaultTarget string) Invocation {
	args := []string{string(op)}
	if op == OpTest {
		args = append(args, "--test_output=all")
	}
	args = append(args, symlinkPrefixFlag)
	if len(targets) > 0 {
		args = append(args, targets...)
	} else {
		args = append(args, defaultTarget)
	}
	return Invocation{Bin: bin, Args: args}
}
