package bazel

import (
	"fmt"
	"os/exec"

	"github.com/buddy-build/buddy/internal/branding"
)

// NotFoundError reports that the launcher binary could not be resolved on
// the search path. It is an ordinary error so callers and tests can observe
// it without the process terminating.
type NotFoundError struct {
	Binary string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s binary not found on PATH. See %s", e.Binary, branding.BazeliskDocsURL())
}

// ExitError reports a launcher invocation that ran to completion with a
// non-zero status. It is the expected outcome when the user's own build or
// tests fail; callers propagate Code as the process exit status instead of
// treating it as an internal failure.
type ExitError struct {
	Code int
}

func (e *ExitError) Error() string {
	return fmt.Sprintf("bazel exited with status %d", e.Code)
}

// Find resolves the launcher binary by name on the search path.
func Find(binary string) (string, error) {
	path, err := exec.LookPath(binary)
	if err != nil {
		return "", &NotFoundError{Binary: binary}
	}
	return path, nil
}
