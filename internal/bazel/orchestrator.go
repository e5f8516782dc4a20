package bazel

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"

	"github.com/rs/zerolog/log"
)

// Orchestrator drives one launcher invocation at a time to completion.
// Zero value is ready to use; the writer fields exist for tests.
type Orchestrator struct {
	Stdout     io.Writer // child stdout destination, defaults to os.Stdout
	Diag       io.Writer // restyled diagnostics destination, defaults to os.Stderr
	CleanupDir string    // defaults to CleanupDir
}

// Run spawns the invocation and waits for it to finish. The child's stdout
// stays connected to Stdout directly, so run targets show their output
// live. The diagnostic stream is piped and forwarded line by line while the
// child is still running; waiting for exit before draining the pipe would
// deadlock once the launcher outgrows the pipe buffer.
//
// The transient output-symlink directory is removed after the child exits,
// whatever the outcome. A non-zero child exit comes back as *ExitError.
func (o *Orchestrator) Run(ctx context.Context, inv Invocation) error {
	stdout := o.Stdout
	if stdout == nil {
		stdout = os.Stdout
	}
	diag := o.Diag
	if diag == nil {
		diag = os.Stderr
	}
	cleanupDir := o.CleanupDir
	if cleanupDir == "" {
		cleanupDir = CleanupDir
	}

	cmd := exec.CommandContext(ctx, inv.Bin, inv.Args...)
	cmd.Stdin = os.Stdin
	cmd.Stdout = stdout

	stderr, err := cmd.StderrPipe()
	if err != nil {
		return fmt.Errorf("piping diagnostics: %w", err)
	}

	log.Debug().Str("bin", inv.Bin).Strs("args", inv.Args).Msg("spawning launcher")

	if err := cmd.Start(); err != nil {
		return fmt.Errorf("starting %s: %w", inv.Bin, err)
	}

	streamErr := Restyle(diag, stderr)
	waitErr := cmd.Wait()

	// Bazel recreates this symlink directory on every invocation; drop it
	// whether or not the invocation succeeded.
	if err := os.RemoveAll(cleanupDir); err != nil {
		log.Warn().Err(err).Str("dir", cleanupDir).Msg("cleanup failed")
	} else {
		log.Debug().Str("dir", cleanupDir).Msg("removed transient output directory")
	}

	if waitErr != nil {
		if exitErr, ok := waitErr.(*exec.ExitError); ok {
			log.Debug().Int("code", exitErr.ExitCode()).Msg("launcher exited non-zero")
			return &ExitError{Code: exitErr.ExitCode()}
		}
		return fmt.Errorf("running %s: %w", inv.Bin, waitErr)
	}
	return streamErr
}
