//go:build integration

package integration_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// chdir is a stand-in for testing.T.Chdir, which needs Go 1.24.
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(old); err != nil {
			t.Fatal(err)
		}
	})
}

// setupWorkspace isolates the test in a fresh working directory with its
// own HOME, so no user config leaks in.
func setupWorkspace(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	chdir(t, dir)
	t.Setenv("HOME", t.TempDir())
	return dir
}

// installFakeLauncher puts an executable shell script named bazelisk on the
// front of PATH. The script appends its argv to the returned log file and
// then runs the given body.
func installFakeLauncher(t *testing.T, body string) string {
	t.Helper()

	binDir := t.TempDir()
	logPath := filepath.Join(binDir, "invocations.log")
	script := "#!/bin/sh\necho \"$@\" >> " + logPath + "\n" + body + "\n"

	launcher := filepath.Join(binDir, "bazelisk")
	if err := os.WriteFile(launcher, []byte(script), 0755); err != nil {
		t.Fatalf("writing fake launcher: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
	return logPath
}

// assertFileExists fails the test if the file does not exist.
func assertFileExists(t *testing.T, path string) {
	t.Helper()
	if _, err := os.Stat(path); err != nil {
		t.Errorf("expected file to exist: %s (error: %v)", path, err)
	}
}

// assertFileContains fails if the file doesn't exist or doesn't contain substr.
func assertFileContains(t *testing.T, path, substr string) {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Errorf("reading %s: %v", path, err)
		return
	}
	if !strings.Contains(string(data), substr) {
		t.Errorf("file %s does not contain %q.\nContents:\n%s", path, substr, string(data))
	}
}
