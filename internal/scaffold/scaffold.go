package scaffold

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/buddy-build/buddy/internal/lockfile"
	"github.com/buddy-build/buddy/internal/manifest"
	"github.com/buddy-build/buddy/internal/plugins"
	"github.com/buddy-build/buddy/internal/styles"
)

// Scaffolding precondition failures. Both are reported to the user before
// any write is attempted.
var (
	ErrDestinationExists = errors.New("destination already exists")
	ErrAlreadyAPackage   = errors.New("already a Buddy package")
)

// CreateNew creates a complete package skeleton at dest. The destination
// must not exist; everything is written in a single pass with nothing
// conditionally skipped.
func CreateNew(dest string, reg *plugins.Registry, out io.Writer) error {
	if _, err := os.Stat(dest); err == nil {
		return fmt.Errorf("%w: `%s`", ErrDestinationExists, dest)
	} else if !os.IsNotExist(err) {
		return fmt.Errorf("checking destination %s: %w", dest, err)
	}

	name := filepath.Base(filepath.Clean(dest))
	m := manifest.Default(name)

	// Render everything before touching the filesystem so a catalogue
	// failure leaves no partial skeleton behind.
	workspace, err := renderWorkspace(reg, m.Dependencies)
	if err != nil {
		return err
	}
	stubs, err := renderStubs(m)
	if err != nil {
		return err
	}

	for _, dir := range []string{dest, filepath.Join(dest, "src"), filepath.Join(dest, "test")} {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("creating directory %s: %w", dir, err)
		}
	}

	if err := writeFile(filepath.Join(dest, WorkspaceName), workspace); err != nil {
		return err
	}
	if err := manifest.Write(filepath.Join(dest, manifest.FileName), m); err != nil {
		return err
	}
	lock := lockfile.New(lockEntries(reg, m.Dependencies))
	if err := lockfile.Write(filepath.Join(dest, lockfile.FileName), lock); err != nil {
		return err
	}
	for rel, content := range stubs {
		if err := writeFile(filepath.Join(dest, rel), content); err != nil {
			return err
		}
	}

	fmt.Fprintf(out, "    %s binary (application) `%s` package\n", styles.Created(), name)
	return nil
}

// InitInPlace initializes a package at path, creating the directory when
// needed. The manifest is always (re)written. The workspace descriptor and
// the source/test skeleton are created as a group only while no workspace
// marker exists at path, and each piece individually never overwrites a
// pre-existing file. Re-running init on an initialized directory rewrites
// the manifest and touches nothing else.
//
// The "already a package" check deliberately inspects the process working
// directory, not path.
func InitInPlace(path string, reg *plugins.Registry, out io.Writer) error {
	if _, err := os.Stat(manifest.FileName); err == nil {
		return fmt.Errorf("%w: cannot init inside an existing package", ErrAlreadyAPackage)
	}

	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}
	name := filepath.Base(abs)
	m := manifest.Default(name)

	if err := manifest.Write(filepath.Join(path, manifest.FileName), m); err != nil {
		return err
	}

	// A pre-existing workspace marker means the skeleton was scaffolded
	// before; leave it alone even if pieces of it have been removed since.
	if _, err := os.Stat(filepath.Join(path, WorkspaceName)); os.IsNotExist(err) {
		if err := initSkeleton(path, reg, m, out); err != nil {
			return err
		}
	} else if err != nil {
		return fmt.Errorf("checking %s: %w", WorkspaceName, err)
	}

	fmt.Fprintf(out, "    %s binary (application) `%s` package\n", styles.Created(), path)
	return nil
}

// initSkeleton writes the workspace marker and the source/test skeleton.
// Every sub-step is independently create-or-skip.
func initSkeleton(path string, reg *plugins.Registry, m manifest.Manifest, out io.Writer) error {
	workspace, err := renderWorkspace(reg, m.Dependencies)
	if err != nil {
		return err
	}
	mainCC, err := renderTemplate("main_cc", templateData(m))
	if err != nil {
		return err
	}
	testCC, err := renderTemplate("test_cc", templateData(m))
	if err != nil {
		return err
	}

	if err := ensureFile(out, filepath.Join(path, WorkspaceName), workspace); err != nil {
		return err
	}

	if err := ensureDir(out, filepath.Join(path, "src")); err != nil {
		return err
	}
	if err := ensureFile(out, filepath.Join(path, "src", "main.cc"), mainCC); err != nil {
		return err
	}
	if err := ensureDir(out, filepath.Join(path, "test")); err != nil {
		return err
	}
	if err := ensureFile(out, filepath.Join(path, "test", "hello_test.cc"), testCC); err != nil {
		return err
	}

	lock, err := lockfile.Render(lockfile.New(lockEntries(reg, m.Dependencies)))
	if err != nil {
		return err
	}
	return ensureFile(out, filepath.Join(path, lockfile.FileName), lock)
}

// renderStubs renders the per-directory build stubs and placeholder sources
// for a fresh package.
func renderStubs(m manifest.Manifest) (map[string]string, error) {
	data := templateData(m)
	files := map[string]string{
		".bazelrc":           "bazelrc",
		"src/BUILD":          "src_build",
		"src/main.cc":        "main_cc",
		"test/BUILD":         "test_build",
		"test/hello_test.cc": "test_cc",
	}

	stubs := make(map[string]string, len(files))
	for rel, tmpl := range files {
		content, err := renderTemplate(tmpl, data)
		if err != nil {
			return nil, err
		}
		stubs[rel] = content
	}
	return stubs, nil
}

func templateData(m manifest.Manifest) Data {
	return Data{
		Name:    m.Package.Name,
		Version: m.Package.Version,
		Edition: m.Package.Edition,
	}
}

func writeFile(path, content string) error {
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// ensureDir creates a directory if it doesn't exist.
func ensureDir(w io.Writer, path string) error {
	if info, err := os.Stat(path); err == nil {
		if info.IsDir() {
			fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
			return nil
		}
		return fmt.Errorf("%s exists but is not a directory", path)
	}
	if err := os.MkdirAll(path, 0755); err != nil {
		return fmt.Errorf("creating directory %s: %w", path, err)
	}
	return nil
}

// ensureFile creates a file with content if it doesn't exist.
func ensureFile(w io.Writer, path, content string) error {
	if _, err := os.Stat(path); err == nil {
		fmt.Fprintf(w, "  [SKIP] %s already exists\n", path)
		return nil
	}
	return writeFile(path, content)
}
