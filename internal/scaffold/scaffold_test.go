package scaffold

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/buddy-build/buddy/internal/lockfile"
	"github.com/buddy-build/buddy/internal/manifest"
	"github.com/buddy-build/buddy/internal/plugins"
)

var placeholderRe = regexp.MustCompile(`\{[a-z_]+\}`)

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

func TestCreateNew(t *testing.T) {
	t.Run("creates full skeleton", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "demo")
		var out bytes.Buffer

		if err := CreateNew(dest, plugins.Default(), &out); err != nil {
			t.Fatalf("CreateNew() error = %v", err)
		}

		for _, rel := range []string{
			WorkspaceName,
			manifest.FileName,
			lockfile.FileName,
			".bazelrc",
			"src/BUILD",
			"src/main.cc",
			"test/BUILD",
			"test/hello_test.cc",
		} {
			if _, err := os.Stat(filepath.Join(dest, rel)); err != nil {
				t.Errorf("missing %s: %v", rel, err)
			}
		}

		if !strings.Contains(out.String(), "`demo` package") {
			t.Errorf("confirmation line = %q, want package name mentioned", out.String())
		}
	})

	t.Run("workspace descriptor is complete", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "demo")
		if err := CreateNew(dest, plugins.Default(), &bytes.Buffer{}); err != nil {
			t.Fatalf("CreateNew() error = %v", err)
		}

		data, err := os.ReadFile(filepath.Join(dest, WorkspaceName))
		if err != nil {
			t.Fatalf("reading workspace file: %v", err)
		}
		text := string(data)

		if !strings.Contains(text, `load("@bazel_tools//tools/build_defs/repo:http.bzl", "http_archive")`) {
			t.Errorf("missing http_archive load:\n%s", text)
		}
		// Both default pins rendered, google-test first.
		gt := strings.Index(text, "com_google_googletest")
		tc := strings.Index(text, "com_grail_bazel_toolchain")
		if gt == -1 || tc == -1 || gt > tc {
			t.Errorf("rules missing or out of order:\n%s", text)
		}
		if leftover := placeholderRe.FindString(text); leftover != "" {
			t.Errorf("workspace contains leftover placeholder %q", leftover)
		}
	})

	t.Run("manifest and lock agree", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "demo")
		if err := CreateNew(dest, plugins.Default(), &bytes.Buffer{}); err != nil {
			t.Fatalf("CreateNew() error = %v", err)
		}

		m, err := manifest.Load(filepath.Join(dest, manifest.FileName))
		if err != nil {
			t.Fatalf("loading manifest: %v", err)
		}
		if m.Package.Name != "demo" {
			t.Errorf("Package.Name = %q, want %q", m.Package.Name, "demo")
		}

		lock, err := lockfile.Load(filepath.Join(dest, lockfile.FileName))
		if err != nil {
			t.Fatalf("loading lock file: %v", err)
		}
		if len(lock.Packages) != len(m.Dependencies) {
			t.Fatalf("lock has %d entries, manifest has %d dependencies", len(lock.Packages), len(m.Dependencies))
		}
		for _, entry := range lock.Packages {
			if m.Dependencies[entry.Name] != entry.Version {
				t.Errorf("lock entry %s@%s disagrees with manifest pin %q",
					entry.Name, entry.Version, m.Dependencies[entry.Name])
			}
			if entry.Source == "" {
				t.Errorf("lock entry %s has no source", entry.Name)
			}
		}
	})

	t.Run("existing destination refused", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "demo")
		if err := os.Mkdir(dest, 0755); err != nil {
			t.Fatal(err)
		}

		err := CreateNew(dest, plugins.Default(), &bytes.Buffer{})
		if !errors.Is(err, ErrDestinationExists) {
			t.Fatalf("CreateNew() error = %v, want ErrDestinationExists", err)
		}

		entries, err := os.ReadDir(dest)
		if err != nil {
			t.Fatal(err)
		}
		if len(entries) != 0 {
			t.Errorf("refused destination was written to: %v", entries)
		}
	})

	t.Run("existing file destination refused", func(t *testing.T) {
		dest := filepath.Join(t.TempDir(), "demo")
		if err := os.WriteFile(dest, []byte("x"), 0644); err != nil {
			t.Fatal(err)
		}
		if err := CreateNew(dest, plugins.Default(), &bytes.Buffer{}); !errors.Is(err, ErrDestinationExists) {
			t.Fatalf("CreateNew() error = %v, want ErrDestinationExists", err)
		}
	})
}

func TestInitInPlace(t *testing.T) {
	t.Run("fresh directory gets full skeleton", func(t *testing.T) {
		chdir(t, t.TempDir())
		var out bytes.Buffer

		if err := InitInPlace("demo", plugins.Default(), &out); err != nil {
			t.Fatalf("InitInPlace() error = %v", err)
		}

		for _, rel := range []string{
			manifest.FileName,
			WorkspaceName,
			"src/main.cc",
			"test/hello_test.cc",
			lockfile.FileName,
		} {
			if _, err := os.Stat(filepath.Join("demo", rel)); err != nil {
				t.Errorf("missing %s: %v", rel, err)
			}
		}
	})

	t.Run("rerun rewrites manifest only", func(t *testing.T) {
		chdir(t, t.TempDir())
		if err := InitInPlace("demo", plugins.Default(), &bytes.Buffer{}); err != nil {
			t.Fatalf("first InitInPlace() error = %v", err)
		}

		mainPath := filepath.Join("demo", "src", "main.cc")
		if err := os.WriteFile(mainPath, []byte("// user edit\n"), 0644); err != nil {
			t.Fatal(err)
		}
		manifestPath := filepath.Join("demo", manifest.FileName)
		if err := os.WriteFile(manifestPath, []byte("[package]\nname = \"edited\"\nversion = \"9.9.9\"\nedition = \"2023\"\n"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := InitInPlace("demo", plugins.Default(), &bytes.Buffer{}); err != nil {
			t.Fatalf("second InitInPlace() error = %v", err)
		}

		data, err := os.ReadFile(mainPath)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "// user edit\n" {
			t.Errorf("src/main.cc was overwritten on rerun")
		}

		m, err := manifest.Load(manifestPath)
		if err != nil {
			t.Fatal(err)
		}
		if m.Package.Name != "demo" || m.Package.Version != manifest.DefaultVersion {
			t.Errorf("manifest not rewritten on rerun: %+v", m.Package)
		}
	})

	t.Run("existing workspace marker suppresses skeleton", func(t *testing.T) {
		chdir(t, t.TempDir())
		if err := os.Mkdir("demo", 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join("demo", WorkspaceName), []byte("# custom\n"), 0644); err != nil {
			t.Fatal(err)
		}

		if err := InitInPlace("demo", plugins.Default(), &bytes.Buffer{}); err != nil {
			t.Fatalf("InitInPlace() error = %v", err)
		}

		data, err := os.ReadFile(filepath.Join("demo", WorkspaceName))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "# custom\n" {
			t.Errorf("pre-existing workspace file was overwritten")
		}
		if _, err := os.Stat(filepath.Join("demo", "src")); !os.IsNotExist(err) {
			t.Errorf("skeleton created despite existing workspace marker")
		}
		if _, err := os.Stat(filepath.Join("demo", manifest.FileName)); err != nil {
			t.Errorf("manifest not written: %v", err)
		}
	})

	t.Run("partial skeleton is completed piecewise", func(t *testing.T) {
		chdir(t, t.TempDir())
		if err := os.MkdirAll(filepath.Join("demo", "src"), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(filepath.Join("demo", "src", "main.cc"), []byte("// mine\n"), 0644); err != nil {
			t.Fatal(err)
		}

		var out bytes.Buffer
		if err := InitInPlace("demo", plugins.Default(), &out); err != nil {
			t.Fatalf("InitInPlace() error = %v", err)
		}

		data, err := os.ReadFile(filepath.Join("demo", "src", "main.cc"))
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "// mine\n" {
			t.Errorf("pre-existing source file was overwritten")
		}
		if _, err := os.Stat(filepath.Join("demo", "test", "hello_test.cc")); err != nil {
			t.Errorf("missing test stub: %v", err)
		}
		if !strings.Contains(out.String(), "[SKIP]") {
			t.Errorf("output = %q, want skip notices for existing pieces", out.String())
		}
	})

	t.Run("refuses inside an existing package", func(t *testing.T) {
		chdir(t, t.TempDir())
		if err := manifest.Write(manifest.FileName, manifest.Default("outer")); err != nil {
			t.Fatal(err)
		}

		err := InitInPlace("demo", plugins.Default(), &bytes.Buffer{})
		if !errors.Is(err, ErrAlreadyAPackage) {
			t.Fatalf("InitInPlace() error = %v, want ErrAlreadyAPackage", err)
		}
		if _, err := os.Stat("demo"); !os.IsNotExist(err) {
			t.Errorf("directory created despite refusal")
		}
	})

	t.Run("package name from absolute path base", func(t *testing.T) {
		chdir(t, t.TempDir())
		if err := os.Mkdir("demo", 0755); err != nil {
			t.Fatal(err)
		}
		chdir(t, "demo")

		if err := InitInPlace(".", plugins.Default(), &bytes.Buffer{}); err != nil {
			t.Fatalf("InitInPlace() error = %v", err)
		}

		m, err := manifest.Load(manifest.FileName)
		if err != nil {
			t.Fatal(err)
		}
		if m.Package.Name != "demo" {
			t.Errorf("Package.Name = %q, want %q", m.Package.Name, "demo")
		}
	})
}
