package manifest

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestLoad(t *testing.T) {
	t.Run("valid descriptor", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		writeTestFile(t, path, `[package]
name = "demo"
version = "0.1.0"
edition = "2023"

[dependencies]
google-test = "1.13.0"
`)

		m, err := Load(path)
		if err != nil {
			t.Fatalf("Load() error = %v", err)
		}
		if m.Package.Name != "demo" {
			t.Errorf("Package.Name = %q, want %q", m.Package.Name, "demo")
		}
		if m.Package.Edition != "2023" {
			t.Errorf("Package.Edition = %q, want %q", m.Package.Edition, "2023")
		}
		if got := m.Dependencies["google-test"]; got != "1.13.0" {
			t.Errorf("Dependencies[google-test] = %q, want %q", got, "1.13.0")
		}
	})

	t.Run("missing file yields zero manifest", func(t *testing.T) {
		m, err := Load(filepath.Join(t.TempDir(), FileName))
		if err != nil {
			t.Fatalf("Load() error = %v, want nil for missing file", err)
		}
		if m.Package.Name != "" || len(m.Dependencies) != 0 {
			t.Errorf("Load() = %+v, want zero manifest", m)
		}
	})

	t.Run("malformed file yields ParseError", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), FileName)
		writeTestFile(t, path, "[package\nname = \"broken\"\n")

		_, err := Load(path)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("Load() error = %v, want *ParseError", err)
		}
		if parseErr.Path != path {
			t.Errorf("ParseError.Path = %q, want %q", parseErr.Path, path)
		}
	})
}

func TestRenderRoundTrip(t *testing.T) {
	m := Default("demo")

	text, err := Render(m)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	path := filepath.Join(t.TempDir(), FileName)
	writeTestFile(t, path, text)

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if got.Package != m.Package {
		t.Errorf("round-trip Package = %+v, want %+v", got.Package, m.Package)
	}
	if len(got.Dependencies) != len(m.Dependencies) {
		t.Fatalf("round-trip has %d dependencies, want %d", len(got.Dependencies), len(m.Dependencies))
	}
	for name, pin := range m.Dependencies {
		if got.Dependencies[name] != pin {
			t.Errorf("round-trip Dependencies[%s] = %q, want %q", name, got.Dependencies[name], pin)
		}
	}
}

func TestWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), FileName)
	if err := Write(path, Default("demo")); err != nil {
		t.Fatalf("Write() error = %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if m.Package.Name != "demo" {
		t.Errorf("Package.Name = %q, want %q", m.Package.Name, "demo")
	}
	if m.Package.Version != DefaultVersion {
		t.Errorf("Package.Version = %q, want %q", m.Package.Version, DefaultVersion)
	}
}

func writeTestFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing %s: %v", path, err)
	}
}
