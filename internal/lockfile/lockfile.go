// Package lockfile renders and reads the Buddy.lock file. The lock is a
// write-once artifact produced at scaffolding time; nothing regenerates it
// afterwards.
package lockfile

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// FileName is the lock file name at a package root.
const FileName = "Buddy.lock"

// FormatVersion is the current lock file schema version.
const FormatVersion = 1

const header = `# This file is automatically @generated by Buddy.
# It is not intended for manual editing.
`

// Entry records one resolved dependency.
type Entry struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Source  string `toml:"source"`
}

// File is the full lock file model.
type File struct {
	Version  int     `toml:"version"`
	Packages []Entry `toml:"package"`
}

// New returns a lock file at the current format version.
func New(entries []Entry) File {
	return File{Version: FormatVersion, Packages: entries}
}

// Render produces the on-disk text form: generated-file header, format
// version, then one [[package]] block per entry in the given order.
func Render(f File) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(header)
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(f); err != nil {
		return "", fmt.Errorf("encoding lock file: %w", err)
	}
	return buf.String(), nil
}

// Write renders f to path.
func Write(path string, f File) error {
	text, err := Render(f)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing lock file %s: %w", path, err)
	}
	return nil
}

// Load reads and decodes a lock file.
func Load(path string) (File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("reading lock file %s: %w", path, err)
	}
	var f File
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("parsing lock file %s: %w", path, err)
	}
	return f, nil
}
