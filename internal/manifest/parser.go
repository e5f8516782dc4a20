package manifest

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// ParseError reports a descriptor file that exists but cannot be decoded.
// A missing descriptor is not a ParseError; Load degrades to a zero-value
// manifest in that case.
type ParseError struct {
	Path string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parsing manifest %s: %v", e.Path, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Load reads and decodes the descriptor at path. A missing file yields a
// zero-value Manifest and no error, so build/run/test keep working before
// the descriptor has been created. A present-but-malformed file yields a
// *ParseError and must abort the invoking command.
func Load(path string) (Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Manifest{}, nil
		}
		return Manifest{}, fmt.Errorf("reading manifest %s: %w", path, err)
	}

	var m Manifest
	if err := toml.Unmarshal(data, &m); err != nil {
		return Manifest{}, &ParseError{Path: path, Err: err}
	}
	return m, nil
}

// readFile reads the contents of a file at the given path.
func readFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading file %s: %w", path, err)
	}
	return data, nil
}
