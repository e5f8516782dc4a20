package manifest

import (
	"bytes"
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Render produces the canonical on-disk text form of a manifest. The
// [package] block comes first, then [dependencies] with keys in sorted
// order. Load(Render(m)) is lossless for all modeled fields.
func Render(m Manifest) (string, error) {
	var buf bytes.Buffer
	enc := toml.NewEncoder(&buf)
	enc.Indent = ""
	if err := enc.Encode(m); err != nil {
		return "", fmt.Errorf("encoding manifest: %w", err)
	}
	return buf.String(), nil
}

// Write renders m and writes it to path, replacing any existing file.
func Write(path string, m Manifest) error {
	text, err := Render(m)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(text), 0644); err != nil {
		return fmt.Errorf("writing manifest %s: %w", path, err)
	}
	return nil
}
