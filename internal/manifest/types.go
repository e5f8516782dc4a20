package manifest

// FileName is the package descriptor file name at a package root.
const FileName = "Buddy.toml"

// Package holds the descriptor's [package] block.
type Package struct {
	Name    string `toml:"name"`
	Version string `toml:"version"`
	Edition string `toml:"edition"`
}

// Manifest is the full package descriptor.
type Manifest struct {
	Package      Package           `toml:"package"`
	Dependencies map[string]string `toml:"dependencies,omitempty"`
}

// Default versions pinned for freshly scaffolded packages.
const (
	DefaultVersion = "0.1.0"
	DefaultEdition = "2023"
)

// Default returns the manifest written for a freshly scaffolded package.
func Default(name string) Manifest {
	return Manifest{
		Package: Package{
			Name:    name,
			Version: DefaultVersion,
			Edition: DefaultEdition,
		},
		Dependencies: map[string]string{
			"bazel-toolchain": "0.8.0",
			"google-test":     "1.13.0",
		},
	}
}
