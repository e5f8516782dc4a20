// Package branding provides compile-time identity values for the CLI.
//
// Forkers edit branding.yaml in this package, and Go's //go:embed bakes it
// into the binary at build time.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

// Parsed branding values, loaded once on first access.
var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName         string `yaml:"cli_name"`
	DisplayName     string `yaml:"display_name"`
	Description     string `yaml:"description"`
	HomeDir         string `yaml:"home_dir"`
	EnvPrefix       string `yaml:"env_prefix"`
	BazeliskDocsURL string `yaml:"bazelisk_docs_url"`
}

func load() {
	once.Do(func() {
		// Set hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:         "buddy",
			DisplayName:     "Buddy",
			Description:     "Package manager front end for Bazel C++ projects",
			HomeDir:         ".buddy",
			EnvPrefix:       "BUDDY",
			BazeliskDocsURL: "https://docs.bazel.build/versions/5.4.1/install-bazelisk.html",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "buddy").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "Buddy").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".buddy").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "BUDDY").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// BazeliskDocsURL returns the installation instructions URL shown when the
// bazelisk binary cannot be found on the search path.
func BazeliskDocsURL() string { load(); return defaults.BazeliskDocsURL }

// EnvVar returns a fully qualified env var name, e.g., EnvVar("HOME") → "BUDDY_HOME".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}
