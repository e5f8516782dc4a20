// Package config manages user-level settings stored at ~/.buddy/config.yaml.
// It provides functions to load, read, and write configuration keys such as
// the name of the Bazel launcher binary resolved on the search path.
package config
