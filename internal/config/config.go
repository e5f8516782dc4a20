package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/buddy-build/buddy/internal/branding"
	"github.com/spf13/viper"
)

const (
	fileName = "config"
	fileType = "yaml"

	// KeyBazelBinary names the launcher binary resolved on the search path.
	KeyBazelBinary = "bazel.binary"
	// KeyVerbose enables debug logging without the --verbose flag.
	KeyVerbose = "verbose"

	defaultBazelBinary = "bazelisk"
)

// Dir returns the path to the Buddy config directory (~/.buddy/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.buddy/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()
	// Dotted keys need an explicit binding to be reachable from the
	// environment.
	_ = viper.BindEnv(KeyBazelBinary, branding.EnvVar("BAZEL_BINARY"))
	_ = viper.BindEnv(KeyVerbose, branding.EnvVar("VERBOSE"))
	viper.SetDefault(KeyBazelBinary, defaultBazelBinary)
	viper.SetDefault(KeyVerbose, false)

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// BazelBinary returns the configured launcher binary name (default "bazelisk").
func BazelBinary() string {
	return viper.GetString(KeyBazelBinary)
}

// Verbose reports whether debug logging is enabled via config or environment.
func Verbose() bool {
	return viper.GetBool(KeyVerbose)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()

	// Create the file if it doesn't exist.
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}

	return nil
}
