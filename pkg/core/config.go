// pkg/core/config.go
package core

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultRuntime is the registry entry installed when none is configured
	DefaultRuntime = "python"

	// DefaultBootstrapURL is the Homebrew install script fetched on macOS
	DefaultBootstrapURL = "https://raw.githubusercontent.com/Homebrew/install/HEAD/install.sh"

	// ConfigEnvVar names the variable consulted when no --config flag is given
	ConfigEnvVar = "PYUP_CONFIG"
)

// Config holds pyup configuration
type Config struct {
	Environment  string `yaml:"environment"`
	Runtime      string `yaml:"runtime"`
	Sudo         bool   `yaml:"sudo"`
	Debug        bool   `yaml:"debug"`
	Registry     string `yaml:"registry"`
	BootstrapURL string `yaml:"bootstrap_url"`
}

// DefaultConfig returns a default configuration
func DefaultConfig() *Config {
	return &Config{
		Environment:  "", // Auto-detect
		Runtime:      DefaultRuntime,
		Sudo:         true,
		Debug:        false,
		BootstrapURL: DefaultBootstrapURL,
	}
}

// DefaultConfigPath returns $HOME/.config/pyup/config.yaml, or "" when the
// home directory cannot be resolved.
func DefaultConfigPath() string {
	if path := os.Getenv(ConfigEnvVar); path != "" {
		return path
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".config", "pyup", "config.yaml")
}

// LoadConfig loads configuration from file. A missing file yields the
// defaults; keys absent from the file keep their default values.
func LoadConfig(path string) (*Config, error) {
	if path == "" {
		path = DefaultConfigPath()
		if path == "" {
			return DefaultConfig(), nil
		}
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return DefaultConfig(), nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if cfg.Runtime == "" {
		cfg.Runtime = DefaultRuntime
	}
	if cfg.BootstrapURL == "" {
		cfg.BootstrapURL = DefaultBootstrapURL
	}

	return cfg, nil
}
