// internal/config/config.go
//
// Client configuration. Every user gets a ~/.yolked directory holding
// config.yaml, the cached session token, and the flow log. A default
// config.yaml is written on first run so users have something to edit.

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// StateDirName is the directory created under the user's home.
const StateDirName = ".yolked"

const defaultConfigYAML = `# yolked client configuration
version: 1

# Base URL of the yolked profile service.
server_url: http://localhost:8080
`

// Config holds the runtime configuration for the yolked client.
type Config struct {
	Version   int    `yaml:"version"`
	ServerURL string `yaml:"server_url"`

	// StateDir is where config.yaml itself lives, plus the session cache
	// and logs. Not serialized; derived at load time.
	StateDir string `yaml:"-"`
}

// Load reads (or first creates) the config under the given state dir. An
// empty stateDir means ~/.yolked.
func Load(stateDir string) (*Config, error) {
	if stateDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("config: resolve home dir: %w", err)
		}
		stateDir = filepath.Join(home, StateDirName)
	}
	if err := os.MkdirAll(filepath.Join(stateDir, "logs"), 0o755); err != nil {
		return nil, fmt.Errorf("config: ensure state dir: %w", err)
	}

	path := filepath.Join(stateDir, "config.yaml")
	if err := ensureDefaultConfig(path); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config: read %s: %w", path, err)
	}
	cfg := &Config{StateDir: stateDir}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config: parse %s: %w", path, err)
	}
	if cfg.ServerURL == "" {
		cfg.ServerURL = "http://localhost:8080"
	}
	return cfg, nil
}

func ensureDefaultConfig(path string) error {
	_, err := os.Stat(path)
	if err == nil {
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("config: stat %s: %w", path, err)
	}
	if err := os.WriteFile(path, []byte(defaultConfigYAML), 0o644); err != nil {
		return fmt.Errorf("config: write default %s: %w", path, err)
	}
	return nil
}

// SessionPath is where the cached bearer token lives.
func (c *Config) SessionPath() string {
	return filepath.Join(c.StateDir, "session.json")
}

// LogPath is the client flow log.
func (c *Config) LogPath() string {
	return filepath.Join(c.StateDir, "logs", "yolked.log")
}
