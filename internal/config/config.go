package config

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/vango-dev/hashnav/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "hashnav.json"

	// DefaultPort is the default development server port.
	DefaultPort = 3000

	// DefaultHost is the default development server host.
	DefaultHost = "localhost"

	// DefaultAppDir is the default built app directory.
	DefaultAppDir = "dist"
)

// Config represents the complete hashnav.json configuration.
type Config struct {
	// Name is the project name.
	Name string `json:"name,omitempty"`

	// Version is the project version.
	Version string `json:"version,omitempty"`

	// App is the directory holding the built wasm app (index.html,
	// app.wasm, wasm_exec.js, assets).
	App string `json:"app,omitempty"`

	// Dev contains development server configuration.
	Dev DevConfig `json:"dev,omitempty"`

	// Deploy contains deployment configuration.
	Deploy DeployConfig `json:"deploy,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// DevConfig contains development server configuration.
type DevConfig struct {
	// Port is the dev server port.
	Port int `json:"port,omitempty"`

	// Host is the dev server bind host.
	Host string `json:"host,omitempty"`

	// HotReload enables the live-reload websocket.
	HotReload *bool `json:"hotReload,omitempty"`

	// Metrics enables the /metrics endpoint.
	Metrics bool `json:"metrics,omitempty"`

	// Ignore are extra watcher ignore patterns (globs).
	Ignore []string `json:"ignore,omitempty"`
}

// DeployConfig contains deployment configuration.
type DeployConfig struct {
	// Bucket is the S3 bucket uploads go to.
	Bucket string `json:"bucket,omitempty"`

	// Prefix is the key prefix inside the bucket.
	Prefix string `json:"prefix,omitempty"`

	// Region is the AWS region. Empty defers to the SDK's resolution.
	Region string `json:"region,omitempty"`
}

// Default returns a configuration with all defaults applied.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load reads and validates a hashnav.json file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("H001").Wrap(err)
		}
		return nil, errors.New("H002").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("H002").Wrap(err)
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFromWorkingDir loads hashnav.json from the current directory,
// falling back to defaults when the file does not exist.
func LoadFromWorkingDir() (*Config, error) {
	cfg, err := Load(ConfigFileName)
	if err != nil {
		if ce, ok := errors.AsCLIError(err); ok && ce.Code == "H001" {
			return Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}

// Dir returns the directory the config was loaded from, "." when the
// config came from defaults.
func (c *Config) Dir() string {
	if c.configPath == "" {
		return "."
	}
	return filepath.Dir(c.configPath)
}

// AppDir returns the app directory resolved against the config dir.
func (c *Config) AppDir() string {
	if filepath.IsAbs(c.App) {
		return c.App
	}
	return filepath.Join(c.Dir(), c.App)
}

// HotReload reports whether live reload is enabled (default true).
func (c *Config) HotReload() bool {
	if c.Dev.HotReload == nil {
		return true
	}
	return *c.Dev.HotReload
}

// Validate checks configuration values.
func (c *Config) Validate() error {
	if c.Dev.Port < 0 || c.Dev.Port > 65535 {
		return errors.New("H003").WithDetail("dev.port %d is out of range", c.Dev.Port)
	}
	return nil
}

func (c *Config) applyDefaults() {
	if c.App == "" {
		c.App = DefaultAppDir
	}
	if c.Dev.Port == 0 {
		c.Dev.Port = DefaultPort
	}
	if c.Dev.Host == "" {
		c.Dev.Host = DefaultHost
	}
}
