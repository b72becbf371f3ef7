// Package config loads the TOML configuration of the gqlp tool and service.
package config

import (
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/cockroachdb/errors"
)

// EnvVar names the environment variable holding the config file path.
const EnvVar = "GQLP_CONFIG"

// Config holds the complete application configuration
type Config struct {
	Server ServerConfig `toml:"server"`
	Log    LogConfig    `toml:"log"`
	Output OutputConfig `toml:"output"`
}

// ServerConfig holds the HTTP service settings
type ServerConfig struct {
	Addr            string   `toml:"addr"`
	ReadTimeout     Duration `toml:"read_timeout"`
	WriteTimeout    Duration `toml:"write_timeout"`
	ShutdownTimeout Duration `toml:"shutdown_timeout"`
	MaxBodyBytes    int64    `toml:"max_body_bytes"`
	MaxUploadBytes  int64    `toml:"max_upload_bytes"`
}

// LogConfig holds logging settings
type LogConfig struct {
	Level   string `toml:"level"`
	Format  string `toml:"format"`
	Journal bool   `toml:"journal"`
}

// OutputConfig holds CLI rendering settings
type OutputConfig struct {
	Format string `toml:"format"`
	Color  *bool  `toml:"color"`
}

// Duration wraps time.Duration for TOML parsing
type Duration struct {
	time.Duration
}

// UnmarshalText parses a duration string
func (d *Duration) UnmarshalText(text []byte) error {
	var err error
	d.Duration, err = time.ParseDuration(string(text))
	return err
}

// MarshalText formats the duration as a string
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML file
func Load(path string) (*Config, error) {
	path = os.ExpandEnv(path)

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, errors.Wrapf(err, "load config %s", path)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return &cfg, nil
}

// Parse decodes configuration from TOML text.
func Parse(data string) (*Config, error) {
	var cfg Config
	if _, err := toml.Decode(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "parse config")
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Resolve picks the configuration for a run: the explicit path if set,
// then $GQLP_CONFIG, then ./gqlp.toml and the user config directory.
// Without any file the defaults are used.
func Resolve(path string) (*Config, error) {
	if path != "" {
		return Load(path)
	}
	if env := os.Getenv(EnvVar); env != "" {
		return Load(env)
	}
	candidates := []string{"./gqlp.toml"}
	if dir, err := os.UserConfigDir(); err == nil {
		candidates = append(candidates, filepath.Join(dir, "gqlp", "config.toml"))
	}
	for _, p := range candidates {
		if _, err := os.Stat(p); err == nil {
			return Load(p)
		}
	}
	return Default(), nil
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Server.ReadTimeout.Duration == 0 {
		c.Server.ReadTimeout.Duration = 10 * time.Second
	}
	if c.Server.WriteTimeout.Duration == 0 {
		c.Server.WriteTimeout.Duration = 10 * time.Second
	}
	if c.Server.ShutdownTimeout.Duration == 0 {
		c.Server.ShutdownTimeout.Duration = 5 * time.Second
	}
	if c.Server.MaxBodyBytes == 0 {
		c.Server.MaxBodyBytes = 1 << 20
	}
	if c.Server.MaxUploadBytes == 0 {
		c.Server.MaxUploadBytes = 32 << 20
	}

	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}

	if c.Output.Format == "" {
		c.Output.Format = "text"
	}
	if c.Output.Color == nil {
		color := true
		c.Output.Color = &color
	}
}

// Validate checks values that defaults cannot repair.
func (c *Config) Validate() error {
	switch c.Log.Level {
	case "debug", "info", "warn", "error":
	default:
		return errors.Newf("log.level: unknown level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Newf("log.format: unknown format %q", c.Log.Format)
	}
	switch c.Output.Format {
	case "text", "json", "yaml":
	default:
		return errors.Newf("output.format: unknown format %q", c.Output.Format)
	}
	if c.Server.MaxBodyBytes < 0 {
		return errors.Newf("server.max_body_bytes: must be positive, got %d", c.Server.MaxBodyBytes)
	}
	if c.Server.MaxUploadBytes < 0 {
		return errors.Newf("server.max_upload_bytes: must be positive, got %d", c.Server.MaxUploadBytes)
	}
	if c.Server.ReadTimeout.Duration < 0 || c.Server.WriteTimeout.Duration < 0 || c.Server.ShutdownTimeout.Duration < 0 {
		return errors.New("server: timeouts must not be negative")
	}
	return nil
}

// ColorEnabled reports whether text output should be styled.
func (c *Config) ColorEnabled() bool {
	return c.Output.Color == nil || *c.Output.Color
}
