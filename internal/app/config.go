package app

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"techangel/internal/crypto"
)

// Config holds runtime wiring options for building the app.
type Config struct {
	// Listen is the web UI address, e.g. 127.0.0.1:8080.
	Listen string `yaml:"listen"`
	// SS58Format is the network prefix used for EVM -> SS58.
	SS58Format uint16 `yaml:"ss58_format"`
	// Seed fixes the regression dataset; 0 draws a random one per view.
	Seed uint64 `yaml:"seed"`

	ReadyTimeout string `yaml:"ready_timeout"`
	SessionIdle  string `yaml:"session_idle"`

	Log   LogConfig   `yaml:"log"`
	Chart ChartConfig `yaml:"chart"`
}

// LogConfig configures logging.
type LogConfig struct {
	Level  string `yaml:"level"`  // debug, info, warn, error
	Format string `yaml:"format"` // json, console
}

// ChartConfig sizes rendered charts.
type ChartConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Listen:       "127.0.0.1:8080",
		SS58Format:   42,
		ReadyTimeout: "10s",
		SessionIdle:  "30m",
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		Chart: ChartConfig{
			Width:  900,
			Height: 420,
		},
	}
}

// DefaultConfigPath is $HOME/.techangel/config.yaml.
func DefaultConfigPath() string {
	dir, err := os.UserHomeDir()
	if err != nil {
		return "config.yaml"
	}
	return filepath.Join(dir, ".techangel", "config.yaml")
}

// Load loads configuration from a YAML file. A missing file yields defaults.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return nil, fmt.Errorf("failed to read config: %w", err)
		default:
			if err := yaml.Unmarshal(data, cfg); err != nil {
				return nil, fmt.Errorf("failed to parse config: %w", err)
			}
		}
	}

	if err := cfg.applyEnvOverrides(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration as YAML.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}
	return nil
}

// applyEnvOverrides applies environment variable overrides.
func (c *Config) applyEnvOverrides() error {
	if v := os.Getenv("TECHANGEL_LISTEN"); v != "" {
		c.Listen = v
	}
	if v := os.Getenv("TECHANGEL_SS58_FORMAT"); v != "" {
		f, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return fmt.Errorf("TECHANGEL_SS58_FORMAT: %w", err)
		}
		c.SS58Format = uint16(f)
	}
	if v := os.Getenv("TECHANGEL_LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}
	return nil
}

// Validate checks values that would otherwise fail late.
func (c *Config) Validate() error {
	if c.SS58Format > crypto.MaxSS58Format || c.SS58Format == 46 || c.SS58Format == 47 {
		return fmt.Errorf("ss58_format %d: %w", c.SS58Format, crypto.ErrSS58Format)
	}
	if _, err := c.GetReadyTimeout(); err != nil {
		return err
	}
	if _, err := c.GetSessionIdle(); err != nil {
		return err
	}
	if c.Chart.Width < 0 || c.Chart.Height < 0 {
		return fmt.Errorf("chart size must not be negative")
	}
	return nil
}

// GetReadyTimeout bounds how long callers wait for the crypto gate.
func (c *Config) GetReadyTimeout() (time.Duration, error) {
	return parseDuration("ready_timeout", c.ReadyTimeout, 10*time.Second)
}

// GetSessionIdle is how long an unused web session is kept.
func (c *Config) GetSessionIdle() (time.Duration, error) {
	return parseDuration("session_idle", c.SessionIdle, 30*time.Minute)
}

func parseDuration(field, v string, def time.Duration) (time.Duration, error) {
	if v == "" {
		return def, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", field, err)
	}
	if d <= 0 {
		return 0, fmt.Errorf("%s must be positive", field)
	}
	return d, nil
}
