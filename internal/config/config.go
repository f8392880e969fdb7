package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/BurntSushi/toml"

	loopcfg "github.com/tomz197/starshooter/internal/loop/config"
)

// Config is the process configuration for both front ends.
type Config struct {
	Game    loopcfg.Rules `toml:"game"`
	SSH     SSHConfig     `toml:"ssh"`
	Logging LoggingConfig `toml:"logging"`
}

type SSHConfig struct {
	Host            string        `toml:"host"`
	Port            string        `toml:"port"`
	HostKeyPath     string        `toml:"host_key"`
	ShutdownTimeout time.Duration `toml:"shutdown_timeout"`
}

type LoggingConfig struct {
	Level  string `toml:"level"`
	Format string `toml:"format"` // "json" or "console"
	File   string `toml:"file"`   // Empty discards logs in the local game, stderr for SSH
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Game: loopcfg.DefaultRules(),
		SSH: SSHConfig{
			Host:            "::",
			Port:            "2222",
			HostKeyPath:     "/app/keys/host_key",
			ShutdownTimeout: 5 * time.Second,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
	}
}

// Load reads a TOML file over the defaults and applies environment overrides.
// An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := toml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

// applyEnv lets environment variables override file values.
func (c *Config) applyEnv() error {
	c.SSH.Host = GetEnv("SSH_HOST", c.SSH.Host)
	c.SSH.Port = GetEnv("SSH_PORT", c.SSH.Port)
	c.SSH.HostKeyPath = GetEnv("SSH_HOST_KEY", c.SSH.HostKeyPath)
	c.Logging.Level = GetEnv("STARSHOOTER_LOG_LEVEL", c.Logging.Level)

	if seed := GetEnv("STARSHOOTER_SEED", ""); seed != "" {
		n, err := strconv.ParseInt(seed, 10, 64)
		if err != nil {
			return fmt.Errorf("STARSHOOTER_SEED: %w", err)
		}
		c.Game.Seed = n
	}
	return nil
}

// Validate checks the game rules and the front end settings.
func (c *Config) Validate() error {
	var errs []error
	if err := c.Game.Validate(); err != nil {
		errs = append(errs, err)
	}
	if c.SSH.Port == "" {
		errs = append(errs, errors.New("ssh port must be set"))
	}
	if c.SSH.ShutdownTimeout < 0 {
		errs = append(errs, fmt.Errorf("ssh shutdown_timeout must not be negative, got %s", c.SSH.ShutdownTimeout))
	}
	switch c.Logging.Format {
	case "", "json", "console":
	default:
		errs = append(errs, fmt.Errorf("logging format %q: want json or console", c.Logging.Format))
	}
	return errors.Join(errs...)
}

// RNGSeed returns the configured seed, or a time based one when unset.
func (c *Config) RNGSeed() int64 {
	if c.Game.Seed != 0 {
		return c.Game.Seed
	}
	return time.Now().UnixNano()
}
