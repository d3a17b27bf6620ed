// Package config loads the YAML configuration used by the relaykit CLIs.
package config

import (
	"os"
	"strconv"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"

	"github.com/veridex/relaykit/pkg/logger"
)

// RelayConfig is the client section of the config file.
type RelayConfig struct {
	BaseURL        string `yaml:"base_url"`
	RPS            int    `yaml:"rps"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Config is the full CLI configuration. Credentials never live here; they
// come from the environment (RELAY_EMAIL / RELAY_PASSWORD).
type Config struct {
	Relay RelayConfig   `yaml:"relay"`
	Log   logger.Config `yaml:"log"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{
		Relay: RelayConfig{RPS: 5, TimeoutSeconds: 30},
		Log:   logger.Config{Level: "info"},
	}
}

// Load reads a YAML file over the defaults and then applies environment
// overrides (RELAY_URL, RELAY_RPS).
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, errors.Wrapf(err, "parse config %s", path)
		}
	}

	if v := os.Getenv("RELAY_URL"); v != "" {
		cfg.Relay.BaseURL = v
	}
	if v := os.Getenv("RELAY_RPS"); v != "" {
		rps, err := strconv.Atoi(v)
		if err != nil {
			return nil, errors.Wrapf(err, "RELAY_RPS %q", v)
		}
		cfg.Relay.RPS = rps
	}

	if cfg.Relay.BaseURL == "" {
		return nil, errors.New("relay base URL is not configured (set relay.base_url or RELAY_URL)")
	}
	return cfg, nil
}
