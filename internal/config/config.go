// Package config reads the engine's process configuration from a .env file
// and the environment.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config is the resolved process configuration.
type Config struct {
	// Production controls the bind interface: production binds all
	// interfaces, development binds loopback only.
	Production bool

	// Port is the TCP port a serving wrapper should listen on.
	Port string

	// AssetRoot is the directory holding the template size-variant
	// subdirectories.
	AssetRoot string
}

// Load reads .env (if present) and the process environment. Unset values
// fall back to development defaults; an unrecognized NODE_ENV is an error
// rather than a guess.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      envOr("IMAGE_API_PORT", "8080"),
		AssetRoot: envOr("ASSET_ROOT", "assets/images"),
	}

	switch env := os.Getenv("NODE_ENV"); env {
	case "", "development":
		cfg.Production = false
	case "production":
		cfg.Production = true
	default:
		return nil, fmt.Errorf("NODE_ENV must be \"development\" or \"production\", got %q", env)
	}

	return cfg, nil
}

// ServerAddr returns the address a serving wrapper should bind.
func (c *Config) ServerAddr() string {
	if c.Production {
		return "0.0.0.0:" + c.Port
	}
	return "127.0.0.1:" + c.Port
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
