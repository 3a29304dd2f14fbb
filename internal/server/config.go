package server

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config is the server configuration, loaded from YAML with
// environment overrides.
type Config struct {
	Addr          string   `yaml:"addr"`
	DatabasePath  string   `yaml:"database"`
	JWTSecret     string   `yaml:"jwt_secret"`
	SecureCookies bool     `yaml:"secure_cookies"`
	CORSOrigins   []string `yaml:"cors_origins"`
	OptionsPath   string   `yaml:"generator_options"`
}

// DefaultConfig returns the baked-in defaults.
func DefaultConfig() Config {
	return Config{
		Addr:         ":8080",
		DatabasePath: "mathp.db",
	}
}

// LoadConfig resolves configuration in order: defaults, then the YAML
// file at path (if non-empty), then environment variables.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("config: %w", err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return Config{}, fmt.Errorf("config %s: %w", path, err)
		}
	}

	if v := os.Getenv("MATHP_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("MATHP_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("MATHP_JWT_SECRET"); v != "" {
		cfg.JWTSecret = v
	}

	if cfg.JWTSecret == "" {
		return Config{}, errors.New("config: jwt secret not set (jwt_secret or MATHP_JWT_SECRET)")
	}
	return cfg, nil
}
