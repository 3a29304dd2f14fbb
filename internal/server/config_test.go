package server

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadConfigRequiresSecret(t *testing.T) {
	if _, err := LoadConfig(""); err == nil {
		t.Fatal("expected error when no secret is configured")
	}
}

func TestLoadConfigEnvOverrides(t *testing.T) {
	t.Setenv("MATHP_JWT_SECRET", "env-secret")
	t.Setenv("MATHP_ADDR", ":9999")
	t.Setenv("MATHP_DB", "/tmp/env.db")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatal(err)
	}
	if cfg.JWTSecret != "env-secret" || cfg.Addr != ":9999" || cfg.DatabasePath != "/tmp/env.db" {
		t.Errorf("env overrides not applied: %+v", cfg)
	}
}

func TestLoadConfigYAML(t *testing.T) {
	t.Setenv("MATHP_JWT_SECRET", "")
	t.Setenv("MATHP_ADDR", "")
	t.Setenv("MATHP_DB", "")

	path := filepath.Join(t.TempDir(), "config.yaml")
	raw := []byte("addr: \":7000\"\ndatabase: data.db\njwt_secret: file-secret\nsecure_cookies: true\n")
	if err := os.WriteFile(path, raw, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadConfig(path)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Addr != ":7000" || cfg.DatabasePath != "data.db" || cfg.JWTSecret != "file-secret" {
		t.Errorf("yaml values not applied: %+v", cfg)
	}
	if !cfg.SecureCookies {
		t.Error("secure_cookies not applied")
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := LoadConfig("/does/not/exist.yaml"); err == nil {
		t.Fatal("expected error for missing file")
	}
}
