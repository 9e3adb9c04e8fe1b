package config

import (
	"os"
	"path/filepath"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, name := range []string{
		"PIXICO_PORT", "PORT", "PIXICO_ENV", "NODE_ENV",
		"PIXICO_DSN", "DATABASE_DSN", "PIXICO_SERVICE_DSN",
		"PIXICO_REDIS_URL", "REDIS_URL", "PIXICO_WEB_URL", "NEXT_PUBLIC_SITE_URL",
		"PIXICO_JWT_SECRET", "JWT_SECRET",
		"PIXICO_AI_TYPE", "PIXICO_AI_API_KEY", "OPENROUTER_API_KEY",
		"PIXICO_AI_ENDPOINT", "PIXICO_AI_MODEL",
		"PIXICO_ALLOWED_ORIGINS",
	} {
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.Port != defaultPort {
		t.Errorf("Port = %d, want %d", cfg.Port, defaultPort)
	}
	if !cfg.IsDev() {
		t.Error("default env should be development")
	}
	if !cfg.UsingPlaceholderDSN {
		t.Error("missing DSN should flag the placeholder")
	}
	if cfg.DSN == "" {
		t.Error("placeholder DSN should be substituted, not empty")
	}
	if cfg.Support.Configured() {
		t.Error("support should not be configured without an API key")
	}
}

func TestLoadYAMLFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	content := []byte("port: 8080\nenv: production\ndsn: user:pass@tcp(db:3306)/pixico\nweb_url: https://pixico.example.com\n")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 8080 {
		t.Errorf("Port = %d, want 8080", cfg.Port)
	}
	if cfg.IsDev() {
		t.Error("env production should not report dev")
	}
	if cfg.UsingPlaceholderDSN {
		t.Error("explicit DSN must not be flagged as placeholder")
	}
	if cfg.WebURL != "https://pixico.example.com" {
		t.Errorf("WebURL = %q", cfg.WebURL)
	}
}

func TestLoadEnvOverridesFile(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("port: 8080\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	t.Setenv("PIXICO_PORT", "9000")
	t.Setenv("PIXICO_AI_API_KEY", "sk-test")
	t.Setenv("PIXICO_ALLOWED_ORIGINS", "pixico.example.com, *.pixico.example.com")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Port != 9000 {
		t.Errorf("Port = %d, want env override 9000", cfg.Port)
	}
	if !cfg.Support.Configured() {
		t.Error("API key from env should configure support")
	}
	if len(cfg.AllowedOrigins) != 2 {
		t.Errorf("AllowedOrigins = %v, want 2 entries", cfg.AllowedOrigins)
	}
}

func TestLoadRejectsInvalidPort(t *testing.T) {
	clearEnv(t)
	t.Setenv("PIXICO_PORT", "70000")

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yml")); err == nil {
		t.Error("Load accepted an out-of-range port")
	}
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	clearEnv(t)

	path := filepath.Join(t.TempDir(), "config.yml")
	if err := os.WriteFile(path, []byte("port: 8080\nnot_a_field: true\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load accepted a config file with unknown fields")
	}
}
