package config

import (
	"bytes"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultConfigPath is used when --config is not provided.
	DefaultConfigPath = "config.yml"
	defaultPort       = 2323
	defaultEnv        = "development"

	// placeholderDSN keeps startup alive when no credential is supplied; the
	// gateway detects it and serves an inert handle instead of connecting.
	placeholderDSN = "pixico:placeholder@tcp(127.0.0.1:3306)/pixico?charset=utf8mb4&parseTime=True&loc=Local"
)

// Load reads the YAML config file (if present), then overlays environment
// variables. A missing config file is not an error: env-only deployments are
// supported, and missing credentials degrade to placeholders rather than
// failing startup.
func Load(configPath string) (*AppConfig, error) {
	// .env is optional; real env vars win over it.
	_ = godotenv.Load()

	cfg := defaultAppConfig()

	path := strings.TrimSpace(configPath)
	if path == "" {
		path = DefaultConfigPath
	}
	if content, err := os.ReadFile(path); err == nil {
		decoder := yaml.NewDecoder(bytes.NewReader(content))
		decoder.KnownFields(true)
		if err := decoder.Decode(&cfg); err != nil {
			return nil, fmt.Errorf("parse config file %q: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config file %q: %w", path, err)
	}

	applyEnvOverrides(&cfg)

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid port %d, expected 1-65535", cfg.Port)
	}

	if strings.TrimSpace(cfg.DSN) == "" {
		cfg.DSN = placeholderDSN
		cfg.UsingPlaceholderDSN = true
	}

	return &cfg, nil
}

func defaultAppConfig() AppConfig {
	return AppConfig{
		Port:     defaultPort,
		Env:      defaultEnv,
		RedisURL: "redis://localhost:6379/0",
		WebURL:   "http://localhost:3000",
		Support: SupportConfig{
			Type:  "openrouter",
			Model: "google/gemini-flash-1.5",
		},
	}
}

func applyEnvOverrides(cfg *AppConfig) {
	if v, ok := envInt("PIXICO_PORT", "PORT"); ok {
		cfg.Port = v
	}
	setEnv(&cfg.Env, "PIXICO_ENV", "NODE_ENV")
	setEnv(&cfg.DSN, "PIXICO_DSN", "DATABASE_DSN")
	setEnv(&cfg.ServiceDSN, "PIXICO_SERVICE_DSN")
	setEnv(&cfg.RedisURL, "PIXICO_REDIS_URL", "REDIS_URL")
	setEnv(&cfg.WebURL, "PIXICO_WEB_URL", "NEXT_PUBLIC_SITE_URL")
	setEnv(&cfg.JWTSecret, "PIXICO_JWT_SECRET", "JWT_SECRET")

	setEnv(&cfg.Support.Type, "PIXICO_AI_TYPE")
	setEnv(&cfg.Support.APIKey, "PIXICO_AI_API_KEY", "OPENROUTER_API_KEY")
	setEnv(&cfg.Support.Endpoint, "PIXICO_AI_ENDPOINT")
	setEnv(&cfg.Support.Model, "PIXICO_AI_MODEL")

	setEnv(&cfg.Storage.Endpoint, "PIXICO_S3_ENDPOINT")
	setEnv(&cfg.Storage.Region, "PIXICO_S3_REGION")
	setEnv(&cfg.Storage.Bucket, "PIXICO_S3_BUCKET")
	setEnv(&cfg.Storage.AccessKey, "PIXICO_S3_ACCESS_KEY")
	setEnv(&cfg.Storage.SecretKey, "PIXICO_S3_SECRET_KEY")
	setEnv(&cfg.Storage.PublicBaseURL, "PIXICO_S3_PUBLIC_URL")

	if v := strings.TrimSpace(os.Getenv("PIXICO_ALLOWED_ORIGINS")); v != "" {
		parts := strings.Split(v, ",")
		origins := make([]string, 0, len(parts))
		for _, p := range parts {
			if p = strings.TrimSpace(p); p != "" {
				origins = append(origins, p)
			}
		}
		cfg.AllowedOrigins = origins
	}
}

// setEnv assigns the first non-empty environment value among names.
func setEnv(dst *string, names ...string) {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			*dst = v
			return
		}
	}
}

func envInt(names ...string) (int, bool) {
	for _, name := range names {
		if v := strings.TrimSpace(os.Getenv(name)); v != "" {
			if n, err := strconv.Atoi(v); err == nil {
				return n, true
			}
		}
	}
	return 0, false
}
