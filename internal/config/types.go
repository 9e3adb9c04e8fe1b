package config

import "strings"

// AppConfig holds runtime startup configuration. Values come from the YAML
// config file, overlaid by environment variables (see Load).
type AppConfig struct {
	Port int    `yaml:"port"`
	Env  string `yaml:"env"` // "development" | "production"

	// DSN is the anonymous-scope MySQL DSN used for public reads.
	// ServiceDSN is the elevated DSN used by administrative paths; when empty,
	// admin paths fall back to the anonymous handle (reduced capability).
	DSN        string `yaml:"dsn"`
	ServiceDSN string `yaml:"service_dsn"`

	RedisURL string `yaml:"redis_url"`

	// WebURL is the public base URL used when generating absolute links
	// (sitemap entries, uploaded image URLs).
	WebURL string `yaml:"web_url"`

	AllowedOrigins []string `yaml:"allowed_origins"`
	JWTSecret      string   `yaml:"jwt_secret"`

	Support SupportConfig `yaml:"support"`
	Storage StorageConfig `yaml:"storage"`

	// UsingPlaceholderDSN is set when no database credential was supplied and a
	// placeholder was substituted so the process can still start.
	UsingPlaceholderDSN bool `yaml:"-"`
}

// SupportConfig configures the support-chat relay provider.
type SupportConfig struct {
	// Type is one of "openai", "openrouter", "openai-compatible", "anthropic".
	Type     string `yaml:"type"`
	APIKey   string `yaml:"api_key"`
	Endpoint string `yaml:"endpoint"`
	Model    string `yaml:"model"`
}

// Configured reports whether the relay has a usable credential.
func (s SupportConfig) Configured() bool { return strings.TrimSpace(s.APIKey) != "" }

// StorageConfig configures the S3-compatible bucket used for admin image
// uploads. All fields empty means uploads are disabled.
type StorageConfig struct {
	Endpoint  string `yaml:"endpoint"`
	Region    string `yaml:"region"`
	Bucket    string `yaml:"bucket"`
	AccessKey string `yaml:"access_key"`
	SecretKey string `yaml:"secret_key"`
	// PublicBaseURL is prepended to object keys to form public URLs; defaults
	// to endpoint/bucket when empty.
	PublicBaseURL string `yaml:"public_base_url"`
}

func (s StorageConfig) Configured() bool {
	return s.Bucket != "" && s.AccessKey != "" && s.SecretKey != ""
}

// IsDev reports whether the app runs in development mode.
func (c *AppConfig) IsDev() bool {
	return strings.EqualFold(strings.TrimSpace(c.Env), "development") || strings.EqualFold(strings.TrimSpace(c.Env), "dev")
}
