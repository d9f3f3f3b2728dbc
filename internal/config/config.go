package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config holds all configuration for the application
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Resend   ResendConfig   `yaml:"resend"`
	Twilio   TwilioConfig   `yaml:"twilio"`
	Site     SiteConfig     `yaml:"site"`
	Wedding  WeddingConfig  `yaml:"wedding"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port int    `yaml:"port"`
	Host string `yaml:"host"`
}

// GetHost returns the server host, with container detection
func (c ServerConfig) GetHost() string {
	// In a container, listen on all interfaces
	if os.Getenv("ECS_CONTAINER_METADATA_URI") != "" || os.Getenv("AWS_EXECUTION_ENV") != "" {
		return "0.0.0.0"
	}
	// Allow override via environment
	if host := os.Getenv("SERVER_HOST"); host != "" {
		return host
	}
	return c.Host
}

// DatabaseConfig holds the party store connection settings
type DatabaseConfig struct {
	URL string `yaml:"url"`
}

// ResendConfig holds Resend email API configuration
type ResendConfig struct {
	APIKey         string `yaml:"api_key"`
	BaseURL        string `yaml:"base_url"`
	From           string `yaml:"from"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured timeout as a duration
func (c ResendConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Enabled reports whether email sending credentials are present
func (c ResendConfig) Enabled() bool { return c.APIKey != "" }

// TwilioConfig holds Twilio SMS API configuration
type TwilioConfig struct {
	AccountSID     string `yaml:"account_sid"`
	AuthToken      string `yaml:"auth_token"`
	FromNumber     string `yaml:"from_number"`
	BaseURL        string `yaml:"base_url"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

// Timeout returns the configured timeout as a duration
func (c TwilioConfig) Timeout() time.Duration {
	return time.Duration(c.TimeoutSeconds) * time.Second
}

// Enabled reports whether SMS sending credentials are present
func (c TwilioConfig) Enabled() bool {
	return c.AccountSID != "" && c.AuthToken != "" && c.FromNumber != ""
}

// SiteConfig holds the front-door gate and operator access settings
type SiteConfig struct {
	// Password gates the public RSVP routes via the acceptance cookie.
	// Empty means the gate is open (development fallback).
	Password string `yaml:"password"`
	// AdminToken gates the operator-facing notify route.
	AdminToken string `yaml:"admin_token"`
	// RSVPSentinel is the reserved diagnostic lookup value that returns a
	// canned synthetic party without touching the store. Empty disables it.
	RSVPSentinel string `yaml:"rsvp_sentinel"`
	// CookieMaxAge is the acceptance cookie lifetime in seconds.
	CookieMaxAge int `yaml:"cookie_max_age"`
}

// WeddingConfig holds site-wide wedding facts used in templates
type WeddingConfig struct {
	CoupleName string `yaml:"couple_name"`
	WebsiteURL string `yaml:"website_url"`
	Venue      string `yaml:"venue"`
	Date       string `yaml:"date"`
}

// Load reads and parses the configuration file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	// Set defaults
	if cfg.Server.Port == 0 {
		cfg.Server.Port = 8080
	}
	if cfg.Server.Host == "" {
		cfg.Server.Host = "localhost"
	}
	if cfg.Resend.BaseURL == "" {
		cfg.Resend.BaseURL = "https://api.resend.com"
	}
	if cfg.Resend.From == "" {
		cfg.Resend.From = "Yonatan & Saron <wedding@send.theestifanos.com>"
	}
	if cfg.Resend.TimeoutSeconds == 0 {
		cfg.Resend.TimeoutSeconds = 15
	}
	if cfg.Twilio.BaseURL == "" {
		cfg.Twilio.BaseURL = "https://api.twilio.com"
	}
	if cfg.Twilio.TimeoutSeconds == 0 {
		cfg.Twilio.TimeoutSeconds = 15
	}
	if cfg.Site.CookieMaxAge == 0 {
		cfg.Site.CookieMaxAge = 60 * 60 * 24 * 30 // 30 days
	}
	if cfg.Wedding.CoupleName == "" {
		cfg.Wedding.CoupleName = "Yonatan & Saron"
	}
	if cfg.Wedding.WebsiteURL == "" {
		cfg.Wedding.WebsiteURL = "https://theestifanos.com"
	}
	if cfg.Wedding.Date == "" {
		cfg.Wedding.Date = "September 4, 2026"
	}

	return &cfg, nil
}

// LoadFromEnv loads configuration with environment variable overrides.
// It automatically loads a .env file (if present) before reading env vars,
// so secrets can live in .env locally and in real env vars in production.
func LoadFromEnv(path string) (*Config, error) {
	// Load .env file if it exists (no error if missing)
	_ = godotenv.Load()

	cfg, err := Load(path)
	if err != nil {
		return nil, err
	}

	// Override with environment variables if present
	if host := os.Getenv("SERVER_HOST"); host != "" {
		cfg.Server.Host = host
	}
	if dbURL := os.Getenv("DATABASE_URL"); dbURL != "" {
		cfg.Database.URL = dbURL
	}
	if apiKey := os.Getenv("RESEND_API_KEY"); apiKey != "" {
		cfg.Resend.APIKey = apiKey
	}
	if baseURL := os.Getenv("RESEND_BASE_URL"); baseURL != "" {
		cfg.Resend.BaseURL = baseURL
	}
	if from := os.Getenv("RESEND_FROM"); from != "" {
		cfg.Resend.From = from
	}
	if sid := os.Getenv("TWILIO_ACCOUNT_SID"); sid != "" {
		cfg.Twilio.AccountSID = sid
	}
	if token := os.Getenv("TWILIO_AUTH_TOKEN"); token != "" {
		cfg.Twilio.AuthToken = token
	}
	if from := os.Getenv("TWILIO_PHONE_NUMBER"); from != "" {
		cfg.Twilio.FromNumber = from
	}
	if password := os.Getenv("SITE_PASSWORD"); password != "" {
		cfg.Site.Password = password
	}
	if token := os.Getenv("ADMIN_TOKEN"); token != "" {
		cfg.Site.AdminToken = token
	}
	if sentinel := os.Getenv("RSVP_SENTINEL"); sentinel != "" {
		cfg.Site.RSVPSentinel = sentinel
	}

	return cfg, nil
}
