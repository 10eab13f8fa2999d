package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Email provider selection values.
const (
	ProviderSMTP     = "smtp"
	ProviderSendGrid = "sendgrid"
	ProviderStub     = "stub"
)

// Config holds application configuration
type Config struct {
	Port     string
	Env      string
	LogLevel string

	// SMTP relay. SMTPSecure selects implicit TLS (as on :465); when false
	// the client negotiates STARTTLS (as on :587).
	SMTPHost    string
	SMTPPort    int
	SMTPSecure  bool
	SMTPUser    string
	SMTPPass    string
	SMTPTimeout time.Duration

	MailFrom string
	MailTo   string

	EmailProvider     string
	SendGridAPIKey    string
	SendGridFromEmail string
	SendGridFromName  string

	DataDir   string
	LeadsFile string

	PublicDir string

	CORSAllowedOrigins []string
	RateLimitRPS       float64
	RateLimitBurst     int
}

// Load reads configuration from environment variables
func Load() *Config {
	return &Config{
		Port:     getEnv("PORT", "8080"),
		Env:      getEnv("ENV", "development"),
		LogLevel: getEnv("LOG_LEVEL", "info"),

		SMTPHost:    getEnv("SMTP_HOST", ""),
		SMTPPort:    getEnvAsInt("SMTP_PORT", 587),
		SMTPSecure:  getEnvAsBool("SMTP_SECURE", false),
		SMTPUser:    getEnv("SMTP_USER", ""),
		SMTPPass:    getEnv("SMTP_PASS", ""),
		SMTPTimeout: getEnvAsDuration("SMTP_TIMEOUT", 10*time.Second),

		MailFrom: getEnv("SMTP_FROM", ""),
		MailTo:   getEnv("SMTP_TO", ""),

		EmailProvider:     strings.ToLower(strings.TrimSpace(getEnv("EMAIL_PROVIDER", ProviderSMTP))),
		SendGridAPIKey:    getEnv("SENDGRID_API_KEY", ""),
		SendGridFromEmail: getEnv("SENDGRID_FROM_EMAIL", ""),
		SendGridFromName:  getEnv("SENDGRID_FROM_NAME", "Bide Digitala"),

		DataDir:   getEnv("DATA_DIR", "./data"),
		LeadsFile: getEnv("LEADS_FILE", "leads.jsonl"),

		PublicDir: getEnv("PUBLIC_DIR", ""),

		CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS"),
		RateLimitRPS:       getEnvAsFloat("RATE_LIMIT_RPS", 2),
		RateLimitBurst:     getEnvAsInt("RATE_LIMIT_BURST", 5),
	}
}

// LeadsPath returns the full path of the append-only lead log.
func (c *Config) LeadsPath() string {
	return filepath.Join(c.DataDir, c.LeadsFile)
}

// Warnings reports incomplete mail configuration. The process still starts;
// submissions fail at send time instead (the lead log keeps working).
func (c *Config) Warnings() []string {
	var warnings []string
	if c.EmailProvider == ProviderSMTP && c.SMTPHost == "" {
		warnings = append(warnings, "SMTP_HOST is not set; outbound mail will fail")
	}
	if c.EmailProvider == ProviderSendGrid && c.SendGridAPIKey == "" {
		warnings = append(warnings, "SENDGRID_API_KEY is not set; outbound mail will fail")
	}
	if c.MailFrom == "" {
		warnings = append(warnings, "SMTP_FROM is not set; outbound mail will fail")
	}
	if c.MailTo == "" {
		warnings = append(warnings, "SMTP_TO is not set; outbound mail will fail")
	}
	return warnings
}

// Validate rejects provider values outside the known set.
func (c *Config) Validate() error {
	switch c.EmailProvider {
	case ProviderSMTP, ProviderSendGrid, ProviderStub:
		return nil
	default:
		return fmt.Errorf("config: unknown EMAIL_PROVIDER %q", c.EmailProvider)
	}
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvAsInt retrieves an environment variable as an integer or returns a default value
func getEnvAsInt(key string, defaultValue int) int {
	valueStr := getEnv(key, "")
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

// getEnvAsBool retrieves an environment variable as a boolean or returns a default value
func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsFloat(key string, defaultValue float64) float64 {
	valueStr := getEnv(key, "")
	if value, err := strconv.ParseFloat(valueStr, 64); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsDuration(key string, defaultValue time.Duration) time.Duration {
	valueStr := getEnv(key, "")
	if valueStr == "" {
		return defaultValue
	}
	if value, err := time.ParseDuration(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string) []string {
	raw := getEnv(key, "")
	if raw == "" {
		return nil
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
