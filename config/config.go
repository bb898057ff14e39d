package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	AppEnv      string // "production" or "development"
	FrontendURL string
	// SMTP Configuration (Brevo)
	SMTPHost               string
	SMTPPort               int
	SMTPUsername           string
	SMTPPassword           string
	SMTPFromEmail          string // Verified sender email (different from SMTP login)
	SMTPFromName           string
	ContactEmailTo         string
	SMTPPoolSize           int
	SMTPSendTimeoutSeconds int
	// Admin / operational
	AdminAPIKey string // Shared key guarding the email self-test endpoint
	// Frontend presentation config
	MapboxPublicToken string
	// Uploads
	UploadDir string
	// Redis/Upstash Configuration
	UpstashRedisURL      string
	UpstashRedisPassword string
	// Rate Limiting Configuration
	RateLimitWindowSeconds   int
	RateLimitFormThreshold   int
	RateLimitGlobalThreshold int
}

func LoadConfig() (*Config, error) {
	// .env is only effective locally; ignored in production when absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		AppEnv:      getEnv("APP_ENV", "development"),
		FrontendURL: strings.TrimRight(getEnv("FRONTEND_URL", "http://localhost:3000"), "/"),
		// SMTP Configuration
		SMTPHost:               getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:               getEnvInt("SMTP_PORT", 587),
		SMTPUsername:           getEnv("SMTP_USERNAME", ""),
		SMTPPassword:           getEnv("SMTP_PASSWORD", ""),
		SMTPFromEmail:          getEnv("SMTP_FROM_EMAIL", "noreply@meridianadvisory.com"), // Must be verified in Brevo
		SMTPFromName:           getEnv("SMTP_FROM_NAME", "Meridian Advisory"),
		ContactEmailTo:         getEnv("CONTACT_EMAIL_TO", "inquiries@meridianadvisory.com"),
		SMTPPoolSize:           getEnvInt("SMTP_POOL_SIZE", 4),
		SMTPSendTimeoutSeconds: getEnvInt("SMTP_SEND_TIMEOUT_SECONDS", 30),
		// Admin / operational
		AdminAPIKey: getEnv("ADMIN_API_KEY", ""),
		// Frontend presentation config
		MapboxPublicToken: getEnv("MAPBOX_PUBLIC_TOKEN", ""),
		// Uploads
		UploadDir: getEnv("UPLOAD_DIR", os.TempDir()),
		// Redis/Upstash Configuration
		UpstashRedisURL:      getEnv("UPSTASH_REDIS_URL", ""),
		UpstashRedisPassword: getEnv("UPSTASH_REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		RateLimitWindowSeconds:   getEnvInt("RATE_LIMIT_WINDOW_SECONDS", 60),    // 1 minute window
		RateLimitFormThreshold:   getEnvInt("RATE_LIMIT_FORM_THRESHOLD", 5),     // 5 form submissions per window
		RateLimitGlobalThreshold: getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100), // 100 requests per window
	}

	// Warn early; the mailer degrades to log-only when SMTP is incomplete
	if !cfg.IsEmailConfigured() {
		log.Println("WARNING: SMTP configuration incomplete. Form submissions will be logged, not emailed.")
	}

	if cfg.UpstashRedisURL == "" {
		log.Println("WARNING: UPSTASH_REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}

	return cfg, nil
}

// IsProduction reports whether the process runs in production mode.
func (c *Config) IsProduction() bool {
	return c.AppEnv == "production"
}

// IsEmailConfigured reports whether the SMTP transport settings are complete.
// Configuration is all-or-nothing: a partially filled transport counts as absent.
func (c *Config) IsEmailConfigured() bool {
	return c.SMTPHost != "" && c.SMTPUsername != "" && c.SMTPPassword != "" && c.SMTPFromEmail != ""
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
