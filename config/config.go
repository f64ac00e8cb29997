package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	Env           string // "release"/"production" means production
	AllowedOrigin string
	DBUrl         string // empty => persistence disabled
	// Mail transport
	MailProvider string // "smtp" (default) or "resend"
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	ResendAPIKey string
	MailFrom     string
	// Where operator notices go; defaults to the mail account itself
	ContactEmailTo string
	// Admin bearer secret
	AdminToken string
	// Redis/Upstash Configuration (optional; rate limiting falls back to in-memory)
	RedisURL      string
	RedisPassword string
	// Rate Limiting Configuration
	GlobalRateLimitWindowSeconds     int
	GlobalRateLimitThreshold         int
	SubmissionRateLimitWindowSeconds int
	SubmissionRateLimitThreshold     int
}

func LoadConfig() (*Config, error) {
	// Only effective locally; ignored in production when the file is absent
	_ = godotenv.Load()

	cfg := &Config{
		Port:          getEnv("PORT", "8080"),
		Env:           getEnv("APP_ENV", getEnv("GIN_MODE", "debug")),
		AllowedOrigin: getEnv("ALLOWED_ORIGIN", "http://localhost:3000"),
		DBUrl:         getEnv("DATABASE_URL", ""),
		// Mail transport
		MailProvider:   getEnv("MAIL_PROVIDER", "smtp"),
		SMTPHost:       getEnv("SMTP_HOST", "smtp-relay.brevo.com"),
		SMTPPort:       getEnv("SMTP_PORT", "587"),
		SMTPUsername:   getEnv("SMTP_USERNAME", ""),
		SMTPPassword:   getEnv("SMTP_PASSWORD", ""),
		ResendAPIKey:   getEnv("RESEND_API_KEY", ""),
		MailFrom:       getEnv("MAIL_FROM", ""),
		ContactEmailTo: getEnv("CONTACT_EMAIL_TO", ""),
		AdminToken:     getEnv("ADMIN_TOKEN", ""),
		// Redis
		RedisURL:      getEnv("REDIS_URL", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		// Rate Limiting Configuration (with sensible defaults)
		GlobalRateLimitWindowSeconds:     getEnvInt("RATE_LIMIT_GLOBAL_WINDOW_SECONDS", 900),      // 15 minute window
		GlobalRateLimitThreshold:         getEnvInt("RATE_LIMIT_GLOBAL_THRESHOLD", 100),           // 100 requests per window
		SubmissionRateLimitWindowSeconds: getEnvInt("RATE_LIMIT_SUBMISSION_WINDOW_SECONDS", 3600), // 60 minute window
		SubmissionRateLimitThreshold:     getEnvInt("RATE_LIMIT_SUBMISSION_THRESHOLD", 5),         // 5 submissions per window
	}

	if cfg.MailFrom == "" {
		cfg.MailFrom = cfg.SMTPUsername
	}
	// Operator notices default to the mail account itself
	if cfg.ContactEmailTo == "" {
		cfg.ContactEmailTo = cfg.MailFrom
	}

	// Basic validation to avoid confusing failures later
	if cfg.DBUrl == "" {
		log.Println("WARNING: DATABASE_URL is missing. Submissions will not be persisted.")
	}
	if cfg.RedisURL == "" {
		log.Println("WARNING: REDIS_URL not configured. Rate limiting will use in-memory fallback.")
	}
	if cfg.AdminToken == "" {
		log.Println("WARNING: ADMIN_TOKEN not configured. Admin endpoints will reject all requests.")
	}

	return cfg, nil
}

// IsProduction reports whether internal error detail must be withheld from clients.
func (c *Config) IsProduction() bool {
	return c.Env == "release" || c.Env == "production"
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
