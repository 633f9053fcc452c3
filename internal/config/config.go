package config

import (
	"errors"
	"os"
	"strconv"
)

// Config is loaded once at process start and injected everywhere; handlers
// and usecases never touch the environment directly.
type Config struct {
	Port        string
	DatabaseURL string

	ResendAPIKey string
	MailFrom     string

	SMTPHost string
	SMTPPort int
	SMTPUser string
	SMTPPass string

	Env string // "production" hides debug details in responses
}

func Load() (Config, error) {
	cfg := Config{
		Port:         getString("PORT", "8080"),
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		ResendAPIKey: os.Getenv("RESEND_API_KEY"),
		MailFrom:     getString("MAIL_FROM", "Mike from The Obsidian Co <mike@theobsidianco.com>"),
		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getInt("SMTP_PORT", 587),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPass:     os.Getenv("SMTP_PASS"),
		Env:          getString("APP_ENV", "development"),
	}

	if cfg.DatabaseURL == "" {
		return Config{}, errors.New("DATABASE_URL is required")
	}

	return cfg, nil
}

func (c Config) Production() bool {
	return c.Env == "production"
}

// EmailConfigured reports whether any delivery backend is available. When
// false the dispatcher degrades to a no-op instead of failing requests.
func (c Config) EmailConfigured() bool {
	return c.ResendAPIKey != "" || c.SMTPHost != ""
}

func getString(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
