package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Port            string
	WebhookURL      string // external spreadsheet webhook; empty = unconfigured
	AdminSecret     string // plaintext shared secret (demo mode)
	AdminSecretHash string // bcrypt hash; takes precedence over AdminSecret
	CatalogSource   string // static | remote
	DBDSN           string // sqlite file for the local submission journal
	LogFile         string
}

func Load() Config {
	// .env is optional; real env vars win either way.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	source := strings.ToLower(os.Getenv("CATALOG_SOURCE"))
	if source != "remote" {
		source = "static"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = "playgear.db"
	}
	logFile := os.Getenv("LOG_FILE")
	if logFile == "" {
		logFile = "./playgear.log"
	}

	cfg := Config{
		Port:            port,
		WebhookURL:      strings.TrimSpace(os.Getenv("WEBHOOK_URL")),
		AdminSecret:     os.Getenv("ADMIN_SECRET"),
		AdminSecretHash: os.Getenv("ADMIN_SECRET_HASH"),
		CatalogSource:   source,
		DBDSN:           dsn,
		LogFile:         logFile,
	}
	log.Printf("[config] PORT=%s WEBHOOK_URL=%s CATALOG_SOURCE=%s DB_DSN=%s LOG_FILE=%s ADMIN_SECRET=%s",
		cfg.Port, cfg.WebhookURL, cfg.CatalogSource, cfg.DBDSN, cfg.LogFile, mask(cfg.AdminSecret))
	return cfg
}

func mask(s string) string {
	if s == "" {
		return "(unset)"
	}
	return "****"
}
