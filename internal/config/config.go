package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	Port          string
	DBDSN         string
	LogFile       string
	GeminiAPIKey  string
	GeminiModel   string
	AdminEmail    string
	AdminPassword string
}

func Load() Config {
	// Optional .env in the project root; env vars win.
	_ = godotenv.Load()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	dsn := os.Getenv("DB_DSN")
	if dsn == "" {
		dsn = ":memory:" // nothing persists across restarts
	}
	logFile := os.Getenv("LOG_FILE")
	model := os.Getenv("GEMINI_MODEL")
	if model == "" {
		model = "gemini-2.5-flash"
	}
	adminEmail := os.Getenv("ADMIN_EMAIL")
	if adminEmail == "" {
		adminEmail = "admin@wealth.com"
	}
	adminPass := os.Getenv("ADMIN_PASSWORD")
	if adminPass == "" {
		adminPass = "Wealth@dm1n!"
	}

	cfg := Config{
		Port:          port,
		DBDSN:         dsn,
		LogFile:       logFile,
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		GeminiModel:   model,
		AdminEmail:    adminEmail,
		AdminPassword: adminPass,
	}
	log.Printf("[config] PORT=%s DB_DSN=%s GEMINI_MODEL=%s", cfg.Port, cfg.DBDSN, cfg.GeminiModel)
	return cfg
}
