package config

import (
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all runtime configuration.
type Config struct {
	// Addr is the listen address of the HTTP server.
	Addr string

	// DatabaseURL is either a postgres DSN (postgres:// or postgresql://)
	// or a sqlite file path.
	DatabaseURL string

	// UploadDir is the directory file blobs are stored under.
	UploadDir string

	// AllowedOrigins are the frontend origins permitted by CORS.
	AllowedOrigins []string

	LogLevel slog.Level
}

// Load reads configuration from the environment, after merging in a .env
// file if one exists next to the process.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		Addr:           getEnv("BONSAI_ADDR", ":8000"),
		DatabaseURL:    getEnv("DATABASE_URL", "data/bonsai.db"),
		UploadDir:      getEnv("BONSAI_UPLOAD_DIR", "./uploads"),
		AllowedOrigins: splitList(getEnv("BONSAI_ALLOWED_ORIGINS", "http://localhost:3000,http://127.0.0.1:3000")),
		LogLevel:       parseLogLevel(getEnv("BONSAI_LOG_LEVEL", "INFO")),
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}

func parseLogLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
