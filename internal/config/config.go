package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds everything the process needs, loaded once at startup and
// handed read-only to the constructors that need it.
type Config struct {
	Env           string // "development" or "production"
	ListenAddr    string
	DBDriver      string // "sqlite" or "mysql"
	DBDSN         string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	SessionTTL    time.Duration
	CookieName    string
}

// Load reads the optional .env file and the environment into a Config.
func Load() (*Config, error) {
	// A missing .env is fine, the process environment still applies.
	_ = godotenv.Load()

	cfg := &Config{
		Env:           getenv("APP_ENV", "development"),
		ListenAddr:    ":" + getenv("APP_PORT", "8080"),
		DBDriver:      getenv("DB_DRIVER", "sqlite"),
		DBDSN:         getenv("DB_DSN", "file:db.sqlite"),
		RedisAddr:     getenv("REDIS_ADDR", "localhost:6379"),
		RedisPassword: os.Getenv("REDIS_PASSWORD"),
		CookieName:    getenv("SESSION_COOKIE", "blog_session"),
		SessionTTL:    24 * time.Hour,
	}

	if v := os.Getenv("REDIS_DB"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid REDIS_DB %q: %w", v, err)
		}
		cfg.RedisDB = n
	}

	if v := os.Getenv("SESSION_TTL_HOURS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return nil, fmt.Errorf("invalid SESSION_TTL_HOURS %q", v)
		}
		cfg.SessionTTL = time.Duration(n) * time.Hour
	}

	return cfg, nil
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
