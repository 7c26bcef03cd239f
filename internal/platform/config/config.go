package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the API server settings.
type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	DBSSL       bool
	JWTSecret   string
	JWTTTL      time.Duration
	RedisURL    string
	RateLimit   int
	LogLevel    string
}

// Load reads .env when present and then the process environment.
func Load() Config {
	// A missing .env is normal outside local development.
	_ = godotenv.Load()

	return Config{
		AppEnv:      getEnv("APP_ENV", "development"),
		Port:        getEnv("PORT", "8000"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		DBSSL:       getEnvBool("DB_SSL", false),
		JWTSecret:   getEnv("JWT_SECRET", "dev-secret"),
		JWTTTL:      getEnvDuration("JWT_TTL", 7*24*time.Hour),
		RedisURL:    getEnv("REDIS_URL", ""),
		RateLimit:   getEnvInt("RATE_LIMIT", 100),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
	}
}

// IsProduction reports whether the server runs with production defaults.
func (c Config) IsProduction() bool { return c.AppEnv == "production" }

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getEnvBool(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return def
	}
	return d
}
