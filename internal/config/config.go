package config

import (
	"os"
	"strconv"
	"time"

	infraconfig "frankfurter/internal/infrastructure/config"
)

type Config struct {
	// Common
	Env      string
	LogLevel string
	// API
	Port string
	// Provider
	Provider       string
	Host           string
	UserAgent      string
	Quiet          bool
	RequestTimeout time.Duration
	// Catalog store (redis)
	CatalogStore  string
	RedisAddr     string
	RedisPassword string
	RedisDB       int
	CatalogTTL    time.Duration
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func atoiDef(s string, def int) int {
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func boolDef(s string, def bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return def
	}
	return b
}

func msDef(s string, def time.Duration) time.Duration {
	ms, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return time.Duration(ms) * time.Millisecond
}

// Load reads environment variables and applies defaults.
func Load() Config {
	return Config{
		Env:            getEnv("ENV", "local"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Port:           getEnv("PORT", infraconfig.DefaultHTTPPort),
		Provider:       getEnv("PROVIDER", "frankfurter"),
		Host:           getEnv("FRANKFURTER_HOST", infraconfig.DefaultHost),
		UserAgent:      getEnv("FRANKFURTER_USER_AGENT", infraconfig.DefaultUserAgent),
		Quiet:          boolDef(getEnv("QUIET_MODE", "true"), true),
		RequestTimeout: msDef(os.Getenv("REQUEST_TIMEOUT_MS"), infraconfig.DefaultRequestTimeout),
		CatalogStore:   getEnv("CATALOG_STORE", "none"),
		RedisAddr:      getEnv("REDIS_ADDR", "localhost:6379"),
		RedisPassword:  getEnv("REDIS_PASSWORD", ""),
		RedisDB:        atoiDef(getEnv("REDIS_DB", "0"), 0),
		CatalogTTL:     msDef(os.Getenv("CATALOG_TTL_MS"), infraconfig.DefaultCatalogTTL),
	}
}
