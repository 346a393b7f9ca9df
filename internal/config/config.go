package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config holds the runtime settings for the server and the breach oracle.
// Values come from the environment, optionally seeded from a .env file.
type Config struct {
	ServerAddr     string
	HIBPBaseURL    string
	HIBPTimeout    time.Duration
	RedisAddr      string // empty disables the range cache
	RedisCacheTTL  time.Duration
	MetricsLogPath string
	Debug          bool
}

func Load() Config {
	// A missing .env file is fine; the environment still applies.
	_ = godotenv.Load()

	return Config{
		ServerAddr:     getEnv("PWCHECK_ADDR", ":8080"),
		HIBPBaseURL:    getEnv("PWCHECK_HIBP_URL", ""),
		HIBPTimeout:    getDuration("PWCHECK_HIBP_TIMEOUT", 5*time.Second),
		RedisAddr:      getEnv("PWCHECK_REDIS_ADDR", ""),
		RedisCacheTTL:  getDuration("PWCHECK_CACHE_TTL", 24*time.Hour),
		MetricsLogPath: getEnv("PWCHECK_METRICS_LOG", "password_metrics.log"),
		Debug:          getEnv("PWCHECK_DEBUG", "") == "true",
	}
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}
