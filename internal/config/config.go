package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Port            int
	MLServiceURL    string
	APIPrefix       string
	UpstreamTimeout time.Duration
	RequestTimeout  time.Duration
	RedisURL        string
	CacheTTL        time.Duration
	AllowedOrigins  []string
	LogLevel        string
	LogFormat       string
	SlowRequest     time.Duration
	ShutdownTimeout time.Duration
}

// Load configuration from env
func Load() (*Config, error) {
	cfg := &Config{
		Port:            getEnvInt("PORT", 5000),
		MLServiceURL:    strings.TrimRight(getEnv("ML_SERVICE_URL", "http://ml-service:8000"), "/"),
		APIPrefix:       getEnv("API_PREFIX", "/api"),
		UpstreamTimeout: getEnvDuration("UPSTREAM_TIMEOUT", 0),
		RequestTimeout:  getEnvDuration("REQUEST_TIMEOUT", 0),
		RedisURL:        getEnv("REDIS_URL", ""),
		CacheTTL:        getEnvDuration("CACHE_TTL", 10*time.Minute),
		AllowedOrigins:  getEnvCSV("CORS_ALLOWED_ORIGINS", []string{"*"}),
		LogLevel:        strings.ToLower(getEnv("LOG_LEVEL", "info")),
		LogFormat:       strings.ToLower(getEnv("LOG_FORMAT", "json")),
		SlowRequest:     getEnvDuration("ACCESS_LOG_SLOW", 500*time.Millisecond),
		ShutdownTimeout: getEnvDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}

	if cfg.Port < 1 || cfg.Port > 65535 {
		return nil, fmt.Errorf("invalid PORT %d: expected 1..65535", cfg.Port)
	}
	if !strings.HasPrefix(cfg.MLServiceURL, "http://") && !strings.HasPrefix(cfg.MLServiceURL, "https://") {
		return nil, fmt.Errorf("invalid ML_SERVICE_URL %q: expected http(s) URL", cfg.MLServiceURL)
	}
	if cfg.APIPrefix != "" && !strings.HasPrefix(cfg.APIPrefix, "/") {
		cfg.APIPrefix = "/" + cfg.APIPrefix
	}
	cfg.APIPrefix = strings.TrimRight(cfg.APIPrefix, "/")

	return cfg, nil
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%d", c.Port)
}

// CacheEnabled reports whether a redis response cache was configured
func (c *Config) CacheEnabled() bool {
	return c.RedisURL != ""
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		d, err := time.ParseDuration(v)
		if err == nil {
			return d
		}
	}
	return fallback
}

func getEnvCSV(key string, fallback []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	out := make([]string, 0)
	for _, p := range strings.Split(v, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return fallback
	}
	return out
}
