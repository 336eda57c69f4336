package config

import (
	"fmt"
	"os"
	"time"
)

type Config struct {
	DBUrl      string
	SecretKey  string
	ServerPort string

	// RedisAddr selects the redis session store when non-empty; the
	// in-process store is used otherwise.
	RedisAddr     string
	RedisPassword string

	SessionTTL time.Duration
}

func Load() *Config {
	return &Config{
		DBUrl:         getEnv("DATABASE_URL", "clinic.db"),
		SecretKey:     getEnv("SECRET_KEY", "changeme"),
		ServerPort:    getEnv("SERVER_PORT", "8080"),
		RedisAddr:     getEnv("REDIS_ADDR", ""),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
		SessionTTL:    getDuration("SESSION_TTL", 24*time.Hour),
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
