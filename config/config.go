package config

import (
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Config struct {
	Server ServerConfig
	Store  StoreConfig
	App    AppConfig
}

type ServerConfig struct {
	Port string
}

type StoreConfig struct {
	// Backend selects the item store: memory, redis or postgres.
	Backend     string
	RedisAddr   string
	DatabaseURL string
}

type AppConfig struct {
	Environment  string
	LogLevel     string
	Version      string
	AllowOrigins []string
}

func Load() (*Config, error) {
	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Store: StoreConfig{
			Backend:     getEnv("STORE_BACKEND", "memory"),
			RedisAddr:   getEnv("REDIS_ADDR", "localhost:6379"),
			DatabaseURL: getEnv("DATABASE_URL", ""),
		},
		App: AppConfig{
			Environment:  getEnv("APP_ENV", "development"),
			LogLevel:     getEnv("LOG_LEVEL", "info"),
			Version:      getEnv("APP_VERSION", "1.0.0"),
			AllowOrigins: splitList(getEnv("CORS_ALLOW_ORIGINS", "*")),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Store.Backend {
	case "memory":
	case "redis":
		if c.Store.RedisAddr == "" {
			return fmt.Errorf("REDIS_ADDR is required for the redis backend")
		}
	case "postgres":
		if c.Store.DatabaseURL == "" {
			return fmt.Errorf("DATABASE_URL is required for the postgres backend")
		}
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func splitList(value string) []string {
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
