package config

import (
	"os"
	"strconv"
	"strings"
)

// Config is centralized process configuration.
// Keep infra values here and pass typed config into builders; nothing reads
// the environment past startup.
type Config struct {
	ServiceName string
	HTTPPort    string
	PostgresDSN string

	PageSize    int
	MaxPageSize int
}

func Load() (Config, error) {
	service := os.Getenv("SERVICE_NAME")
	if service == "" {
		service = "yatube-api"
	}

	port := os.Getenv("HTTP_PORT")
	if port == "" {
		port = "8080"
	}

	return Config{
		ServiceName: service,
		HTTPPort:    port,
		PostgresDSN: os.Getenv("POSTGRES_DSN"),
		PageSize:    envInt("PAGE_SIZE", 10),
		MaxPageSize: envInt("MAX_PAGE_SIZE", 100),
	}, nil
}

func envInt(name string, fallback int) int {
	raw := strings.TrimSpace(os.Getenv(name))
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value <= 0 {
		return fallback
	}
	return value
}
