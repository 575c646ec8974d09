package main

import (
	"os"

	"github.com/rs/zerolog/log"
)

// Config holds all configuration for the worker.
type Config struct {
	RedisAddr     string
	RedisPassword string
}

// loadConfig loads configuration from environment variables.
func loadConfig() *Config {
	cfg := &Config{
		RedisAddr:     getEnv("REDIS_HOST", "localhost:6379"),
		RedisPassword: getEnv("REDIS_PASSWORD", ""),
	}

	log.Info().Str("redis", cfg.RedisAddr).Msg("Worker configuration loaded")

	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
