// Package config loads service settings from the environment.
package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the service
type Config struct {
	DatabaseURL    string
	ResetDBOnStart bool
	ServerAddr     string
	LogLevel       string
	Debug          bool
	Redis          RedisConfig
}

// RedisConfig holds Redis connection settings. Empty Addr disables Redis.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// Enabled reports whether a Redis address was configured
func (r RedisConfig) Enabled() bool {
	return r.Addr != ""
}

// loadDotEnv 測試時可覆寫，避免讀到本機 .env
var loadDotEnv = func() { _ = godotenv.Load() }

// Load reads configuration from environment variables, after an optional .env file
func Load() (*Config, error) {
	loadDotEnv()

	cfg := &Config{}

	cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("環境變數 DATABASE_URL 未設定")
	}

	var err error
	if cfg.ResetDBOnStart, err = boolEnv("DB_RESET_ON_START", false); err != nil {
		return nil, err
	}

	cfg.ServerAddr = stringEnv("SERVER_ADDR", ":8080")
	cfg.LogLevel = stringEnv("LOG_LEVEL", "info")

	if cfg.Debug, err = boolEnv("APP_DEBUG", false); err != nil {
		return nil, err
	}

	cfg.Redis.Addr = os.Getenv("REDIS_ADDR")
	cfg.Redis.Password = os.Getenv("REDIS_PASSWORD")
	if v := os.Getenv("REDIS_DB"); v != "" {
		idx, err := strconv.Atoi(v)
		if err != nil || idx < 0 {
			return nil, fmt.Errorf("無效的 REDIS_DB: %q", v)
		}
		cfg.Redis.DB = idx
	}

	return cfg, nil
}

func stringEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func boolEnv(key string, def bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return def, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("無效的 %s: %w", key, err)
	}
	return b, nil
}
