package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"go.uber.org/zap/zapcore"
	"golang.org/x/text/currency"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Port            int
	Environment     string
	Currency        currency.Unit
	SeedData        bool
	LogLevel        zapcore.Level
	ShutdownTimeout time.Duration
}

func (c Config) IsDevelopment() bool {
	return c.Environment == EnvDevelopment
}

func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func Load() (Config, error) {
	var c Config

	port, err := strconv.Atoi(getEnv("PORT", "3000"))
	if err != nil || port <= 0 || port > 65535 {
		return c, fmt.Errorf("PORT[%s] is not a valid port", os.Getenv("PORT"))
	}

	unit, err := currency.ParseISO(getEnv("CURRENCY", "USD"))
	if err != nil {
		return c, fmt.Errorf("currency.ParseISO[%s]: %w", os.Getenv("CURRENCY"), err)
	}

	seed, err := strconv.ParseBool(getEnv("SEED_DATA", "true"))
	if err != nil {
		return c, fmt.Errorf("SEED_DATA: %w", err)
	}

	level, err := zapcore.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return c, fmt.Errorf("zapcore.ParseLevel: %w", err)
	}

	shutdownTimeout, err := time.ParseDuration(getEnv("SHUTDOWN_TIMEOUT", "10s"))
	if err != nil {
		return c, fmt.Errorf("SHUTDOWN_TIMEOUT: %w", err)
	}

	return Config{
		Port:            port,
		Environment:     getEnv("APP_ENV", EnvDevelopment),
		Currency:        unit,
		SeedData:        seed,
		LogLevel:        level,
		ShutdownTimeout: shutdownTimeout,
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
