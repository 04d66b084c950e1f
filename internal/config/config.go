package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// Config holds the settings for the tally HTTP service.
type Config struct {
	Addr         string
	LogLevel     logrus.Level
	LogFormat    string
	MaxBodyBytes int64
}

// Load reads configuration from the environment, after merging an
// optional .env file from the working directory.
func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("loading .env: %w", err)
	}

	level, err := logrus.ParseLevel(getEnv("TALLY_LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("parsing TALLY_LOG_LEVEL: %w", err)
	}

	format := getEnv("TALLY_LOG_FORMAT", "json")
	if format != "json" && format != "text" {
		return nil, fmt.Errorf("TALLY_LOG_FORMAT must be json or text, got %q", format)
	}

	maxBody, err := strconv.ParseInt(getEnv("TALLY_MAX_BODY_BYTES", "1048576"), 10, 64)
	if err != nil {
		return nil, fmt.Errorf("parsing TALLY_MAX_BODY_BYTES: %w", err)
	}
	if maxBody <= 0 {
		return nil, fmt.Errorf("TALLY_MAX_BODY_BYTES must be positive, got %d", maxBody)
	}

	return &Config{
		Addr:         getEnv("TALLY_ADDR", ":8080"),
		LogLevel:     level,
		LogFormat:    format,
		MaxBodyBytes: maxBody,
	}, nil
}

// NewLogger builds a logrus logger from the config.
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetLevel(c.LogLevel)
	if c.LogFormat == "text" {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}
	return logger
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
