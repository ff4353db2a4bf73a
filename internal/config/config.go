package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultHTTPAddr       = ":8080"
	defaultJWTTTL         = "24h"
	defaultSessionMinutes = 90
	defaultStepMinutes    = 15
)

type Config struct {
	AppEnv      string
	HTTPAddr    string
	DatabaseURL string
	JWTSecret   string
	JWTTTL      time.Duration

	// SessionMinutes is the fixed length of every booking; StepMinutes is the
	// granularity at which candidate slot starts are generated within a block.
	SessionMinutes int
	StepMinutes    int

	CORSOrigins []string
}

func Load() (*Config, error) {
	if err := godotenv.Load(".env"); err == nil {
		log.Println("loaded configuration from .env file")
	}

	cfg := &Config{
		AppEnv:      strings.ToLower(getEnv("APP_ENV", "development")),
		HTTPAddr:    getEnv("HTTP_ADDR", defaultHTTPAddr),
		DatabaseURL: os.Getenv("DATABASE_URL"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
	}

	if cfg.DatabaseURL == "" {
		return nil, fmt.Errorf("DATABASE_URL is required but not set")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required but not set")
	}

	ttl, err := time.ParseDuration(getEnv("JWT_TTL", defaultJWTTTL))
	if err != nil {
		return nil, fmt.Errorf("parse JWT_TTL: %w", err)
	}
	cfg.JWTTTL = ttl

	cfg.SessionMinutes, err = intEnv("SESSION_MINUTES", defaultSessionMinutes)
	if err != nil {
		return nil, err
	}
	cfg.StepMinutes, err = intEnv("SLOT_STEP_MINUTES", defaultStepMinutes)
	if err != nil {
		return nil, err
	}
	if cfg.SessionMinutes <= 0 || cfg.StepMinutes <= 0 {
		return nil, fmt.Errorf("SESSION_MINUTES and SLOT_STEP_MINUTES must be positive")
	}

	if raw := os.Getenv("CORS_ALLOWED_ORIGINS"); raw != "" {
		for _, o := range strings.Split(raw, ",") {
			if o = strings.TrimSpace(o); o != "" {
				cfg.CORSOrigins = append(cfg.CORSOrigins, o)
			}
		}
	}

	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func intEnv(key string, fallback int) (int, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return fallback, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	return v, nil
}
