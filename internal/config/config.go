package config

import (
	"time"

	"github.com/joho/godotenv"

	"task-service/internal/infrastructure"
)

type Config struct {
	Addr        string
	DatabaseURL string
	RedisURL    string

	// Login throttle: LoginRateLimit attempts per LoginRateWindow, keyed
	// by username.
	LoginRateWindow time.Duration
	LoginRateLimit  int
}

func Load() *Config {
	// Best effort; in deployments the environment is set directly.
	_ = godotenv.Load()

	return &Config{
		Addr:            infrastructure.GetEnvAsString("ADDR", ":8080"),
		DatabaseURL:     infrastructure.GetEnvAsString("DATABASE_URL", ""),
		RedisURL:        infrastructure.GetEnvAsString("REDIS_URL", ""),
		LoginRateWindow: infrastructure.GetEnvAsDuration("RATE_LIMIT_WINDOW", time.Minute),
		LoginRateLimit:  infrastructure.GetEnvAsInt("RATE_LIMIT_MAX_REQUESTS", 20),
	}
}
