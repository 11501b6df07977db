package config

import (
	"fmt"
	"time"

	env "github.com/caarlos0/env/v11"
)

// Server captures the configuration shared by every variant binary.
type Server struct {
	Addr            string        `env:"USERARCH_ADDR" envDefault:":8080"`
	AppEnv          string        `env:"APP_ENV" envDefault:"production"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load builds a Server config from environment variables so main stays lean.
func Load() (Server, error) {
	cfg, err := env.ParseAs[Server]()
	if err != nil {
		return Server{}, fmt.Errorf("config.Load: %w", err)
	}
	return cfg, nil
}
