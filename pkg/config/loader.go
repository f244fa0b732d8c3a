package config

import (
	"errors"
	"fmt"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

var dotenvOnce sync.Once

// Load populates cfg from environment variables based on `env` struct tags.
// On first use it loads a .env file from the working directory if one
// exists; a missing .env is not an error.
//
//	type SessionConfig struct {
//	    CookieName string        `env:"SESSION_COOKIE_NAME" envDefault:"sid"`
//	    TTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
//	}
//
//	var cfg SessionConfig
//	if err := config.Load(&cfg); err != nil { ... }
func Load[T any](cfg *T) error {
	if cfg == nil {
		return ErrNilPointer
	}

	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	if err := env.Parse(cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

// MustLoad is Load for configuration the process cannot start without.
func MustLoad[T any](cfg *T) {
	if err := Load(cfg); err != nil {
		panic(fmt.Sprintf("config: %v", err))
	}
}
