package demo

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Store flavors the demo can run against.
const (
	FlavorMemory = "memory"
	FlavorGlobal = "global"
	FlavorFile   = "file"
	FlavorRedis  = "redis"
)

// Config holds the demo's settings, read from the environment.
type Config struct {
	Flavor       string        `env:"TEAFORM_STORE" envDefault:"memory"`
	StateDir     string        `env:"TEAFORM_STATE_DIR" envDefault:"~/.config/teaform-demo"`
	RedisURL     string        `env:"TEAFORM_REDIS_URL" envDefault:"redis://localhost:6379/0"`
	RedisTTL     time.Duration `env:"TEAFORM_REDIS_TTL" envDefault:"0"`
	RedisTimeout time.Duration `env:"TEAFORM_REDIS_TIMEOUT" envDefault:"5s"`
	AutoReset    bool          `env:"TEAFORM_AUTO_RESET" envDefault:"true"`
	MaxFileBytes int64         `env:"TEAFORM_MAX_FILE_BYTES" envDefault:"1048576"`
	LogFile      string        `env:"TEAFORM_LOG_FILE"`
}

// LoadConfig reads configuration from the environment.
func LoadConfig() (Config, error) {
	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return Config{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}

// Validate rejects settings the demo cannot run with.
func (c Config) Validate() error {
	switch c.Flavor {
	case FlavorMemory, FlavorGlobal, FlavorFile, FlavorRedis:
		return nil
	default:
		return fmt.Errorf("unknown store flavor %q", c.Flavor)
	}
}

// Persistent reports whether the configured flavor restores state from
// a backend. Persistent cells keep their restored value on mount; the
// others start from the form's default.
func (c Config) Persistent() bool {
	return c.Flavor == FlavorFile || c.Flavor == FlavorRedis
}
