package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log"
	"log/slog"
	"sync"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

const defaultEnvPath = "./configs/.env"

var (
	once     sync.Once
	instance *Config
)

type PostgresConfig struct {
	Address  string `env:"DB_ADDRESS" envDefault:"localhost:5432"`
	Username string `env:"USER" envDefault:"postgres"`
	Password string `env:"PASSWORD"`
	DB       string `env:"DB" envDefault:"habbit"`
	SSLMode  string `env:"SSLMODE" envDefault:"disable"`
}

type Config struct {
	APIAddress      string         `env:"API_ADDRESS" envDefault:":8080"`
	Postgres        PostgresConfig `envPrefix:"POSTGRES_"`
	JWTSecret       string         `env:"JWT_SECRET"`
	JWTTTL          time.Duration  `env:"JWT_TTL" envDefault:"168h"`
	AuthEnabled     bool           `env:"AUTH_ENABLED" envDefault:"false"`
	DefaultUserID   uuid.UUID      `env:"DEFAULT_USER_ID" envDefault:"00000000-0000-0000-0000-000000000001"`
	LogLevel        slog.Level     `env:"LOG_LEVEL" envDefault:"INFO"`
	MigrationsDir   string         `env:"MIGRATIONS_DIR" envDefault:"./migrations"`
	ShutdownTimeout time.Duration  `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// New returns process-wide config loaded from ./configs/.env and the environment
func New() *Config {
	once.Do(func() {
		cfg, err := Load(defaultEnvPath)
		if err != nil {
			log.Fatal("loading config error: ", err)
		}
		instance = cfg
	})
	return instance
}

// Load reads the optional env file at path and parses the environment into Config.
// Variables already set in the environment win over the file.
func Load(path string) (*Config, error) {
	if path != "" {
		if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading env file %s: %w", path, err)
		}
	}
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.AuthEnabled && cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is required when AUTH_ENABLED is set")
	}
	return &cfg, nil
}
