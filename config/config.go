package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	Server   ServerConfig
	Log      LogConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Email    EmailConfig
}

type ServerConfig struct {
	Address         string        `envconfig:"SAVINGS_ADDRESS" default:":8080"`
	ReadTimeout     time.Duration `envconfig:"SAVINGS_READ_TIMEOUT" default:"15s"`
	WriteTimeout    time.Duration `envconfig:"SAVINGS_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout     time.Duration `envconfig:"SAVINGS_IDLE_TIMEOUT" default:"60s"`
	ShutdownTimeout time.Duration `envconfig:"SAVINGS_SHUTDOWN_TIMEOUT" default:"10s"`
	RateLimit       int           `envconfig:"SAVINGS_RATE_LIMIT" default:"5"`
	RateWindow      time.Duration `envconfig:"SAVINGS_RATE_WINDOW" default:"1m"`
}

type LogConfig struct {
	Level  string `envconfig:"SAVINGS_LOG_LEVEL" default:"info"`
	Format string `envconfig:"SAVINGS_LOG_FORMAT" default:"console"`
}

type DatabaseConfig struct {
	// Type is one of "memory", "pgsql" or "sqlite".
	Type string `envconfig:"SAVINGS_DB_TYPE" default:"memory"`
	// DSN is a postgres connection string or a sqlite file path.
	DSN string `envconfig:"SAVINGS_DB_DSN" default:""`
}

type RedisConfig struct {
	Address  string        `envconfig:"SAVINGS_REDIS_ADDRESS" default:""`
	Password string        `envconfig:"SAVINGS_REDIS_PASSWORD" default:""`
	DB       int           `envconfig:"SAVINGS_REDIS_DB" default:"0"`
	TTL      time.Duration `envconfig:"SAVINGS_SUBMISSION_TTL" default:"24h"`
}

type EmailConfig struct {
	APIURL    string        `envconfig:"SAVINGS_EMAIL_API_URL" default:"https://api.resend.com/emails"`
	APIKey    string        `envconfig:"SAVINGS_EMAIL_API_KEY" default:""`
	From      string        `envconfig:"SAVINGS_EMAIL_FROM" default:"Savings Team <hello@example.com>"`
	TeamInbox string        `envconfig:"SAVINGS_EMAIL_TEAM_INBOX" default:""`
	Timeout   time.Duration `envconfig:"SAVINGS_EMAIL_TIMEOUT" default:"10s"`
}

// Load reads an optional .env file and then the process environment.
// A missing .env file is not an error.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	// godotenv never overrides variables already set in the environment.
	_ = godotenv.Load(envFiles...)

	cfg := new(Config)
	if err := envconfig.Process("", cfg); err != nil {
		return nil, fmt.Errorf("processing environment: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	switch c.Database.Type {
	case "memory":
	case "pgsql", "sqlite":
		if c.Database.DSN == "" {
			return fmt.Errorf("SAVINGS_DB_DSN is required for database type %q", c.Database.Type)
		}
	default:
		return fmt.Errorf("unsupported database type %q", c.Database.Type)
	}
	if c.Server.RateLimit <= 0 {
		return fmt.Errorf("SAVINGS_RATE_LIMIT must be positive, got %d", c.Server.RateLimit)
	}
	if c.Server.RateWindow <= 0 {
		return fmt.Errorf("SAVINGS_RATE_WINDOW must be positive, got %s", c.Server.RateWindow)
	}
	return nil
}
