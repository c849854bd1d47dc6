package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// Config holds the settings for both binaries. The client and the dev
// backend read the same environment, each picking the section it needs.
type Config struct {
	Env       string `env:"ENV,        default=development"`
	LogLevel  string `env:"LOG_LEVEL,  default=info"`
	LogPretty bool   `env:"LOG_PRETTY, default=false"`

	Client ClientConfig
	Server ServerConfig
}

// ClientConfig configures the terminal client.
type ClientConfig struct {
	// APIBaseURL is the banking backend the gateway talks to.
	APIBaseURL string `env:"NEOBANK_API_URL, default=http://localhost:3000"`
	// SessionFile is the persisted session slot. Empty means a default
	// location under the user config directory.
	SessionFile string        `env:"NEOBANK_SESSION_FILE"`
	HTTPTimeout time.Duration `env:"NEOBANK_HTTP_TIMEOUT, default=10s"`
}

// ServerConfig configures the dev backend.
type ServerConfig struct {
	Port        string        `env:"PORT,           default=3000"`
	JWTSecret   string        `env:"JWT_SECRET,     default=dev-secret"`
	TokenTTL    time.Duration `env:"TOKEN_TTL,      default=24h"`
	SignupBonus float64       `env:"SIGNUP_BONUS,   default=500"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=neobank"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}
