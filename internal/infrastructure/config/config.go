package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string `env:"PORT,      default=8080"`
	Env      string `env:"ENV,       default=development"`
	LogLevel string `env:"LOG_LEVEL, default=info"`

	// JWTSecret signs every issued token; the process refuses to start
	// without one outside development.
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=24h"`

	// AdminDomain is the trusted email domain: accounts registered under it
	// are created with the admin role.
	AdminDomain string `env:"ADMIN_EMAIL_DOMAIN, default=shoplite.com"`

	// UploadDir is where product images are stored and served from.
	UploadDir string `env:"UPLOAD_DIR, default=uploads"`

	SQLite SQLiteConfig
	Redis  RedisConfig
}

type SQLiteConfig struct {
	Path string `env:"SQLITE_PATH, default=shoplite.db"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
