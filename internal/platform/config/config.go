// Package config loads the process configuration from the environment.
package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
	"github.com/joho/godotenv"
)

// Config holds every environment-driven setting. JWT_SECRET is required and
// has no default; everything else falls back to development-friendly values.
type Config struct {
	Port   string `env:"PORT,default=8080"`
	AppEnv string `env:"APP_ENV,default=development"`

	JWTSecret    string        `env:"JWT_SECRET,required"`
	JWTExpiresIn time.Duration `env:"JWT_EXPIRES_IN,default=1h"`

	DBHost     string `env:"DB_HOST,default=localhost"`
	DBPort     string `env:"DB_PORT,default=5432"`
	DBUser     string `env:"DB_USER,default=postgres"`
	DBPassword string `env:"DB_PASSWORD,default="`
	DBName     string `env:"DB_NAME,default=academy"`
	DBSSLMode  string `env:"DB_SSLMODE,default=disable"`

	RedisHost     string `env:"REDIS_HOST,default="`
	RedisPort     string `env:"REDIS_PORT,default=6379"`
	RedisPassword string `env:"REDIS_PASSWORD,default="`

	RunMigrations bool `env:"RUN_MIGRATIONS,default=false"`
}

// Load reads an optional .env file and decodes the environment into a
// Config. It fails when a required variable is missing.
func Load() (*Config, error) {
	// Missing .env is fine; real deployments set the environment directly.
	_ = godotenv.Load()

	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}
	return &cfg, nil
}

// IsDevelopment reports whether verbose error output is enabled.
func (c *Config) IsDevelopment() bool {
	return c.AppEnv != "production"
}

// DSN builds the Postgres connection string.
func (c *Config) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

// RedisAddr returns the Redis address, or the empty string when Redis is not
// configured.
func (c *Config) RedisAddr() string {
	if c.RedisHost == "" {
		return ""
	}
	return c.RedisHost + ":" + c.RedisPort
}
