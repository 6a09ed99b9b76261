// Package config handles configuration loading for the auth service.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds all configuration for the auth service.
type Config struct {
	Port           string        `env:"PORT" envDefault:"6001"`
	GinMode        string        `env:"GIN_MODE" envDefault:"debug"`
	MongoURI       string        `env:"MONGO_URI" envDefault:"mongodb://localhost:27017"`
	MongoDatabase  string        `env:"MONGO_DATABASE" envDefault:"wp_assign"`
	JWTSecret      string        `env:"SECRET_KEY,required,notEmpty"`
	TokenTTL       time.Duration `env:"TOKEN_TTL" envDefault:"1h"`
	BcryptCost     int           `env:"BCRYPT_COST" envDefault:"10"`
	AllowedOrigins []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*"`
}

// Load reads configuration from environment variables, consulting a local
// .env file when one is present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("error getting env configs: %w", err)
	}
	return cfg, nil
}
