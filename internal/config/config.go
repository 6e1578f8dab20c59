package config

import (
	"fmt"
	"net/url"
	"time"

	"github.com/caarlos0/env/v6"
	"golang.org/x/crypto/bcrypt"
)

type Config struct {
	IsTestMode     bool     `env:"TEST_MODE" envDefault:"false"`
	Secret         string   `env:"SECRET,required,notEmpty"`
	PostgresqlURL  string   `env:"POSTGRESQL_URL,required,notEmpty"`
	Port           uint16   `env:"PORT" envDefault:"8080"`
	LogLevel       string   `env:"LOG_LEVEL" envDefault:"info"`
	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"*"`

	BcryptHasherCost                int `env:"BCRYPT_HASHER_COST" envDefault:"10"`
	PasswordResetValidDurationHours int `env:"PASSWORD_RESET_VALID_DURATION_HOURS" envDefault:"24"`

	AwsRegion                     string  `env:"AWS_REGION,required"`
	AwsAccessKey                  string  `env:"AWS_ACCESS_KEY,required"`
	AwsSecretKey                  string  `env:"AWS_SECRET_KEY,required"`
	AwsEmailSender                string  `env:"AWS_EMAIL_SENDER,required"`
	AwsEmailPasswordResetTemplate string  `env:"AWS_EMAIL_PASSWORD_RESET_TEMPLATE,required"`
	AwsEmailPasswordResetBaseUrl  url.URL `env:"AWS_EMAIL_PASSWORD_RESET_BASE_URL,required"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("could not parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.BcryptHasherCost < bcrypt.MinCost || c.BcryptHasherCost > bcrypt.MaxCost {
		return fmt.Errorf(
			"BCRYPT_HASHER_COST must be within [%d, %d], got %d",
			bcrypt.MinCost,
			bcrypt.MaxCost,
			c.BcryptHasherCost,
		)
	}
	if c.PasswordResetValidDurationHours <= 0 {
		return fmt.Errorf(
			"PASSWORD_RESET_VALID_DURATION_HOURS must be positive, got %d",
			c.PasswordResetValidDurationHours,
		)
	}
	return nil
}

func (c *Config) PasswordResetTokenTTL() time.Duration {
	return time.Duration(c.PasswordResetValidDurationHours) * time.Hour
}
