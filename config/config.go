package config

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
)

// Config carries everything the process needs at start. It is built once in
// main and passed down explicitly; nothing reads the environment afterwards.
type Config struct {
	Port        string `envconfig:"PORT" default:"8080"`
	DatabaseURL string `envconfig:"DATABASE_URL"`
	DBHost      string `envconfig:"DB_HOST" default:"localhost"`
	DBPort      string `envconfig:"DB_PORT" default:"5432"`
	DBUser      string `envconfig:"DB_USER"`
	DBPassword  string `envconfig:"DB_PASSWORD"`
	DBName      string `envconfig:"DB_NAME"`

	JWTSecret           string `envconfig:"JWT_SECRET"`
	AdminAPIKey         string `envconfig:"ADMIN_API_KEY"`
	AdminCreationSecret string `envconfig:"ADMIN_CREATION_SECRET_KEY"`

	WebsiteDomain string `envconfig:"WEBSITE_DOMAIN" default:"http://localhost:3000"`

	BrevoAPIKey      string `envconfig:"BREVO_API_KEY"`
	BrevoSenderName  string `envconfig:"BREVO_SENDER_NAME" default:"Beautify"`
	BrevoSenderEmail string `envconfig:"BREVO_SENDER_EMAIL"`

	VietQRClientID    string `envconfig:"VIETQR_CLIENT_ID"`
	VietQRAPIKey      string `envconfig:"VIETQR_API_KEY"`
	BankAccountNumber string `envconfig:"BANK_ACCOUNT_NUMBER"`
	BankAccountName   string `envconfig:"BANK_ACCOUNT_NAME"`
	BankBin           string `envconfig:"BANK_BIN"`
}

// Load reads .env if present, then the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, errors.Wrap(err, "process environment")
	}
	return &cfg, nil
}

// DSN builds the Postgres connection string. DATABASE_URL wins when set.
func (c *Config) DSN() string {
	if c.DatabaseURL != "" {
		return c.DatabaseURL
	}
	return fmt.Sprintf(
		"host=%s user=%s password=%s dbname=%s port=%s sslmode=disable",
		c.DBHost, c.DBUser, c.DBPassword, c.DBName, c.DBPort,
	)
}
