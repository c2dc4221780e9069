package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

type Config struct {
	DBHost     string `env:"DB_HOST,required,notEmpty"`
	DBUser     string `env:"DB_USER"`
	DBPassword string `env:"DB_PASSWORD"`
	DBName     string `env:"DB_NAME" envDefault:"pizzaria"`
	DBPort     string `env:"DB_PORT" envDefault:"5432"`
	DBSSLMode  string `env:"DB_SSLMODE" envDefault:"disable"`
	AppPort    string `env:"APP_PORT" envDefault:"3000"`
	AppEnv     string `env:"APP_ENV" envDefault:"development"`

	// AuditDir holds ativos.csv and historico.csv.
	AuditDir     string        `env:"AUDIT_DIR" envDefault:"csv"`
	InvoiceDelay time.Duration `env:"INVOICE_DELAY" envDefault:"1s"`

	InternalSecretKey string   `env:"INTERNAL_SECRET_KEY"`
	CORSOrigins       []string `env:"CORS_ORIGINS" envDefault:"*" envSeparator:","`
}

// ClientConfig configures the order client and its offline cache.
type ClientConfig struct {
	APIURL     string        `env:"API_URL" envDefault:"http://localhost:3000"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"5s"`
	CachePath  string        `env:"CACHE_PATH" envDefault:"pizzaone_offline.db"`
	AppEnv     string        `env:"APP_ENV" envDefault:"development"`
}

// LoadConfig reads the server configuration from the environment, after
// loading a .env file when one exists.
func LoadConfig() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse server config: %w", err)
	}
	return cfg, nil
}

func LoadClientConfig() (*ClientConfig, error) {
	_ = godotenv.Load()

	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse client config: %w", err)
	}
	return cfg, nil
}
