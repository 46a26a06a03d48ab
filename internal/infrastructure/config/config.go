package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v9"
)

const (
	StorageDynamoDB = "dynamodb"
	StoragePostgres = "postgres"
	StorageSQLite   = "sqlite"
)

// Config is the process configuration read from the environment. Optional
// collaborators (Redis, SMTP, sheet, Telegram) are disabled when their
// settings are left empty.
type Config struct {
	Port          int    `env:"PORT" envDefault:"8080"`
	GinMode       string `env:"GIN_MODE" envDefault:"debug"`
	LogLevel      string `env:"LOG_LEVEL" envDefault:"info"`
	PublicBaseURL string `env:"PUBLIC_BASE_URL"`

	CatalogFile         string  `env:"CATALOG_FILE"`
	PaintingRatePerSqft float64 `env:"PAINTING_RATE_PER_SQFT" envDefault:"0"`

	StorageBackend string `env:"STORAGE_BACKEND" envDefault:"dynamodb"`
	DatabaseDSN    string `env:"DATABASE_DSN"`

	AWSRegion          string `env:"AWS_REGION" envDefault:"us-east-1"`
	AWSAccessKeyID     string `env:"AWS_ACCESS_KEY_ID" envDefault:"local"`
	AWSSecretAccessKey string `env:"AWS_SECRET_ACCESS_KEY" envDefault:"local"`
	DynamoDBEndpoint   string `env:"DYNAMODB_ENDPOINT"`
	FormsTable         string `env:"FORMS_TABLE" envDefault:"forms"`
	QuotationsTable    string `env:"QUOTATIONS_TABLE" envDefault:"quotations"`

	RedisAddr        string        `env:"REDIS_ADDR"`
	RedisPassword    string        `env:"REDIS_PASSWORD"`
	RedisDB          int           `env:"REDIS_DB" envDefault:"0"`
	CustomOptionsTTL time.Duration `env:"CUSTOM_OPTIONS_TTL" envDefault:"24h"`

	SMTPHost     string `env:"SMTP_HOST"`
	SMTPPort     int    `env:"SMTP_PORT" envDefault:"587"`
	SMTPUsername string `env:"SMTP_USERNAME"`
	SMTPPassword string `env:"SMTP_PASSWORD"`
	SMTPFrom     string `env:"SMTP_FROM"`

	SheetFile string `env:"SHEET_FILE"`
	SheetName string `env:"SHEET_NAME" envDefault:"Warsto Quotation"`

	TelegramToken     string `env:"TELEGRAM_TOKEN"`
	TelegramChannelID int64  `env:"TELEGRAM_CHANNEL_ID"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) Validate() error {
	c.StorageBackend = strings.ToLower(strings.TrimSpace(c.StorageBackend))
	switch c.StorageBackend {
	case StorageDynamoDB:
	case StoragePostgres, StorageSQLite:
		if c.DatabaseDSN == "" {
			return fmt.Errorf("DATABASE_DSN is required for storage backend %q", c.StorageBackend)
		}
	default:
		return fmt.Errorf("unsupported STORAGE_BACKEND %q", c.StorageBackend)
	}
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("invalid PORT %d", c.Port)
	}
	if c.PaintingRatePerSqft < 0 {
		return fmt.Errorf("PAINTING_RATE_PER_SQFT must not be negative")
	}
	return nil
}

func (c *Config) RedisEnabled() bool { return c.RedisAddr != "" }

func (c *Config) SMTPEnabled() bool { return c.SMTPHost != "" && c.SMTPFrom != "" }

func (c *Config) SheetEnabled() bool { return c.SheetFile != "" }

func (c *Config) TelegramEnabled() bool { return c.TelegramToken != "" && c.TelegramChannelID != 0 }
