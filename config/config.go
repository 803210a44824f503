package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"time"

	"github.com/joho/godotenv"
	"github.com/sethvargo/go-envconfig"
)

type (
	APP struct {
		Name      string        `env:"SERVICE_NAME, default=marketplace-api"`
		Host      string        `env:"SERVICE_HOST"`
		Port      string        `env:"SERVICE_PORT, default=8080"`
		Env       string        `env:"SERVICE_ENV, default=development"`
		JWTSecret string        `env:"SERVICE_JWT_SECRET, required"`
		TokenTTL  time.Duration `env:"SERVICE_TOKEN_TTL, default=1h"`
	}
	DB struct {
		User     string `env:"POSTGRES_USER"`
		Password string `env:"POSTGRES_PASSWORD"`
		Name     string `env:"POSTGRES_DB"`
		Host     string `env:"POSTGRES_HOST"`
		Port     string `env:"POSTGRES_PORT, default=5432"`
		SSLMode  string `env:"POSTGRES_SSLMODE, default=disable"`
		Migrate  bool   `env:"POSTGRES_MIGRATE, default=true"`
	}
	S3 struct {
		Region        string `env:"S3_REGION, default=eu-central-1"`
		BucketUploads string `env:"S3_BUCKET_UPLOADS, default=marketplace-uploads"`
		Endpoint      string `env:"S3_ENDPOINT"`
	}
	MQ struct {
		User         string `env:"RABBITMQ_USER"`
		Password     string `env:"RABBITMQ_PASSWORD"`
		Vhost        string `env:"RABBITMQ_VHOST"`
		Host         string `env:"RABBITMQ_HOST"`
		AmqpPort     string `env:"RABBITMQ_AMQP_PORT, default=5672"`
		Exchange     string `env:"RABBITMQ_EXCHANGE, default=marketplace.events"`
		ExchangeType string `env:"RABBITMQ_EXCHANGE_TYPE, default=topic"`
		QueueName    string `env:"RABBITMQ_QUEUE_NAME, default=marketplace.events.tail"`
	}

	Config struct {
		App APP
		DB  DB
		S3  S3
		MQ  MQ
	}
)

// Load reads an optional .env file and then the process environment.
func Load(ctx context.Context) (Config, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load .env: %w", err)
	}

	return LoadWith(ctx, envconfig.OsLookuper())
}

func LoadWith(ctx context.Context, l envconfig.Lookuper) (Config, error) {
	var cfg Config
	if err := envconfig.ProcessWith(ctx, &envconfig.Config{
		Target:   &cfg,
		Lookuper: l,
	}); err != nil {
		return Config{}, fmt.Errorf("process env: %w", err)
	}

	return cfg, nil
}

// LoadMQ reads only the broker settings, for tools that never touch the API
// secrets or the database.
func LoadMQ(ctx context.Context) (MQ, error) {
	if err := godotenv.Load(".env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return MQ{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg MQ
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return MQ{}, fmt.Errorf("process env: %w", err)
	}

	return cfg, nil
}

func (c Config) DBDSN() (string, error) {
	if c.DB.User == "" || c.DB.Name == "" || c.DB.Host == "" || c.DB.Port == "" {
		return "", fmt.Errorf("incomplete DB config")
	}
	return fmt.Sprintf(
		"postgres://%s@%s:%s/%s?sslmode=%s",
		url.UserPassword(c.DB.User, c.DB.Password).String(),
		c.DB.Host,
		c.DB.Port,
		c.DB.Name,
		c.DB.SSLMode,
	), nil
}

// MQEnabled reports whether domain events should be published at all.
func (c Config) MQEnabled() bool { return c.MQ.Host != "" }

func (c Config) AMQPDSN() (string, error) {
	if c.MQ.User == "" || c.MQ.Host == "" || c.MQ.AmqpPort == "" {
		return "", fmt.Errorf("invalid MQ config: user, host and amqp port are required")
	}

	return fmt.Sprintf(
		"%s://%s@%s:%s/%s",
		"amqp",
		url.UserPassword(c.MQ.User, c.MQ.Password).String(),
		c.MQ.Host,
		c.MQ.AmqpPort,
		url.PathEscape(c.MQ.Vhost),
	), nil
}
