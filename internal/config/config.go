package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

// Config holds application level configuration loaded from environment variables.
type Config struct {
	ServerPort      string        `envconfig:"SERVER_PORT" default:"8080"`
	ShutdownTimeout time.Duration `envconfig:"SHUTDOWN_TIMEOUT" default:"5s"`
	SwaggerHost     string        `envconfig:"SWAGGER_HOST"`
	CORSOrigins     []string      `envconfig:"CORS_ORIGINS" default:"http://localhost:4200"`
	RateLimitRPS    float64       `envconfig:"RATE_LIMIT_RPS" default:"100"`

	Database Database
	Redis    Redis
	Auth     Auth
	Kafka    Kafka

	LogLevel zapcore.Level `envconfig:"LOG_LEVEL" default:"info"`
}

// Database describes the relational store connection.
type Database struct {
	Driver          string        `envconfig:"DB_DRIVER" default:"postgres"`
	DSN             string        `envconfig:"DATABASE_DSN" default:"host=localhost user=postgres password=postgres dbname=integraservicios port=5432 sslmode=disable"`
	MaxOpenConns    int           `envconfig:"DB_MAX_OPEN_CONNS" default:"20"`
	MaxIdleConns    int           `envconfig:"DB_MAX_IDLE_CONNS" default:"5"`
	ConnMaxLifetime time.Duration `envconfig:"DB_CONN_MAX_LIFETIME" default:"1h"`
	Reset           bool          `envconfig:"RESET_DB" default:"false"`
}

// Redis describes the cache connection.
type Redis struct {
	Addr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
	Password string `envconfig:"REDIS_PASSWORD"`
}

// Auth carries the credential secrets. JWT_SECRET has no default and must be set.
type Auth struct {
	JWTSecret  string        `envconfig:"JWT_SECRET" required:"true"`
	TokenTTL   time.Duration `envconfig:"TOKEN_TTL" default:"60m"`
	BcryptCost int           `envconfig:"BCRYPT_COST" default:"10"`
	APIKey     string        `envconfig:"API_KEY"`
}

// Kafka configures the activity event publisher. Empty Brokers disables it.
type Kafka struct {
	Brokers []string `envconfig:"KAFKA_BROKERS"`
	Topic   string   `envconfig:"KAFKA_TOPIC" default:"integraservicios.activity"`
}

// Load builds Config from environment, reading an optional .env file first.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("process env: %w", err)
	}
	if strings.TrimSpace(cfg.Auth.JWTSecret) == "" {
		return nil, errors.New("JWT_SECRET must not be empty")
	}
	if cfg.Database.Driver != "postgres" && cfg.Database.Driver != "mysql" {
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.Database.Driver)
	}
	return &cfg, nil
}
