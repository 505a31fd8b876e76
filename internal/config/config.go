package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

// Gateway kinds.
const (
	GatewayHTTP = "http"
	GatewayGRPC = "grpc"
)

// Store backends.
const (
	StoreBolt     = "bolt"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// Config is the full application configuration read from the environment.
type Config struct {
	App      App
	Gateway  Gateway
	Store    Store
	Redis    Redis
	Postgres Postgres
	Kafka    Kafka
}

type App struct {
	Host     string `env:"APP_HOST" env-default:"localhost"`
	Port     string `env:"APP_PORT" env-default:"8080"`
	LogLevel string `env:"APP_LOG_LEVEL" env-default:"info"`
}

// Addr returns host:port of the HTTP server.
func (a App) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

type Gateway struct {
	Kind     string        `env:"GATEWAY_KIND" env-default:"http"`
	BaseURL  string        `env:"GATEWAY_BASE_URL" env-default:"https://api.frankfurter.app"`
	Timeout  time.Duration `env:"GATEWAY_TIMEOUT" env-default:"10s"`
	GRPCHost string        `env:"GW_EXCHANGER_HOST" env-default:"localhost"`
	GRPCPort string        `env:"GW_EXCHANGER_PORT" env-default:"50051"`
}

type Store struct {
	Backend  string `env:"STORE_BACKEND" env-default:"bolt"`
	BoltPath string `env:"BOLT_PATH" env-default:"converter.bolt"`
}

type Redis struct {
	Host         string `env:"REDIS_HOST" env-default:"localhost"`
	Port         int    `env:"REDIS_PORT" env-default:"6379"`
	DB           int    `env:"REDIS_DB" env-default:"0"`
	Password     string `env:"REDIS_PASSWORD"`
	PoolSize     int    `env:"REDIS_POOL_SIZE" env-default:"10"`
	MinIdleConns int    `env:"REDIS_MIN_IDLE_CONNS" env-default:"2"`
}

type Postgres struct {
	Host         string `env:"POSTGRES_HOST" env-default:"localhost"`
	Port         int    `env:"POSTGRES_PORT" env-default:"5432"`
	User         string `env:"POSTGRES_USER" env-default:"user"`
	Password     string `env:"POSTGRES_PASSWORD" env-default:"password"`
	DB           string `env:"POSTGRES_DB" env-default:"database"`
	MaxOpenConns int    `env:"POSTGRES_MAX_OPEN_CONNS" env-default:"16"`
	MaxIdleConns int    `env:"POSTGRES_MAX_IDLE_CONNS" env-default:"8"`
}

// DSN returns the pgx connection string.
func (p Postgres) DSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		p.User, p.Password, p.Host, p.Port, p.DB)
}

type Kafka struct {
	Brokers []string `env:"KAFKA_BROKERS" env-separator:","`
	Topic   string   `env:"KAFKA_TOPIC" env-default:"conversions"`
}

// Load reads the optional .env file at path into the process environment
// and decodes the environment into a Config.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("read env: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	switch c.Gateway.Kind {
	case GatewayHTTP, GatewayGRPC:
	default:
		return fmt.Errorf("unknown GATEWAY_KIND %q", c.Gateway.Kind)
	}
	switch c.Store.Backend {
	case StoreBolt, StoreRedis, StorePostgres:
	default:
		return fmt.Errorf("unknown STORE_BACKEND %q", c.Store.Backend)
	}
	return nil
}
