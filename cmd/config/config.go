package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds the application's configuration, read from environment
// variables with an optional .env file on top.
type Config struct {
	Environment string `envconfig:"ENVIRONMENT" default:"development"`
	Server      ServerConfig
	Remote      RemoteConfig
	Redis       RedisConfig
	Inventory   InventoryConfig
}

// ServerConfig for the local console HTTP server.
type ServerConfig struct {
	Port         string        `envconfig:"SERVER_PORT" default:"3000"`
	ReadTimeout  time.Duration `envconfig:"SERVER_READ_TIMEOUT" default:"15s"`
	WriteTimeout time.Duration `envconfig:"SERVER_WRITE_TIMEOUT" default:"15s"`
	IdleTimeout  time.Duration `envconfig:"SERVER_IDLE_TIMEOUT" default:"60s"`
}

// RemoteConfig points at the product/shop HTTP service.
type RemoteConfig struct {
	BaseURL string        `envconfig:"API_BASE_URL" default:"http://localhost:8000"`
	Timeout time.Duration `envconfig:"API_TIMEOUT" default:"30s"`
}

type RedisConfig struct {
	Host     string `envconfig:"REDIS_HOST" default:"localhost"`
	Port     int    `envconfig:"REDIS_PORT" default:"6379"`
	Password string `envconfig:"REDIS_PASSWORD" default:""`
	DB       int    `envconfig:"REDIS_DB" default:"0"`
}

type InventoryConfig struct {
	ItemsPerPage int `envconfig:"INVENTORY_ITEMS_PER_PAGE" default:"5"`
}

// Load reads configuration once at startup. A missing .env file is fine;
// real environment variables always win.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
