package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v9"
)

type Config struct {
	APIBaseURL         string        `env:"API_BASE_URL,required"`
	APIKey             string        `env:"API_KEY,required"`
	RedisAddr          string        `env:"REDIS_ADDR,required"`
	RedisPassword      string        `env:"REDIS_PASSWORD"`
	RedisDB            int           `env:"REDIS_DB" envDefault:"0"`
	DraftTTL           time.Duration `env:"DRAFT_TTL" envDefault:"72h"`
	DBHost             string        `env:"DB_HOST,required"`
	DBPort             int           `env:"DB_PORT,required"`
	DBUser             string        `env:"DB_USER,required"`
	DBPassword         string        `env:"DB_PASSWORD,required"`
	DBName             string        `env:"DB_NAME,required"`
	DBMaxOpenConns     int           `env:"DB_MAX_OPEN_CONNS" envDefault:"25"`
	DBMaxIdleConns     int           `env:"DB_MAX_IDLE_CONNS" envDefault:"5"`
	DBConnMaxLifetime  time.Duration `env:"DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	DBConnMaxIdleTime  time.Duration `env:"DB_CONN_MAX_IDLE_TIME" envDefault:"2m"`
	CatalogRefresh     time.Duration `env:"CATALOG_REFRESH_INTERVAL" envDefault:"15m"`
	HTTPRequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" envDefault:"30s"`
	MinOrderAmount     float64       `env:"MIN_ORDER_AMOUNT" envDefault:"0"`
	MinOrderEnabled    bool          `env:"MIN_ORDER_ENABLED" envDefault:"false"`
	ReportsDir         string        `env:"REPORTS_DIR" envDefault:"reports"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.MinOrderEnabled && cfg.MinOrderAmount <= 0 {
		return nil, fmt.Errorf("MIN_ORDER_AMOUNT must be positive when minimum order is enabled")
	}

	return &cfg, nil
}
