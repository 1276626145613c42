package config

import (
	"fmt"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	App     AppConfig
	Catalog CatalogConfig
	Pricing PricingConfig
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process(EnvPrefix, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	return &cfg, nil
}

type AppConfig struct {
	Env          string `envconfig:"BOONDOCKS_APP_ENV" default:"development"`
	Port         string `envconfig:"BOONDOCKS_APP_PORT" default:"8080"`
	LogLevel     string `envconfig:"BOONDOCKS_LOG_LEVEL" default:"info"`
	LogWarnStack bool   `envconfig:"BOONDOCKS_LOG_WARN_STACK" default:"false"`
}

func (a AppConfig) IsDev() bool {
	return strings.EqualFold(a.Env, AppEnvDev)
}

func (a AppConfig) IsProd() bool {
	return strings.EqualFold(a.Env, AppEnvProd)
}

type CatalogConfig struct {
	Path string `envconfig:"BOONDOCKS_CATALOG_PATH" default:"data/menu.json"`
}

// PricingConfig carries the restaurant header printed on receipts. Pricing
// rules themselves live in the catalog and the pricing package.
type PricingConfig struct {
	ReceiptHeader string `envconfig:"BOONDOCKS_RECEIPT_HEADER" default:"The Boondocks Grill"`
}
