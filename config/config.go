// Package config reads the storefront settings from the environment.
package config

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/kelseyhightower/envconfig"
)

const (
	AppEnvDev  = "dev"
	AppEnvProd = "prod"

	// FallbackWhatsAppNumber is used when no destination is configured; never in production.
	FallbackWhatsAppNumber = "94112345678"
	placeholderNumber      = "94XXXXXXXXX"
)

var digitsOnly = regexp.MustCompile(`^[0-9]+$`)

type Config struct {
	Port     string `envconfig:"PORT" default:"8080"`
	AppEnv   string `envconfig:"STOREFRONT_APP_ENV" default:"dev"`
	LogLevel string `envconfig:"STOREFRONT_LOG_LEVEL" default:"info"`
	BaseURL  string `envconfig:"STOREFRONT_BASE_URL" default:"http://localhost:8080"`

	ShopName        string `envconfig:"STOREFRONT_SHOP_NAME" default:"Danudara Textiles"`
	Currency        string `envconfig:"STOREFRONT_CURRENCY" default:"LKR"`
	CurrencySymbol  string `envconfig:"STOREFRONT_CURRENCY_SYMBOL" default:"Rs."`
	DefaultLanguage string `envconfig:"STOREFRONT_DEFAULT_LANGUAGE" default:"en"`

	WhatsAppNumber         string `envconfig:"STOREFRONT_WHATSAPP_NUMBER"`
	ClearCartAfterCheckout bool   `envconfig:"STOREFRONT_CLEAR_CART_AFTER_CHECKOUT" default:"false"`
	CartKey                string `envconfig:"STOREFRONT_CART_KEY" default:"danudara_cart"`
	LanguageKey            string `envconfig:"STOREFRONT_LANGUAGE_KEY" default:"danudara_language"`
	KVBackend              string `envconfig:"STOREFRONT_KV_BACKEND" default:"memory"`
	SQLitePath             string `envconfig:"STOREFRONT_SQLITE_PATH" default:"storefront.db"`
	RedisURL               string `envconfig:"STOREFRONT_REDIS_URL" default:"redis://localhost:6379/0"`
	JSONBinBaseURL         string `envconfig:"STOREFRONT_JSONBIN_BASE_URL" default:"https://api.jsonbin.io/v3"`
	JSONBinBinID           string `envconfig:"STOREFRONT_JSONBIN_BIN_ID"`
	JSONBinAPIKey          string `envconfig:"STOREFRONT_JSONBIN_API_KEY"`
	AdminToken             string `envconfig:"STOREFRONT_ADMIN_TOKEN"`
}

func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}
	if cfg.AppEnv == "" {
		cfg.AppEnv = AppEnvDev
	}
	if !cfg.IsDev() && !cfg.IsProd() {
		return nil, fmt.Errorf("invalid STOREFRONT_APP_ENV %q: expected %s or %s", cfg.AppEnv, AppEnvDev, AppEnvProd)
	}
	cfg.WhatsAppNumber = NormalizeNumber(cfg.WhatsAppNumber)
	return &cfg, nil
}

func (c Config) IsDev() bool {
	return strings.EqualFold(c.AppEnv, AppEnvDev)
}

func (c Config) IsProd() bool {
	return strings.EqualFold(c.AppEnv, AppEnvProd)
}

// CMSConfigured reports whether the hosted content document can be reached.
func (c Config) CMSConfigured() bool {
	return c.JSONBinBinID != "" && c.JSONBinAPIKey != ""
}

// AdminEnabled reports whether the admin api should be exposed.
func (c Config) AdminEnabled() bool {
	return c.AdminToken != ""
}

// NormalizeNumber strips the formatting people put around phone numbers ("+94 11 234 5678").
func NormalizeNumber(number string) string {
	replacer := strings.NewReplacer(" ", "", "-", "", "+", "", "(", "", ")", "")
	return replacer.Replace(strings.TrimSpace(number))
}

// IsUsableNumber is false for missing, placeholder or non-numeric destinations.
func IsUsableNumber(number string) bool {
	if number == "" || strings.EqualFold(number, placeholderNumber) {
		return false
	}
	return digitsOnly.MatchString(number)
}
