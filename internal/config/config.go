package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Database DatabaseConfig
	Menu     MenuConfig
	Order    OrderConfig
	UI       UIConfig
	Log      LogConfig
}

// DatabaseConfig holds sqlite settings.
type DatabaseConfig struct {
	Path string
}

// MenuConfig points at an optional TOML menu. Empty means the built-in menu.
type MenuConfig struct {
	Path string
}

// OrderConfig holds pricing settings.
type OrderConfig struct {
	TaxRate string `mapstructure:"tax_rate"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	CurrencySymbol string `mapstructure:"currency_symbol"`
}

// LogConfig controls the file logger. The TUI owns the terminal, so logs never go to stdout.
type LogConfig struct {
	Path  string
	Level string
}

func configDir() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "lunchtray")
}

func dataDir() string {
	return filepath.Join(os.Getenv("HOME"), ".local", "share", "lunchtray")
}

func newViper() *viper.Viper {
	v := viper.New()
	v.SetDefault("database.path", filepath.Join(dataDir(), "lunchtray.db"))
	v.SetDefault("menu.path", "")
	v.SetDefault("order.tax_rate", "0.08")
	v.SetDefault("ui.currency_symbol", "$")
	v.SetDefault("log.path", filepath.Join(dataDir(), "lunchtray.log"))
	v.SetDefault("log.level", "info")
	v.SetConfigType("toml")
	return v
}

// Load reads configuration from .env, file and env. Env var overrides use prefix LUNCHTRAY_.
func Load() (Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := newViper()

	cfgPath := os.Getenv("LUNCHTRAY_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LUNCHTRAY")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// a missing default config file is fine; an explicit path must exist
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// TaxRate parses the configured rate.
func (c Config) TaxRate() (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(c.Order.TaxRate))
	if err != nil {
		return decimal.Zero, fmt.Errorf("order.tax_rate %q: %w", c.Order.TaxRate, err)
	}
	return rate, nil
}

// Validate checks values that cannot be defaulted silently.
func (c Config) Validate() error {
	rate, err := c.TaxRate()
	if err != nil {
		return err
	}
	if rate.IsNegative() || rate.GreaterThanOrEqual(decimal.NewFromInt(1)) {
		return fmt.Errorf("order.tax_rate must be in [0, 1), got %s", rate)
	}
	if strings.TrimSpace(c.Database.Path) == "" {
		return fmt.Errorf("database.path is required")
	}
	return nil
}
