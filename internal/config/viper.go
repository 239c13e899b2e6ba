package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/shamar-morrison/recurr-sub000/internal/spending"
)

// Config represents the complete application configuration
type Config struct {
	Log struct {
		Level  string `mapstructure:"level" yaml:"level"`
		Format string `mapstructure:"format" yaml:"format"`
	} `mapstructure:"log" yaml:"log"`

	Currency struct {
		Primary   string `mapstructure:"primary" yaml:"primary"`
		RatesFile string `mapstructure:"rates_file" yaml:"rates_file"`
	} `mapstructure:"currency" yaml:"currency"`

	History struct {
		FutureCount  int `mapstructure:"future_count" yaml:"future_count"`
		MaxPastCount int `mapstructure:"max_past_count" yaml:"max_past_count"`
	} `mapstructure:"history" yaml:"history"`

	Spending struct {
		DefaultPreset string `mapstructure:"default_preset" yaml:"default_preset"`
		IncludePaused bool   `mapstructure:"include_paused" yaml:"include_paused"`
	} `mapstructure:"spending" yaml:"spending"`

	Data struct {
		SubscriptionsFile string `mapstructure:"subscriptions_file" yaml:"subscriptions_file"`
		CategoriesFile    string `mapstructure:"categories_file" yaml:"categories_file"`
	} `mapstructure:"data" yaml:"data"`
}

// InitializeConfig initializes Viper configuration with hierarchical
// loading: defaults, then an optional YAML config file, then
// RECURR_-prefixed environment variables.
func InitializeConfig() (*Config, error) {
	v := viper.New()

	setDefaults(v)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath("$HOME/.recurr")
	v.AddConfigPath(".recurr")
	v.AddConfigPath(".")

	v.SetEnvPrefix("RECURR")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			// Log and continue with defaults and env vars
			Logger.Warnf("error reading config file %s: %v", v.ConfigFileUsed(), err)
		}
	}

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validateConfig(&config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &config, nil
}

// setDefaults sets default configuration values
func setDefaults(v *viper.Viper) {
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetDefault("currency.primary", "")
	v.SetDefault("currency.rates_file", "rates.yaml")

	v.SetDefault("history.future_count", 3)
	v.SetDefault("history.max_past_count", 12)

	v.SetDefault("spending.default_preset", spending.PresetSixMonths)
	v.SetDefault("spending.include_paused", false)

	v.SetDefault("data.subscriptions_file", "subscriptions.csv")
	v.SetDefault("data.categories_file", "categories.yaml")
}

// validateConfig validates configuration values
func validateConfig(config *Config) error {
	validLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLevels[strings.ToLower(config.Log.Level)] {
		return fmt.Errorf("invalid log level: %s", config.Log.Level)
	}

	validFormats := map[string]bool{"text": true, "json": true}
	if !validFormats[strings.ToLower(config.Log.Format)] {
		return fmt.Errorf("invalid log format: %s", config.Log.Format)
	}

	if config.History.FutureCount < 0 || config.History.MaxPastCount < 0 {
		return fmt.Errorf("history counts must not be negative")
	}

	validPreset := false
	for _, preset := range spending.Presets {
		if config.Spending.DefaultPreset == preset {
			validPreset = true
			break
		}
	}
	if !validPreset {
		return fmt.Errorf("invalid spending preset: %s", config.Spending.DefaultPreset)
	}

	return nil
}
