package config

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"
	AppEnv        string `mapstructure:"APP_ENV"`        // "production" switches gin to release mode

	// Logging
	LogLevel string `mapstructure:"LOG_LEVEL"`
	LogHuman bool   `mapstructure:"LOG_HUMAN"`

	// Generation
	DefaultPrompt     string        `mapstructure:"DEFAULT_PROMPT"`
	CoreVersion       string        `mapstructure:"CORE_VERSION"` // reported by /api/health
	BrandFetchTimeout time.Duration `mapstructure:"BRAND_FETCH_TIMEOUT"`

	// AI Configuration
	OpenAIKey     string `mapstructure:"OPENAI_API_KEY"`
	OpenAIModel   string `mapstructure:"OPENAI_MODEL"`
	OpenAIBaseURL string `mapstructure:"OPENAI_BASE_URL"`
}

var defaults = map[string]any{
	"SERVER_ADDRESS":      ":8080",
	"APP_ENV":             "development",
	"LOG_LEVEL":           "info",
	"LOG_HUMAN":           false,
	"DEFAULT_PROMPT":      "Landing page for AI Math SaaS for kids",
	"CORE_VERSION":        "local-core",
	"BRAND_FETCH_TIMEOUT": "8s",
	"OPENAI_API_KEY":      "",
	"OPENAI_MODEL":        "gpt-4o",
	"OPENAI_BASE_URL":     "",
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yaml")

	for key, value := range defaults {
		v.SetDefault(key, value)
	}
	v.AutomaticEnv()

	err = v.ReadInConfig()
	if err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			log.Println("Config file ('config.yaml') not found in specified path, relying solely on environment variables.")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Printf("Using configuration file: %s", v.ConfigFileUsed())
	}

	err = v.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.BrandFetchTimeout <= 0 {
		return Config{}, fmt.Errorf("BRAND_FETCH_TIMEOUT must be positive, got %s", config.BrandFetchTimeout)
	}
	if config.OpenAIKey == "" {
		log.Println("INFO: OPENAI_API_KEY is not set, engine=llm falls back to the mapper.")
	}

	return
}

// IsProduction reports whether gin should run in release mode.
func (c Config) IsProduction() bool {
	return c.AppEnv == "production"
}
