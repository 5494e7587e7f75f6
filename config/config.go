package config

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application.
// Mapstructure tags are used to map environment variables and config file keys.
type Config struct {
	// Server Configuration
	ServerAddress string `mapstructure:"SERVER_ADDRESS"` // e.g., ":8080"

	// AI Configuration
	OpenAIKey    string `mapstructure:"OPENAI_API_KEY"` // API key for OpenAI
	TextModelID  string `mapstructure:"TEXT_MODEL_ID"`  // e.g., "gpt-4o"
	ImageModelID string `mapstructure:"IMAGE_MODEL_ID"` // e.g., "dall-e-3"

	// CORS Configuration
	AllowedOrigins []string `mapstructure:"CORS_ALLOWED_ORIGINS"` // Frontend origins allowed to call the API
}

// LoadConfig reads configuration from file and environment variables.
func LoadConfig(path string) (config Config, err error) {
	viper.AddConfigPath(path)
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")

	viper.SetDefault("SERVER_ADDRESS", ":8080")
	viper.SetDefault("TEXT_MODEL_ID", "gpt-4o")
	viper.SetDefault("IMAGE_MODEL_ID", "dall-e-3")
	viper.SetDefault("CORS_ALLOWED_ORIGINS", []string{"http://localhost:3000"})

	viper.AutomaticEnv()

	// AutomaticEnv alone does not make env-only keys visible to Unmarshal;
	// every field must be bound explicitly so the env-only deployment mode
	// works without a config file.
	for _, key := range []string{"SERVER_ADDRESS", "OPENAI_API_KEY", "TEXT_MODEL_ID", "IMAGE_MODEL_ID", "CORS_ALLOWED_ORIGINS"} {
		if err := viper.BindEnv(key); err != nil {
			return Config{}, fmt.Errorf("unable to bind env var %s: %w", key, err)
		}
	}

	err = viper.ReadInConfig()
	if err != nil {
		// Config file is optional; env vars alone are enough.
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Info().Msg("Config file ('config.yaml') not found, relying solely on environment variables")
		} else {
			return Config{}, fmt.Errorf("error reading config file: %w", err)
		}
	} else {
		log.Info().Str("file", viper.ConfigFileUsed()).Msg("Using configuration file")
	}

	err = viper.Unmarshal(&config)
	if err != nil {
		return Config{}, fmt.Errorf("unable to decode config into struct: %w", err)
	}

	if config.OpenAIKey == "" {
		return Config{}, errors.New("OPENAI_API_KEY is required")
	}

	return
}
