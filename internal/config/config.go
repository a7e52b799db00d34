package config

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"
)

// Config structure represents the application configuration
type Config struct {
	Server struct {
		Port           string `yaml:"port" env:"SERVER_PORT"`
		Mode           string `yaml:"mode" env:"SERVER_MODE"`
		RequestTimeout string `yaml:"request_timeout" env:"SERVER_REQUEST_TIMEOUT"`
	} `yaml:"server"`

	Database struct {
		URI            string `yaml:"uri" env:"MONGODB_URI"`
		Name           string `yaml:"name" env:"MONGODB_DATABASE"`
		ConnectTimeout string `yaml:"connect_timeout" env:"MONGODB_CONNECT_TIMEOUT"`
	} `yaml:"database"`

	Stripe struct {
		SecretKey string `yaml:"secret_key" env:"STRIPE_SECRET_KEY"`
	} `yaml:"stripe"`

	CORS struct {
		AllowOrigins []string `yaml:"allow_origins"`
	} `yaml:"cors"`

	Logging struct {
		Level  string `yaml:"level" env:"LOG_LEVEL"`
		Format string `yaml:"format" env:"LOG_FORMAT"`
	} `yaml:"logging"`
}

// LoadConfig loads configuration from a file and environment variables
func LoadConfig(configPath string) (*Config, error) {
	config := &Config{}
	setDefaults(config)

	// The config file is optional; environment variables can carry everything
	if _, err := os.Stat(configPath); err == nil {
		file, err := os.ReadFile(configPath)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		err = yaml.Unmarshal(file, config)
		if err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	// Override with environment variables
	if err := loadFromEnv(config); err != nil {
		return nil, fmt.Errorf("failed to load from environment: %w", err)
	}

	if err := validateConfig(config); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return config, nil
}

// setDefaults sets default values for the configuration
func setDefaults(config *Config) {
	config.Server.Port = "5000"
	config.Server.Mode = "development"
	config.Server.RequestTimeout = "15s"

	config.Database.URI = "mongodb://localhost:27017"
	config.Database.Name = "quillAcademy"
	config.Database.ConnectTimeout = "10s"

	config.CORS.AllowOrigins = []string{"*"}

	config.Logging.Level = "info"
	config.Logging.Format = "json"
}

// validateConfig ensures that the configuration is valid
func validateConfig(config *Config) error {
	if config.Database.URI == "" {
		return fmt.Errorf("database URI is required")
	}

	if config.Database.Name == "" {
		return fmt.Errorf("database name is required")
	}

	if _, err := time.ParseDuration(config.Server.RequestTimeout); err != nil {
		return fmt.Errorf("invalid request timeout format: %w", err)
	}

	if _, err := time.ParseDuration(config.Database.ConnectTimeout); err != nil {
		return fmt.Errorf("invalid database connect timeout format: %w", err)
	}

	return nil
}

// RequestTimeout returns the per-request deadline applied to store and
// payment-processor calls.
func (c *Config) RequestTimeout() time.Duration {
	return parseDurationOr(c.Server.RequestTimeout, 15*time.Second)
}

// ConnectTimeout returns the startup deadline for establishing the database
// connection.
func (c *Config) ConnectTimeout() time.Duration {
	return parseDurationOr(c.Database.ConnectTimeout, 10*time.Second)
}

func parseDurationOr(value string, fallback time.Duration) time.Duration {
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	return fallback
}
