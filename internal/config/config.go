package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config holds all configuration for the gateway.
// Following 12-factor app principles, all config is loaded from environment variables.
type Config struct {
	Server   ServerConfig
	Backends BackendConfig
	// ImageRoot is the base URL used to derive order line image links.
	ImageRoot string
	LogLevel  string
}

type ServerConfig struct {
	Port            string
	Host            string
	ReadTimeout     int
	WriteTimeout    int
	ShutdownTimeout int
}

type BackendConfig struct {
	ProductsURL string
	OrdersURL   string
	// RPCTimeout bounds each backend call, in seconds.
	RPCTimeout int
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			Host:            getEnv("HOST", "0.0.0.0"),
			ReadTimeout:     getEnvAsInt("READ_TIMEOUT", 15),
			WriteTimeout:    getEnvAsInt("WRITE_TIMEOUT", 15),
			ShutdownTimeout: getEnvAsInt("SHUTDOWN_TIMEOUT", 30),
		},
		Backends: BackendConfig{
			ProductsURL: getEnv("PRODUCTS_SERVICE_URL", "http://localhost:8081"),
			OrdersURL:   getEnv("ORDERS_SERVICE_URL", "http://localhost:8082"),
			RPCTimeout:  getEnvAsInt("RPC_TIMEOUT", 10),
		},
		ImageRoot: getEnv("PRODUCT_IMAGE_ROOT", ""),
		LogLevel:  getEnv("LOG_LEVEL", "info"),
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	if c.Backends.ProductsURL == "" {
		return fmt.Errorf("PRODUCTS_SERVICE_URL is required")
	}

	if c.Backends.OrdersURL == "" {
		return fmt.Errorf("ORDERS_SERVICE_URL is required")
	}

	if c.ImageRoot == "" {
		return fmt.Errorf("PRODUCT_IMAGE_ROOT is required")
	}

	validLogLevels := map[string]bool{"debug": true, "info": true, "warn": true, "error": true}
	if !validLogLevels[strings.ToLower(c.LogLevel)] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// Helper functions for reading environment variables

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
