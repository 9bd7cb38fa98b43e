package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application
type Config struct {
	Environment string
	Port        string
	AWS         AWSConfig
	DynamoDB    DynamoDBConfig
}

// AWSConfig holds AWS client configuration
type AWSConfig struct {
	Region string
}

// DynamoDBConfig holds table-access configuration
type DynamoDBConfig struct {
	TableName string

	// LocalStackHostname, when non-empty, redirects the table client to a
	// local emulator instead of the managed service.
	LocalStackHostname string
	LocalStackPort     int
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("DYNAMODB_TABLE", "todos")
	viper.SetDefault("LOCALSTACK_PORT", 4566)

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		AWS: AWSConfig{
			Region: viper.GetString("AWS_REGION"),
		},
		DynamoDB: DynamoDBConfig{
			TableName:          viper.GetString("DYNAMODB_TABLE"),
			LocalStackHostname: viper.GetString("LOCALSTACK_HOSTNAME"),
			LocalStackPort:     viper.GetInt("LOCALSTACK_PORT"),
		},
	}

	return config, nil
}

// Endpoint returns the table-service endpoint override, or an empty string
// when the client should use default cloud endpoint resolution.
func (c DynamoDBConfig) Endpoint() string {
	if c.LocalStackHostname == "" {
		return ""
	}
	return "http://" + c.LocalStackHostname + ":" + strconv.Itoa(c.LocalStackPort)
}

// IsProduction returns true when running with the production environment
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

// GetEnvAsInt gets an environment variable as integer with a fallback value
func GetEnvAsInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}
