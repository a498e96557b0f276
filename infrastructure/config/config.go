package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// credentialPrefix marks the environment variables carrying authorizer
// credentials: BASIC_AUTH_<username>=<password>.
const credentialPrefix = "BASIC_AUTH_"

// Config holds all application configuration
type Config struct {
	Environment string
	AWSRegion   string

	// Record stores
	ProductsTable string
	StockTable    string

	// Import pipeline
	BucketName   string
	UploadPrefix string
	ParsedPrefix string
	UploadTTL    int // seconds
	QueueURL     string
	TopicARN     string

	// Authorizer credentials, username -> password
	Credentials map[string]string

	// Logging and features
	LogLevel         string
	MetricsNamespace string
	EnableMetrics    bool
	EnableTracing    bool
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	cfg := &Config{
		Environment: getEnv("ENVIRONMENT", "development"),
		AWSRegion:   getEnv("AWS_REGION", "us-east-1"),

		ProductsTable: getEnv("PRODUCTS_TABLE", "products"),
		StockTable:    getEnv("STOCK_TABLE", "stock"),

		BucketName:   getEnv("BUCKET_NAME", ""),
		UploadPrefix: getEnv("UPLOAD_PREFIX", "uploaded/"),
		ParsedPrefix: getEnv("PARSED_PREFIX", "parsed/"),
		UploadTTL:    getEnvInt("UPLOAD_URL_TTL", 3600),
		QueueURL:     getEnv("SQS_QUEUE_URL", ""),
		TopicARN:     getEnv("SNS_TOPIC_ARN", ""),

		Credentials: loadCredentials(),

		LogLevel:         getEnv("LOG_LEVEL", "info"),
		MetricsNamespace: getEnv("METRICS_NAMESPACE", "ProductCatalog"),
		EnableMetrics:    getEnvBool("ENABLE_METRICS", false),
		EnableTracing:    getEnvBool("ENABLE_TRACING", false),
	}

	// Validate required configuration
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// Validate checks if all required configuration is present
func (c *Config) Validate() error {
	if c.Environment == "production" {
		if c.ProductsTable == "" {
			return fmt.Errorf("PRODUCTS_TABLE is required")
		}
		if c.StockTable == "" {
			return fmt.Errorf("STOCK_TABLE is required")
		}
	}

	if !strings.HasSuffix(c.UploadPrefix, "/") || !strings.HasSuffix(c.ParsedPrefix, "/") {
		return fmt.Errorf("object prefixes must end with '/'")
	}

	return nil
}

// IsProduction checks if running in production mode
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// loadCredentials collects the authorizer credential pairs from the
// environment so the credential set travels as an explicit map, not ad hoc
// lookups.
func loadCredentials() map[string]string {
	credentials := make(map[string]string)
	for _, entry := range os.Environ() {
		key, value, ok := strings.Cut(entry, "=")
		if !ok || !strings.HasPrefix(key, credentialPrefix) {
			continue
		}
		username := strings.TrimPrefix(key, credentialPrefix)
		if username == "" || value == "" {
			continue
		}
		credentials[username] = value
	}
	return credentials
}

// getEnv gets an environment variable with a default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// getEnvBool gets a boolean environment variable with a default value
func getEnvBool(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value == "true" || value == "1" || value == "yes"
}

// getEnvInt gets an integer environment variable with a default value
func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}
