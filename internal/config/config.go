// Package config provides application configuration loading from environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Tables holds the DynamoDB table names.
type Tables struct {
	Budgets         string
	BudgetItems     string
	ItemTemplates   string
	Clients         string
	FormLinks       string
	UniqueKeys      string
	Payments        string
	IdempotencyKeys string
}

// Config holds all configuration for the application.
type Config struct {
	Port      int
	LogLevel  string
	LogFormat string

	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	Tables             Tables

	CalculatorURL     string
	CalculatorTimeout time.Duration

	AuthJWTSecret string

	MercadoPagoAccessToken     string
	MercadoPagoTestPayerEmail  string
	MercadoPagoTestPayerUserID string
	PaymentGatewayMock         bool

	IdempotencyTTL time.Duration
}

// Load reads configuration from environment variables, loading a .env file
// first when present.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:      getenvInt("PORT", 8080),
		LogLevel:  getenvDefault("LOG_LEVEL", "info"),
		LogFormat: getenvDefault("LOG_FORMAT", "console"),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		Tables: Tables{
			Budgets:         getenvDefault("BUDGETS_TABLE", "budgets"),
			BudgetItems:     getenvDefault("BUDGET_ITEMS_TABLE", "budget_items"),
			ItemTemplates:   getenvDefault("BUDGET_ITEM_TEMPLATES_TABLE", "budget_item_templates"),
			Clients:         getenvDefault("CLIENTS_TABLE", "clients"),
			FormLinks:       getenvDefault("FORM_LINKS_TABLE", "budget_form_links"),
			UniqueKeys:      getenvDefault("UNIQUE_KEYS_TABLE", "unique_keys"),
			Payments:        getenvDefault("PAYMENTS_TABLE", "payments"),
			IdempotencyKeys: getenvDefault("IDEMPOTENCY_TABLE", "idempotency_keys"),
		},

		CalculatorURL:     strings.TrimRight(strings.TrimSpace(os.Getenv("CALCULATOR_URL")), "/"),
		CalculatorTimeout: getenvDuration("CALCULATOR_TIMEOUT", 30*time.Second),

		AuthJWTSecret: os.Getenv("AUTH_JWT_SECRET"),

		MercadoPagoAccessToken:     strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
		MercadoPagoTestPayerEmail:  strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_EMAIL")),
		MercadoPagoTestPayerUserID: strings.TrimSpace(os.Getenv("MERCADOPAGO_TEST_PAYER_USER_ID")),
		PaymentGatewayMock:         isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),

		IdempotencyTTL: getenvDuration("IDEMPOTENCY_TTL", 24*time.Hour),
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	var errs []string

	if c.CalculatorURL == "" {
		errs = append(errs, "CALCULATOR_URL is required")
	}
	if c.AuthJWTSecret == "" {
		errs = append(errs, "AUTH_JWT_SECRET is required")
	}
	if c.Port <= 0 || c.Port > 65535 {
		errs = append(errs, "PORT must be between 1 and 65535")
	}

	if len(errs) > 0 {
		return fmt.Errorf("configuration validation failed:\n  - %s", strings.Join(errs, "\n  - "))
	}
	return nil
}

// Addr returns the listen address for the HTTP server.
func (c *Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}

func getenvDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

// getenvDuration accepts Go durations ("45s") or a plain number of seconds.
func getenvDuration(key string, def time.Duration) time.Duration {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	if d, err := time.ParseDuration(v); err == nil && d > 0 {
		return d
	}
	if n, err := strconv.Atoi(v); err == nil && n > 0 {
		return time.Duration(n) * time.Second
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
