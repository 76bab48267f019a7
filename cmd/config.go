package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/services"
)

const (
	DBDriverPostgres = "postgres"
	DBDriverSQLite   = "sqlite"
)

// Config is read from the environment once at startup.
type Config struct {
	HTTPPort string

	DBDriver   string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string
	SQLitePath string

	JWTSecret string

	RateUSD string
	RateRUB string

	MediaRoot string

	AMQPURL      string
	AMQPExchange string

	ReportSchedule  string
	OverdueSchedule string
}

// ConfigFromEnv builds a Config from environment variables, applying defaults
// for everything optional.
func ConfigFromEnv() Config {
	return Config{
		HTTPPort:        envOr("HTTP_PORT", "8080"),
		DBDriver:        envOr("DB_DRIVER", DBDriverPostgres),
		DBHost:          envOr("DB_HOST", "localhost"),
		DBPort:          envOr("DB_PORT", "5432"),
		DBUser:          os.Getenv("DB_USER"),
		DBPassword:      os.Getenv("DB_PASSWORD"),
		DBName:          envOr("DB_NAME", "fastfood"),
		DBSslMode:       envOr("DB_SSLMODE", "disable"),
		SQLitePath:      envOr("SQLITE_PATH", "fastfood.db"),
		JWTSecret:       os.Getenv("JWT_SECRET"),
		RateUSD:         os.Getenv("RATE_USD"),
		RateRUB:         os.Getenv("RATE_RUB"),
		MediaRoot:       envOr("MEDIA_ROOT", "media"),
		AMQPURL:         os.Getenv("AMQP_URL"),
		AMQPExchange:    envOr("AMQP_EXCHANGE", "fastfood.orders"),
		ReportSchedule:  os.Getenv("REPORT_SCHEDULE"),
		OverdueSchedule: os.Getenv("OVERDUE_SCHEDULE"),
	}
}

// Validate reports every missing or malformed setting at once.
func (c Config) Validate() error {
	var problems []error
	if c.HTTPPort == "" {
		problems = append(problems, errors.New("HTTP_PORT is required"))
	}
	if c.JWTSecret == "" {
		problems = append(problems, errors.New("JWT_SECRET is required"))
	}

	switch c.DBDriver {
	case DBDriverPostgres:
		if c.DBUser == "" {
			problems = append(problems, errors.New("DB_USER is required for postgres"))
		}
	case DBDriverSQLite:
		if c.SQLitePath == "" {
			problems = append(problems, errors.New("SQLITE_PATH is required for sqlite"))
		}
	default:
		problems = append(problems, fmt.Errorf("DB_DRIVER %q is not one of %s, %s", c.DBDriver, DBDriverPostgres, DBDriverSQLite))
	}

	if _, err := c.ExchangeRates(); err != nil {
		problems = append(problems, err)
	}
	return errors.Join(problems...)
}

// ExchangeRates overrides the default rates with RATE_USD and RATE_RUB when set.
func (c Config) ExchangeRates() (services.ExchangeRates, error) {
	rates := services.DefaultExchangeRates()
	overrides := map[food.Currency]string{
		food.USD: c.RateUSD,
		food.RUB: c.RateRUB,
	}
	for currency, raw := range overrides {
		if raw == "" {
			continue
		}
		rate, err := services.ParseExchangeRate(raw)
		if err != nil {
			return nil, fmt.Errorf("RATE_%s: %w", strings.ToUpper(currency.String()), err)
		}
		rates[currency] = rate
	}
	return rates, nil
}

// PostgresDSN returns the connection string for dbName on the configured server.
func (c Config) PostgresDSN(dbName string) string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, dbName, c.DBSslMode)
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
