package cmd

import (
	"fmt"
	"os"
	"time"

	"freight/internal/adapters/out/viacep"
	"freight/internal/jobs"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort string

	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string
	DBSslMode  string

	AddressServiceURL     string
	AddressServiceTimeout time.Duration

	// AMQPURL empty means events are written to the log instead of a broker.
	AMQPURL      string
	AMQPExchange string

	AuditSchedule string
	LogLevel      string
}

// LoadConfig reads the environment, after loading envFile when it exists.
// Variables already set in the environment win over the file.
func LoadConfig(envFile string) (Config, error) {
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			if err := godotenv.Load(envFile); err != nil {
				return Config{}, fmt.Errorf("load %s: %w", envFile, err)
			}
		}
	}

	timeout, err := time.ParseDuration(getEnv("ADDRESS_SERVICE_TIMEOUT", viacep.DefaultTimeout.String()))
	if err != nil {
		return Config{}, fmt.Errorf("ADDRESS_SERVICE_TIMEOUT: %w", err)
	}
	if timeout <= 0 {
		return Config{}, fmt.Errorf("ADDRESS_SERVICE_TIMEOUT must be positive, got %s", timeout)
	}

	return Config{
		HTTPPort:              getEnv("HTTP_PORT", "8080"),
		DBHost:                getEnv("DB_HOST", "localhost"),
		DBPort:                getEnv("DB_PORT", "5432"),
		DBUser:                getEnv("DB_USER", "postgres"),
		DBPassword:            getEnv("DB_PASSWORD", ""),
		DBName:                getEnv("DB_NAME", "freight"),
		DBSslMode:             getEnv("DB_SSLMODE", "disable"),
		AddressServiceURL:     getEnv("ADDRESS_SERVICE_URL", viacep.DefaultBaseURL),
		AddressServiceTimeout: timeout,
		AMQPURL:               getEnv("AMQP_URL", ""),
		AMQPExchange:          getEnv("AMQP_EXCHANGE", "freight.events"),
		AuditSchedule:         getEnv("AUDIT_SCHEDULE", jobs.DefaultAuditSchedule),
		LogLevel:              getEnv("LOG_LEVEL", "info"),
	}, nil
}

// DSN is the PostgreSQL connection string in key=value form.
func (c Config) DSN() string {
	return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		c.DBHost, c.DBPort, c.DBUser, c.DBPassword, c.DBName, c.DBSslMode)
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}
