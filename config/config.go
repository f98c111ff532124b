package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const (
	defaultPort             = "8080"
	defaultDatabaseURL      = "family.db"
	defaultRateLimitRPS     = 20.0
	defaultRateLimitBurst   = 40
	defaultRequestTimeoutS  = 60
	defaultCORSAllowOrigins = "http://localhost:3000"
)

type Config struct {
	// http listener
	Port           string
	RequestTimeout time.Duration

	// database
	DBDriver    string // sqlite or postgres
	DatabaseURL string // sqlite file path or postgres DSN
	DBLogLevel  string // gorm logger: silent, error, warn, info

	// logging
	LogLevel  string
	LogPretty bool

	CORSAllowedOrigins []string

	// per-client token bucket, RateLimitRPS <= 0 disables it
	RateLimitRPS   float64
	RateLimitBurst int
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvIntOrDefault(envVar string, defaultVal int) int {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.Atoi(valStr)
	if err != nil || val <= 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %d. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func getEnvFloatOrDefault(envVar string, defaultVal float64) float64 {
	valStr := os.Getenv(envVar)
	if valStr == "" {
		return defaultVal
	}
	val, err := strconv.ParseFloat(valStr, 64)
	if err != nil || val < 0 {
		log.Printf("Warning: Invalid %s '%s'. Using default %g. Error: %v", envVar, valStr, defaultVal, err)
		return defaultVal
	}
	return val
}

func splitList(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func LoadConfig() (Config, error) {
	driver := strings.ToLower(getEnvOrDefault("DB_DRIVER", DriverSQLite))
	if driver != DriverSQLite && driver != DriverPostgres {
		return Config{}, fmt.Errorf("unsupported DB_DRIVER '%s' (expected %s or %s)", driver, DriverSQLite, DriverPostgres)
	}

	dbURL := getEnvOrDefault("DATABASE_URL", defaultDatabaseURL)
	if driver == DriverPostgres && dbURL == defaultDatabaseURL {
		return Config{}, fmt.Errorf("DATABASE_URL must be set when DB_DRIVER is %s", DriverPostgres)
	}

	pretty, _ := strconv.ParseBool(os.Getenv("LOG_PRETTY"))

	cfg := Config{
		Port:               getEnvOrDefault("PORT", defaultPort),
		RequestTimeout:     time.Duration(getEnvIntOrDefault("REQUEST_TIMEOUT_SECONDS", defaultRequestTimeoutS)) * time.Second,
		DBDriver:           driver,
		DatabaseURL:        dbURL,
		DBLogLevel:         strings.ToLower(getEnvOrDefault("DB_LOG_LEVEL", "warn")),
		LogLevel:           getEnvOrDefault("LOG_LEVEL", "info"),
		LogPretty:          pretty,
		CORSAllowedOrigins: splitList(getEnvOrDefault("CORS_ALLOWED_ORIGINS", defaultCORSAllowOrigins)),
		RateLimitRPS:       getEnvFloatOrDefault("RATE_LIMIT_RPS", defaultRateLimitRPS),
		RateLimitBurst:     getEnvIntOrDefault("RATE_LIMIT_BURST", defaultRateLimitBurst),
	}

	return cfg, nil
}
