// Package config loads and validates application configuration from
// environment variables. Loading collects every error before failing so a
// misconfigured deployment reports all missing variables at once.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// DBConfig holds settings for the PostgreSQL connection pool.
type DBConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	DBName   string
	PoolSize int
}

// AuthConfig holds authentication-related configuration.
type AuthConfig struct {
	// JWTSecret signs and verifies tokens. It is injected from the
	// environment so it can be rotated without a code change.
	JWTSecret           string
	AccessTokenDuration time.Duration
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Port string
}

// AppConfig is the top-level configuration for the application.
type AppConfig struct {
	DB             *DBConfig
	Auth           *AuthConfig
	Server         *ServerConfig
	MigrationsPath string
}

// DefaultAccessTokenDuration is the token lifetime when
// JWT_ACCESS_TOKEN_DURATION is not set.
const DefaultAccessTokenDuration = 24 * time.Hour

func getRequiredEnv(key string, errs *[]string) string {
	value, exists := os.LookupEnv(key)
	if !exists {
		*errs = append(*errs, fmt.Sprintf("missing required environment variable: %s", key))
		return ""
	}
	return value
}

func getOptionalEnv(key string, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getOptionalEnvInt(key string, defaultValue int, errs *[]string) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueInt, err := strconv.Atoi(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected integer, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueInt
}

func getOptionalEnvDuration(key string, defaultValue time.Duration, errs *[]string) time.Duration {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}
	valueDuration, err := time.ParseDuration(valueStr)
	if err != nil {
		*errs = append(*errs, fmt.Sprintf("invalid value for %s: expected duration string, got '%s': %v", key, valueStr, err))
		return defaultValue
	}
	return valueDuration
}

// clampPoolSize keeps the pool size within 1..100.
func clampPoolSize(size int, varName string, errs *[]string) int {
	if size < 1 {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is less than minimum 1, clamping to 1", varName, size))
		return 1
	}
	if size > 100 {
		*errs = append(*errs, fmt.Sprintf("pool size for %s (%d) is greater than maximum 100, clamping to 100", varName, size))
		return 100
	}
	return size
}

// Load creates an AppConfig from environment variables. All validation
// errors encountered are aggregated into a single returned error.
func Load() (*AppConfig, error) {
	var errs []string

	dbUser := getRequiredEnv("DB_USER", &errs)
	dbPassword := getRequiredEnv("DB_PASSWORD", &errs)
	dbName := getRequiredEnv("DB_NAME", &errs)
	dbHost := getOptionalEnv("DB_HOST", "localhost")
	dbPort := getOptionalEnvInt("DB_PORT", 5432, &errs)
	poolSize := clampPoolSize(getOptionalEnvInt("DB_POOL_SIZE", 10, &errs), "DB_POOL_SIZE", &errs)

	dbConfig := &DBConfig{
		Host:     dbHost,
		Port:     dbPort,
		User:     dbUser,
		Password: dbPassword,
		DBName:   dbName,
		PoolSize: poolSize,
	}

	jwtSecret := getRequiredEnv("JWT_SECRET", &errs)
	accessTokenDuration := getOptionalEnvDuration("JWT_ACCESS_TOKEN_DURATION", DefaultAccessTokenDuration, &errs)

	authConfig := &AuthConfig{
		JWTSecret:           jwtSecret,
		AccessTokenDuration: accessTokenDuration,
	}

	serverConfig := &ServerConfig{
		Port: getOptionalEnv("PORT", "8080"),
	}

	migrationsPath := getOptionalEnv("MIGRATIONS_PATH", "./migrations")

	if len(errs) > 0 {
		return nil, fmt.Errorf("configuration errors:\n- %s", strings.Join(errs, "\n- "))
	}

	return &AppConfig{
		DB:             dbConfig,
		Auth:           authConfig,
		Server:         serverConfig,
		MigrationsPath: migrationsPath,
	}, nil
}
