package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cache    CacheConfig
	App      AppConfig

	// Warnings collects problems found while loading that did not stop it.
	// They are logged once the logger exists.
	Warnings []string
}

type ServerConfig struct {
	Port               string
	CORSAllowedOrigins []string
	ShutdownTimeout    time.Duration
}

type DatabaseConfig struct {
	Driver       string
	Host         string
	Port         int
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
	MaxIdleConns int
}

type CacheConfig struct {
	RedisURL string
	TTL      time.Duration
}

type AppConfig struct {
	Name        string
	Environment string
	LogLevel    string
	Version     string
}

func Load() (*Config, error) {
	var warnings []string

	// Load .env file if it exists (ignore error in production)
	if err := godotenv.Load(); err != nil {
		warnings = append(warnings, "no .env file found, using environment variables")
	}

	l := loader{}
	cfg := &Config{
		Server: ServerConfig{
			Port:               getEnv("PORT", "8080"),
			CORSAllowedOrigins: getEnvAsList("CORS_ALLOWED_ORIGINS", []string{"*"}),
			ShutdownTimeout:    l.duration("SHUTDOWN_TIMEOUT", 10*time.Second),
		},
		Database: DatabaseConfig{
			Driver:       getEnv("DB_DRIVER", DriverPostgres),
			Host:         getEnv("DB_HOST", "localhost"),
			Port:         l.int("DB_PORT", 5432),
			User:         getEnv("DB_USER", "postgres"),
			Password:     getEnv("DB_PASSWORD", ""),
			Name:         getEnv("DB_NAME", "portfolio"),
			SSLMode:      getEnv("DB_SSLMODE", "disable"),
			MaxOpenConns: l.int("DB_MAX_OPEN_CONNS", 25),
			MaxIdleConns: l.int("DB_MAX_IDLE_CONNS", 5),
		},
		Cache: CacheConfig{
			RedisURL: getEnv("REDIS_URL", ""),
			TTL:      l.duration("CACHE_TTL", 5*time.Minute),
		},
		App: AppConfig{
			Name:        getEnv("APP_NAME", "portfolio-api"),
			Environment: getEnv("APP_ENV", "development"),
			LogLevel:    getEnv("LOG_LEVEL", "info"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
	}
	cfg.Warnings = append(warnings, l.warnings...)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.Server.Port == "" {
		return fmt.Errorf("PORT is required")
	}

	switch c.Database.Driver {
	case DriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required")
		}
		if c.Database.Name == "" {
			return fmt.Errorf("DB_NAME is required")
		}
	case DriverMemory:
	default:
		return fmt.Errorf("DB_DRIVER must be %q or %q, got %q", DriverPostgres, DriverMemory, c.Database.Driver)
	}

	if c.Cache.TTL <= 0 {
		return fmt.Errorf("CACHE_TTL must be positive")
	}

	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("SHUTDOWN_TIMEOUT must be positive")
	}

	return nil
}

// IsDevelopment reports whether the service runs with local defaults.
func (c *Config) IsDevelopment() bool {
	return c.App.Environment == "development"
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsList(key string, defaultValue []string) []string {
	raw := os.Getenv(key)
	if raw == "" {
		return defaultValue
	}
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		return defaultValue
	}
	return out
}

// loader parses typed values and remembers the ones it had to default.
type loader struct {
	warnings []string
}

func (l *loader) int(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		l.warnings = append(l.warnings, fmt.Sprintf("invalid integer for %s, using default: %d", key, defaultValue))
		return defaultValue
	}

	return value
}

func (l *loader) duration(key string, defaultValue time.Duration) time.Duration {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}

	value, err := time.ParseDuration(valueStr)
	if err != nil {
		l.warnings = append(l.warnings, fmt.Sprintf("invalid duration for %s, using default: %s", key, defaultValue))
		return defaultValue
	}

	return value
}
