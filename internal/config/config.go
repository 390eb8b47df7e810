package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	DriverMySQL  = "mysql"
	DriverSQLite = "sqlite"
)

type Config struct {
	Database DatabaseConfig
	Server   ServerConfig
	CORS     CORSConfig
	Log      LogConfig
	Staff    StaffConfig
	Metrics  MetricsConfig
}

type DatabaseConfig struct {
	Driver   string
	Host     string
	Port     string
	User     string
	Password string
	Database string
	Path     string // sqlite file, only used when Driver is sqlite
	LogLevel string
}

type ServerConfig struct {
	Port            string
	GinMode         string
	ShutdownTimeout time.Duration
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// StaffConfig guards the mutating endpoints used by the staff panel.
// An empty APIKeyHash disables the guard.
type StaffConfig struct {
	APIKeyHash string
}

type MetricsConfig struct {
	Enabled bool
}

func LoadConfig() *Config {
	// Load .env file if it exists
	_ = godotenv.Load()

	return &Config{
		Database: DatabaseConfig{
			Driver:   strings.ToLower(getEnv("DB_DRIVER", DriverMySQL)),
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "3306"),
			User:     getEnv("DB_USER", "root"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "hospital_display"),
			Path:     getEnv("DB_PATH", "hospital_display.db"),
			LogLevel: getEnv("DB_LOG_LEVEL", "warn"),
		},
		Server: ServerConfig{
			Port:            getEnv("PORT", "8080"),
			GinMode:         getEnv("GIN_MODE", "debug"),
			ShutdownTimeout: parseDuration(getEnv("SHUTDOWN_TIMEOUT", "15s"), 15*time.Second),
		},
		CORS: CORSConfig{
			AllowedOrigins: parseOrigins(getEnv("ALLOWED_ORIGINS", "http://localhost:3000,http://localhost:5000")),
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "json"),
		},
		Staff: StaffConfig{
			APIKeyHash: getEnv("STAFF_API_KEY_HASH", ""),
		},
		Metrics: MetricsConfig{
			Enabled: parseBool(getEnv("METRICS_ENABLED", "true"), true),
		},
	}
}

// Validate checks the values that cannot be defaulted sensibly
func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverMySQL:
		if c.Database.Host == "" || c.Database.Database == "" {
			return fmt.Errorf("DB_HOST and DB_NAME are required for the %s driver", DriverMySQL)
		}
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for the %s driver", DriverSQLite)
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q (want %s or %s)", c.Database.Driver, DriverMySQL, DriverSQLite)
	}

	if c.Server.Port == "" {
		return fmt.Errorf("PORT must not be empty")
	}
	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func parseDuration(s string, fallback time.Duration) time.Duration {
	duration, err := time.ParseDuration(s)
	if err != nil {
		log.Warn().Str("value", s).Dur("fallback", fallback).Msg("Invalid duration format, using default")
		return fallback
	}
	return duration
}

func parseBool(s string, fallback bool) bool {
	b, err := strconv.ParseBool(s)
	if err != nil {
		return fallback
	}
	return b
}

func parseOrigins(s string) []string {
	origins := []string{}
	for _, origin := range strings.Split(s, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}
