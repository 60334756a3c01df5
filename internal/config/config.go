package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Cast     CastConfig
	Geocode  GeocodeConfig
	MinIO    MinIOConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DatabaseConfig struct {
	Driver          string
	Path            string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	QueryTimeout    time.Duration
	AutoMigrate     bool
}

// CastConfig selects how the actors of a movie are resolved.
type CastConfig struct {
	Strategy string
}

type GeocodeConfig struct {
	BaseURL       string
	UserAgent     string
	HTTPTimeout   time.Duration
	RatePerSecond float64
}

type MinIOConfig struct {
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string
	BucketName      string
	Region          string
	UseSSL          bool
}

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

func Load() *Config {
	return &Config{
		Server: ServerConfig{
			Port:         getEnvOrDefault("SERVER_PORT", "8000"),
			ReadTimeout:  getDurationOrDefault("SERVER_READ_TIMEOUT", 30*time.Second),
			WriteTimeout: getDurationOrDefault("SERVER_WRITE_TIMEOUT", 30*time.Second),
		},
		Database: DatabaseConfig{
			Driver:          getEnvOrDefault("DB_DRIVER", DriverSQLite),
			Path:            getEnvOrDefault("DB_PATH", "movies.db"),
			Host:            getEnvOrDefault("DB_HOST", "localhost"),
			Port:            getEnvOrDefault("DB_PORT", "5432"),
			User:            getEnvOrDefault("DB_USER", "postgres"),
			Password:        getEnvOrDefault("DB_PASSWORD", "postgres"),
			DBName:          getEnvOrDefault("DB_NAME", "movies"),
			SSLMode:         getEnvOrDefault("DB_SSLMODE", "disable"),
			MaxOpenConns:    getIntOrDefault("DB_MAX_OPEN_CONNS", 10),
			MaxIdleConns:    getIntOrDefault("DB_MAX_IDLE_CONNS", 5),
			ConnMaxLifetime: getDurationOrDefault("DB_CONN_MAX_LIFETIME", 5*time.Minute),
			QueryTimeout:    getDurationOrDefault("DB_QUERY_TIMEOUT", 10*time.Second),
			AutoMigrate:     getBoolOrDefault("DB_AUTO_MIGRATE", true),
		},
		Cast: CastConfig{
			Strategy: getEnvOrDefault("CAST_STRATEGY", "join"),
		},
		Geocode: GeocodeConfig{
			BaseURL:       getEnvOrDefault("GEOCODE_BASE_URL", "https://nominatim.openstreetmap.org"),
			UserAgent:     getEnvOrDefault("GEOCODE_USER_AGENT", "movie-catalog/1.0 (+https://github.com/movie-catalog)"),
			HTTPTimeout:   getDurationOrDefault("GEOCODE_HTTP_TIMEOUT", 10*time.Second),
			RatePerSecond: getFloatOrDefault("GEOCODE_RATE_PER_SECOND", 1),
		},
		MinIO: MinIOConfig{
			Endpoint:        getEnvOrDefault("MINIO_ENDPOINT", ""),
			AccessKeyID:     getEnvOrDefault("MINIO_ACCESS_KEY_ID", ""),
			SecretAccessKey: getEnvOrDefault("MINIO_SECRET_ACCESS_KEY", ""),
			BucketName:      getEnvOrDefault("MINIO_BUCKET", "movie-imports"),
			Region:          getEnvOrDefault("MINIO_REGION", "us-east-1"),
			UseSSL:          getBoolOrDefault("MINIO_USE_SSL", true),
		},
	}
}

// DSN returns the data source name for the configured driver.
func (c DatabaseConfig) DSN() string {
	if c.Driver == DriverPostgres {
		return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s TimeZone=UTC connect_timeout=10",
			c.Host, c.User, c.Password, c.DBName, c.Port, c.SSLMode)
	}
	return c.Path
}

// ImportBucketEnabled reports whether legacy imports may be read from object storage.
func (c *Config) ImportBucketEnabled() bool {
	return c.MinIO.Endpoint != ""
}

func (c *Config) Validate() error {
	switch c.Database.Driver {
	case DriverSQLite:
		if c.Database.Path == "" {
			return fmt.Errorf("DB_PATH is required for the sqlite driver")
		}
	case DriverPostgres:
		if c.Database.Host == "" {
			return fmt.Errorf("DB_HOST is required for the postgres driver")
		}
	default:
		return fmt.Errorf("unsupported DB_DRIVER %q", c.Database.Driver)
	}
	if c.Cast.Strategy != "join" && c.Cast.Strategy != "preload" {
		return fmt.Errorf("CAST_STRATEGY must be join or preload, got %q", c.Cast.Strategy)
	}
	if c.Geocode.RatePerSecond <= 0 {
		return fmt.Errorf("GEOCODE_RATE_PER_SECOND must be positive")
	}
	if c.ImportBucketEnabled() && (c.MinIO.AccessKeyID == "" || c.MinIO.SecretAccessKey == "") {
		return fmt.Errorf("MINIO_ACCESS_KEY_ID and MINIO_SECRET_ACCESS_KEY are required when MINIO_ENDPOINT is set")
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getIntOrDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getFloatOrDefault(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatVal, err := strconv.ParseFloat(value, 64); err == nil {
			return floatVal
		}
	}
	return defaultValue
}

func getDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if duration, err := time.ParseDuration(value); err == nil {
			return duration
		}
	}
	return defaultValue
}

func getBoolOrDefault(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
