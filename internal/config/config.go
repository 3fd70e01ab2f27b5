package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"alexandria-backend/internal/infrastructure/database"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

// Config holds the whole application configuration, populated from environment variables
type Config struct {
	App      AppConfig
	Log      LogConfig
	Storage  StorageConfig
	Database database.DBConfig
	Redis    RedisConfig
	Cache    CacheConfig
}

type AppConfig struct {
	Name        string
	Environment string // development, staging, production
	Port        string
	Version     string
}

type LogConfig struct {
	Level string
}

// StorageConfig selects the persistence gateway
type StorageConfig struct {
	Driver     string // postgres | sqlite
	SQLitePath string
}

type RedisConfig struct {
	Host     string
	Password string
	DB       int
}

type CacheConfig struct {
	Enabled bool
	TTL     time.Duration
}

// Load reads the configuration from environment variables and validates it
func Load() (*Config, error) {
	dbCfg, err := LoadDatabaseConfig()
	if err != nil {
		return nil, err
	}

	ttl, err := time.ParseDuration(getEnv("CACHE_TTL", "5m"))
	if err != nil {
		return nil, fmt.Errorf("invalid CACHE_TTL: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Alexandria API"),
			Environment: getEnv("APP_ENV", "development"),
			Port:        getEnv("APP_PORT", "8080"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Storage: StorageConfig{
			Driver:     getEnv("STORAGE_DRIVER", DriverPostgres),
			SQLitePath: getEnv("SQLITE_PATH", "alexandria.db"),
		},
		Database: *dbCfg,
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost:6379"),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvInt("REDIS_DB", 0),
		},
		Cache: CacheConfig{
			Enabled: getEnvBool("CACHE_ENABLED", false),
			TTL:     ttl,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks the settings the application cannot start without
func (c *Config) Validate() error {
	return validation.ValidateStruct(c,
		validation.Field(&c.App),
		validation.Field(&c.Storage),
		validation.Field(&c.Database,
			validation.By(func(interface{}) error {
				if c.Storage.Driver != DriverPostgres {
					return nil
				}
				return validation.ValidateStruct(&c.Database,
					validation.Field(&c.Database.Host, validation.Required),
					validation.Field(&c.Database.DBName, validation.Required),
					validation.Field(&c.Database.Password,
						validation.When(c.App.Environment == "production",
							validation.Required.Error("DB_PASSWORD must be set in production"))),
					validation.Field(&c.Database.Port, validation.Required, validation.Min(1), validation.Max(65535)),
					validation.Field(&c.Database.MaxConns,
						validation.Required.Error("DB_MAX_CONNECTIONS must be at least 1"),
						validation.Min(int32(1)).Error("DB_MAX_CONNECTIONS must be at least 1")),
					validation.Field(&c.Database.MinConns,
						validation.Min(int32(0)).Error("DB_MIN_CONNECTIONS must not be negative"),
						validation.Max(c.Database.MaxConns).Error("DB_MIN_CONNECTIONS must not exceed DB_MAX_CONNECTIONS")),
					validation.Field(&c.Database.MaxConnLifetime, positiveDuration("DB_MAX_CONN_LIFETIME")...),
					validation.Field(&c.Database.MaxConnIdleTime, positiveDuration("DB_MAX_CONN_IDLE_TIME")...),
					validation.Field(&c.Database.HealthCheckPeriod, positiveDuration("DB_HEALTH_CHECK_PERIOD")...),
					validation.Field(&c.Database.MaxRetries,
						validation.Required.Error("DB_MAX_RETRIES must be at least 1"),
						validation.Min(1).Error("DB_MAX_RETRIES must be at least 1")),
					validation.Field(&c.Database.RetryDelay, positiveDuration("DB_RETRY_DELAY")...),
					validation.Field(&c.Database.ConnectTimeout, positiveDuration("DB_CONNECT_TIMEOUT")...),
				)
			}),
		),
		validation.Field(&c.Cache,
			validation.By(func(interface{}) error {
				if !c.Cache.Enabled {
					return nil
				}
				if c.Redis.Host == "" {
					return fmt.Errorf("REDIS_HOST must be set when the cache is enabled")
				}
				return validation.Validate(c.Cache.TTL, validation.Min(time.Second).Error("CACHE_TTL must be at least 1s"))
			}),
		),
	)
}

func (a AppConfig) Validate() error {
	return validation.ValidateStruct(&a,
		validation.Field(&a.Port, validation.Required),
		validation.Field(&a.Environment, validation.In("development", "staging", "production")),
	)
}

func (s StorageConfig) Validate() error {
	return validation.ValidateStruct(&s,
		validation.Field(&s.Driver, validation.Required, validation.In(DriverPostgres, DriverSQLite)),
		validation.Field(&s.SQLitePath, validation.When(s.Driver == DriverSQLite, validation.Required)),
	)
}

// positiveDuration rejects zero and negative durations; ozzo skips zero values
// for Min, so Required carries the zero case
func positiveDuration(key string) []validation.Rule {
	msg := key + " must be positive"
	return []validation.Rule{
		validation.Required.Error(msg),
		validation.Min(time.Duration(1)).Error(msg),
	}
}

// Helper functions
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.Atoi(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if valueStr == "" {
		return defaultValue
	}
	value, err := strconv.ParseBool(valueStr)
	if err != nil {
		return defaultValue
	}
	return value
}
