package config

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"alexandria-backend/internal/infrastructure/database"
)

// envParser reads typed settings and keeps every parse failure, so one bad
// variable does not hide the next
type envParser struct {
	errs []error
}

func (p *envParser) fail(key, raw string, err error) {
	p.errs = append(p.errs, fmt.Errorf("invalid %s %q: %w", key, raw, err))
}

func (p *envParser) readInt(key, fallback string) int {
	raw := getEnv(key, fallback)
	v, err := strconv.Atoi(raw)
	if err != nil {
		p.fail(key, raw, err)
	}
	return v
}

// readInt32 rejects values outside the int32 range instead of truncating them
func (p *envParser) readInt32(key, fallback string) int32 {
	raw := getEnv(key, fallback)
	v, err := strconv.ParseInt(raw, 10, 32)
	if err != nil {
		p.fail(key, raw, err)
		return 0
	}
	return int32(v)
}

func (p *envParser) readDuration(key, fallback string) time.Duration {
	raw := getEnv(key, fallback)
	v, err := time.ParseDuration(raw)
	if err != nil {
		p.fail(key, raw, err)
	}
	return v
}

func (p *envParser) err() error {
	return errors.Join(p.errs...)
}

// LoadDatabaseConfig reads the PostgreSQL connection, pool and retry settings.
// Range checks live in Config.Validate.
func LoadDatabaseConfig() (*database.DBConfig, error) {
	var p envParser

	cfg := &database.DBConfig{
		Host:     getEnv("DB_HOST", "localhost"),
		Port:     p.readInt("DB_PORT", "5432"),
		Username: getEnv("DB_USER", "alexandria"),
		Password: getEnv("DB_PASSWORD", ""),
		DBName:   getEnv("DB_NAME", "alexandria"),
		SSLMode:  getEnv("DB_SSLMODE", "disable"),

		MaxConns:          p.readInt32("DB_MAX_CONNECTIONS", "25"),
		MinConns:          p.readInt32("DB_MIN_CONNECTIONS", "5"),
		MaxConnLifetime:   p.readDuration("DB_MAX_CONN_LIFETIME", "5m"),
		MaxConnIdleTime:   p.readDuration("DB_MAX_CONN_IDLE_TIME", "1m"),
		HealthCheckPeriod: p.readDuration("DB_HEALTH_CHECK_PERIOD", "1m"),

		MaxRetries:     p.readInt("DB_MAX_RETRIES", "5"),
		RetryDelay:     p.readDuration("DB_RETRY_DELAY", "1s"),
		ConnectTimeout: p.readDuration("DB_CONNECT_TIMEOUT", "10s"),
	}

	if err := p.err(); err != nil {
		return nil, err
	}
	return cfg, nil
}
