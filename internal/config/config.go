// Package config reads process settings from .env files and the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

// Catalog backends.
const (
	CatalogFile     = "file"
	CatalogPostgres = "postgres"
)

// ErrUnknownCatalog is returned by Validate for an unsupported backend name.
var ErrUnknownCatalog = errors.New("config: unknown catalog backend")

// Config is the resolved process configuration.
type Config struct {
	Catalog     string // LODGENET_CATALOG: file|postgres
	CatalogFile string // LODGENET_CATALOG_FILE
	HTTPAddr    string // LODGENET_HTTP_ADDR
	CacheTTL    time.Duration
	LogLevel    string
	LogFormat   string
	PG          Postgres
	Redis       Redis
}

// Postgres holds PG_* settings.
type Postgres struct {
	Host     string
	Port     string
	User     string
	Password string
	DB       string
	SSLMode  string
	MaxOpen  int
	MaxIdle  int
}

// Redis holds REDIS_* settings. The lodge cache is enabled only when
// REDIS_HOST is set.
type Redis struct {
	Host string
	Port string
	Pass string
	DB   int
}

// Load reads the given .env files (missing files are ignored; variables
// already in the environment win) and then the environment.
func Load(envFiles ...string) Config {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		_ = godotenv.Load(f)
	}

	return FromEnv()
}

// FromEnv builds a Config from the current environment with defaults.
func FromEnv() Config {
	return Config{
		Catalog:     envOr("LODGENET_CATALOG", CatalogFile),
		CatalogFile: envOr("LODGENET_CATALOG_FILE", "lodges.yaml"),
		HTTPAddr:    envOr("LODGENET_HTTP_ADDR", ":8080"),
		CacheTTL:    envDuration("LODGENET_CACHE_TTL", 10*time.Minute),
		LogLevel:    os.Getenv("LOG_LEVEL"),
		LogFormat:   os.Getenv("LOG_FORMAT"),
		PG: Postgres{
			Host:     envOr("PG_HOST", "localhost"),
			Port:     envOr("PG_PORT", "5432"),
			User:     envOr("PG_USER", "postgres"),
			Password: os.Getenv("PG_PASSWORD"),
			DB:       envOr("PG_DB", "lodgenet"),
			SSLMode:  envOr("PG_SSLMODE", "disable"),
			MaxOpen:  envInt("PG_MAX_OPEN_CONNS", 10),
			MaxIdle:  envInt("PG_MAX_IDLE_CONNS", 5),
		},
		Redis: Redis{
			Host: os.Getenv("REDIS_HOST"),
			Port: envOr("REDIS_PORT", "6379"),
			Pass: os.Getenv("REDIS_PASS"),
			DB:   envInt("REDIS_DB", 0),
		},
	}
}

// Validate checks cross-field constraints.
func (c Config) Validate() error {
	switch c.Catalog {
	case CatalogFile:
		if c.CatalogFile == "" {
			return fmt.Errorf("config: LODGENET_CATALOG_FILE is empty")
		}
	case CatalogPostgres:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownCatalog, c.Catalog)
	}

	return nil
}

// DSN renders the lib/pq connection URL.
func (p Postgres) DSN() string {
	dsn := "postgres://" + p.User
	if p.Password != "" {
		dsn += ":" + p.Password
	}

	return dsn + "@" + p.Host + ":" + p.Port + "/" + p.DB + "?sslmode=" + p.SSLMode
}

// Enabled reports whether a Redis host is configured.
func (r Redis) Enabled() bool { return r.Host != "" }

// Addr returns host:port.
func (r Redis) Addr() string { return r.Host + ":" + r.Port }

// Options returns go-redis client options.
func (r Redis) Options() *redis.Options {
	return &redis.Options{Addr: r.Addr(), Password: r.Pass, DB: r.DB}
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}

	return def
}

// envInt ignores values that do not parse or are negative.
func envInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n >= 0 {
			return n
		}
	}

	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}

	return def
}
