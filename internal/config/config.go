// Package config loads the process configuration once at startup.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config holds every externally supplied setting. It is built once by Load
// and passed into constructors; nothing reads the environment afterwards.
type Config struct {
	AppHost   string
	AppPort   string
	LogLevel  string
	LogFormat string // json or console

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	CatalogCacheTTL   time.Duration

	KafkaBrokers []string // empty disables event publishing
	KafkaTopic   string

	GRPCHealthPort string

	JWTSecretKey string
	JWTExp       time.Duration
	BcryptCost   int

	GoogleBooksURL string
	GoogleAPIKey   string
	NYTBooksURL    string
	NYTAPIKey      string
	NYTListName    string
	CatalogTimeout time.Duration

	AuthRateLimitRPS   float64
	AuthRateLimitBurst int
}

// Load reads environment variables, first loading them from the file at path
// when it exists, and applies defaults for anything unset.
func Load(path string) (*Config, error) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	var err error
	atoi := func(key, defaultValue string) int {
		if err != nil {
			return 0
		}
		var n int
		n, err = strconv.Atoi(getEnv(key, defaultValue))
		if err != nil {
			err = fmt.Errorf("%s: %w", key, err)
		}
		return n
	}

	cfg := &Config{}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "3001")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")
	cfg.LogFormat = getEnv("APP_LOG_FORMAT", "json")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "bookmarker_db")
	cfg.PGPort = atoi("POSTGRES_PORT", "5432")
	cfg.PGMaxOpenConns = atoi("POSTGRES_MAX_OPEN_CONNS", "16")
	cfg.PGMaxIdleConns = atoi("POSTGRES_MAX_IDLE_CONNS", "8")

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	cfg.RedisPort = atoi("REDIS_PORT", "6379")
	cfg.RedisDB = atoi("REDIS_DB", "0")
	cfg.RedisPoolSize = atoi("REDIS_POOL_SIZE", "10")
	cfg.RedisMinIdleConns = atoi("REDIS_MIN_IDLE_CONNS", "2")
	cfg.CatalogCacheTTL = time.Duration(atoi("CATALOG_CACHE_TTL_SECOND", "300")) * time.Second

	// Kafka config
	if brokers := getEnv("KAFKA_BROKERS", ""); brokers != "" {
		for _, b := range strings.Split(brokers, ",") {
			if b = strings.TrimSpace(b); b != "" {
				cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
			}
		}
	}
	cfg.KafkaTopic = getEnv("KAFKA_TOPIC", "bookshelf-events")

	// gRPC health config
	cfg.GRPCHealthPort = getEnv("GRPC_HEALTH_PORT", "50051")

	// Auth config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	cfg.JWTExp = time.Duration(atoi("JWT_EXP_SECOND", "86400")) * time.Second
	cfg.BcryptCost = atoi("BCRYPT_COST", "12")

	// Catalog config
	cfg.GoogleBooksURL = getEnv("GOOGLE_BOOKS_URL", "https://www.googleapis.com/books/v1")
	cfg.GoogleAPIKey = getEnv("GOOGLE_API_KEY", "")
	cfg.NYTBooksURL = getEnv("NYT_BOOKS_URL", "https://api.nytimes.com/svc/books/v3")
	cfg.NYTAPIKey = getEnv("NYT_API_KEY", "")
	cfg.NYTListName = getEnv("NYT_LIST_NAME", "combined-print-and-e-book-fiction")
	cfg.CatalogTimeout = time.Duration(atoi("CATALOG_TIMEOUT_SECOND", "10")) * time.Second

	cfg.AuthRateLimitBurst = atoi("AUTH_RATE_LIMIT_BURST", "10")
	if err != nil {
		return nil, err
	}

	rps, perr := strconv.ParseFloat(getEnv("AUTH_RATE_LIMIT_RPS", "5"), 64)
	if perr != nil {
		return nil, fmt.Errorf("AUTH_RATE_LIMIT_RPS: %w", perr)
	}
	cfg.AuthRateLimitRPS = rps

	return cfg, nil
}

// PostgresDSN returns the connection string for the pgx driver.
func (c *Config) PostgresDSN() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		c.PGUser, c.PGPassword, c.PGHost, c.PGPort, c.PGDB)
}

// RedisAddr returns host:port of the catalog cache.
func (c *Config) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.RedisHost, c.RedisPort)
}

// HTTPAddr returns the HTTP listen address.
func (c *Config) HTTPAddr() string {
	return fmt.Sprintf("%s:%s", c.AppHost, c.AppPort)
}
