package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	CatalogStorePostgres = "postgres"
	CatalogStoreMongo    = "mongo"
)

type Config struct {
	App            AppConfig
	Server         ServerConfig
	Database       DatabaseConfig
	Mongo          MongoConfig
	Redis          RedisConfig
	JWT            JWTConfig
	Embedding      EmbeddingConfig
	Recommendation RecommendationConfig
}

type AppConfig struct {
	Name         string
	Version      string
	Environment  string
	CatalogStore string
}

type ServerConfig struct {
	Port           string
	CORSOrigins    []string
	RequestTimeout time.Duration
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type MongoConfig struct {
	URI      string
	Database string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
	PoolSize      int
	MinIdleConns  int
	// CatalogTTL of zero disables the catalog cache.
	CatalogTTL time.Duration
}

type JWTConfig struct {
	SecretKey string
	TTL       time.Duration
}

type EmbeddingConfig struct {
	URL     string
	APIKey  string
	Timeout time.Duration
}

type RecommendationConfig struct {
	SimilarityThreshold float64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	poolSize, err := strconv.Atoi(getEnv("REDIS_POOL_SIZE", "10"))
	if err != nil || poolSize <= 0 {
		return nil, errors.New("invalid redis pool size")
	}

	minIdle, err := strconv.Atoi(getEnv("REDIS_MIN_IDLE_CONNS", "2"))
	if err != nil || minIdle < 0 {
		return nil, errors.New("invalid redis min idle conns")
	}

	threshold, err := strconv.ParseFloat(getEnv("SIMILARITY_THRESHOLD", "0.8"), 64)
	if err != nil {
		return nil, fmt.Errorf("invalid similarity threshold: %w", err)
	}

	catalogTTL, err := time.ParseDuration(getEnv("CATALOG_CACHE_TTL", "0s"))
	if err != nil {
		return nil, fmt.Errorf("invalid catalog cache ttl: %w", err)
	}

	requestTimeout, err := time.ParseDuration(getEnv("REQUEST_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("invalid request timeout: %w", err)
	}

	jwtTTL, err := time.ParseDuration(getEnv("JWT_TTL", "24h"))
	if err != nil {
		return nil, fmt.Errorf("invalid jwt ttl: %w", err)
	}

	embeddingTimeout, err := time.ParseDuration(getEnv("DEEPSEEK_TIMEOUT", "15s"))
	if err != nil {
		return nil, fmt.Errorf("invalid embedding timeout: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:         getEnv("APP_NAME", "Bob the Bar AI"),
			Version:      getEnv("APP_VERSION", "1.0.0"),
			Environment:  getEnv("APP_ENV", "development"),
			CatalogStore: strings.ToLower(getEnv("CATALOG_STORE", CatalogStorePostgres)),
		},
		Server: ServerConfig{
			Port:           getEnv("PORT", "5000"),
			CORSOrigins:    splitList(getEnv("CORS_ORIGIN", "http://localhost:3000")),
			RequestTimeout: requestTimeout,
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "bob_the_bar"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Mongo: MongoConfig{
			URI:      getEnv("MONGO_URI", "mongodb://localhost:27017"),
			Database: getEnv("MONGO_DB_NAME", "bob-the-bar-ai"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
			PoolSize:      poolSize,
			MinIdleConns:  minIdle,
			CatalogTTL:    catalogTTL,
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET", ""),
			TTL:       jwtTTL,
		},
		Embedding: EmbeddingConfig{
			URL:     getEnv("DEEPSEEK_API_URL", ""),
			APIKey:  getEnv("DEEPSEEK_API_KEY", ""),
			Timeout: embeddingTimeout,
		},
		Recommendation: RecommendationConfig{
			SimilarityThreshold: threshold,
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Validate() error {
	if c.JWT.SecretKey == "" {
		return errors.New("missing jwt secret")
	}

	if t := c.Recommendation.SimilarityThreshold; !(t > 0 && t <= 1) {
		return fmt.Errorf("similarity threshold must be in (0,1], got %v", c.Recommendation.SimilarityThreshold)
	}

	// users live in postgres whichever store holds the catalog
	if c.Database.Password == "" {
		return errors.New("missing database password")
	}

	switch c.App.CatalogStore {
	case CatalogStorePostgres:
	case CatalogStoreMongo:
		if c.Mongo.URI == "" {
			return errors.New("missing mongo uri")
		}
	default:
		return fmt.Errorf("unknown catalog store %q", c.App.CatalogStore)
	}

	return nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}

func splitList(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
