package config

import (
	"errors"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	App      AppConfig
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	Dataset  DatasetConfig
	Partner  PartnerConfig
	Export   ExportConfig
}

type AppConfig struct {
	Name        string
	Version     string
	Environment string
}

type ServerConfig struct {
	Port string
}

type DatabaseConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

type RedisConfig struct {
	RedisHost     string
	RedisPort     string
	RedisPassword string
	RedisDB       int
}

type DatasetConfig struct {
	// Directory holding products.csv, lca.csv, seasonality.csv,
	// transport.csv, suppliers.csv and (optionally) brackets.json.
	Dir string
	// TTL in seconds for cached score results.
	ScoreCacheTTL int
}

type PartnerConfig struct {
	// bcrypt hash of the partner API key accepted by the token endpoint.
	APIKeyHash  string
	JWTSecret   string
	TokenTTLMin int
}

type ExportConfig struct {
	WebhookURL        string
	BasicAuthUsername string
	BasicAuthPassword string
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	redisDB, err := strconv.Atoi(getEnv("REDIS_DB", "0"))
	if err != nil {
		return nil, errors.New("invalid redis database")
	}

	cacheTTL, err := strconv.Atoi(getEnv("SCORE_CACHE_TTL_SECONDS", "300"))
	if err != nil {
		return nil, errors.New("invalid score cache ttl")
	}

	tokenTTL, err := strconv.Atoi(getEnv("PARTNER_TOKEN_TTL_MINUTES", "60"))
	if err != nil {
		return nil, errors.New("invalid partner token ttl")
	}

	cfg := &Config{
		App: AppConfig{
			Name:        getEnv("APP_NAME", "Eco Score API"),
			Version:     getEnv("APP_VERSION", "1.0.0"),
			Environment: getEnv("APP_ENV", "development"),
		},
		Server: ServerConfig{
			Port: getEnv("PORT", "8080"),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnv("DB_PORT", "5432"),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Name:     getEnv("DB_NAME", "eco_score"),
			SSLMode:  getEnv("DB_SSL_MODE", "disable"),
		},
		Redis: RedisConfig{
			RedisHost:     getEnv("REDIS_HOST", "localhost"),
			RedisPort:     getEnv("REDIS_PORT", "6379"),
			RedisPassword: getEnv("REDIS_PASSWORD", ""),
			RedisDB:       redisDB,
		},
		Dataset: DatasetConfig{
			Dir:           getEnv("DATA_DIR", "./data"),
			ScoreCacheTTL: cacheTTL,
		},
		Partner: PartnerConfig{
			APIKeyHash:  getEnv("PARTNER_API_KEY_HASH", ""),
			JWTSecret:   getEnv("PARTNER_JWT_SECRET", ""),
			TokenTTLMin: tokenTTL,
		},
		Export: ExportConfig{
			WebhookURL:        getEnv("EXPORT_WEBHOOK_URL", ""),
			BasicAuthUsername: getEnv("EXPORT_BASIC_AUTH_USERNAME", ""),
			BasicAuthPassword: getEnv("EXPORT_BASIC_AUTH_PASSWORD", ""),
		},
	}

	if cfg.Database.Password == "" {
		return nil, errors.New("missing database password")
	}

	if cfg.Partner.JWTSecret == "" {
		return nil, errors.New("missing partner jwt secret")
	}

	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}

	return defaultVal
}
