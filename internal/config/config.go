package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	"github.com/openlearnhq/curriculum/internal/store"
)

type Config struct {
	Env         string
	DBDriver    string // sqlite or postgres
	DBPath      string
	DBDSN       string
	RedisAddr   string
	Compression string // nop, gzip, brotli or lz4
}

// LoadConfig reads the environment, optionally seeded from a .env file.
func LoadConfig() *Config {
	_ = godotenv.Load()

	return &Config{
		Env:         getEnv("ENV", "dev"),
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBPath:      getEnv("DB_PATH", ".tmp/curriculum.db"),
		DBDSN:       getEnv("DB_DSN", ""),
		RedisAddr:   getEnv("REDIS_ADDR", ""),
		Compression: getEnv("COMPRESSION", "nop"),
	}
}

// GetStore opens the configured database backend.
func GetStore(cfg *Config) store.Store {
	provider, err := store.NewProvider(cfg.DBDriver, cfg.DBPath, cfg.DBDSN)
	if err != nil {
		logrus.Fatalf("invalid database config: %v", err)
	}

	st, err := provider.Provide()
	if err != nil {
		logrus.Fatalf("error opening database: %v", err)
	}

	return st
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
