package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
)

type Config struct {
	AppURL                 string
	DatabaseDriver         string
	DatabaseDSN            string
	LogDir                 string
	RateLimit              int
	RedisAddr              string
	ShutdownTimeoutSeconds int
}

func Load() Config {
	appHost := getEnv("APP_HOST", "127.0.0.1")
	appPort := getEnv("APP_PORT", "8080")
	redisHost := getEnv("REDIS_HOST", "127.0.0.1")
	redisPort := getEnv("REDIS_PORT", "6379")

	cfg := Config{
		AppURL:                 fmt.Sprintf("%s:%s", appHost, appPort),
		DatabaseDriver:         getEnv("DB_DRIVER", "sqlite"),
		DatabaseDSN:            getEnv("DATABASE_DSN", "projects.db"),
		LogDir:                 getEnv("LOG_DIR", "logs"),
		RateLimit:              getEnvAsInt("RATE_LIMIT_PER_MINUTE", 60),
		RedisAddr:              fmt.Sprintf("%s:%s", redisHost, redisPort),
		ShutdownTimeoutSeconds: getEnvAsInt("SHUTDOWN_TIMEOUT_SECONDS", 20),
	}

	validate(cfg)
	return cfg
}

func validate(cfg Config) {
	if cfg.AppURL == "" {
		log.Fatal("APP_URL must not be empty (e.g. 127.0.0.1:8080)")
	}
	if cfg.DatabaseDriver != "sqlite" && cfg.DatabaseDriver != "postgres" {
		log.Fatal("DB_DRIVER must be sqlite or postgres")
	}
	if cfg.DatabaseDSN == "" {
		log.Fatal("DATABASE_DSN must not be empty")
	}
	if cfg.RateLimit <= 0 {
		log.Fatal("RATE_LIMIT_PER_MINUTE must be greater than 0")
	}
}

func getEnv(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func getEnvAsInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		i, err := strconv.Atoi(v)
		if err != nil {
			log.Fatalf("invalid integer value for %s", key)
		}
		return i
	}
	return defaultVal
}
