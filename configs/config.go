package configs

import (
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

type Config struct {
	DBDriver   string
	DBSource   string
	Port       string
	JWTSecret  string
	JWTTTL     time.Duration
	RedisAddr  string
	SessionTTL time.Duration
	BaseURL    string
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg("no .env file, using environment")
	}

	return &Config{
		DBDriver:   getEnv("DB_DRIVER", "sqlite"),
		DBSource:   getEnv("DB_SOURCE", "qr_restaurant.db"),
		Port:       getEnv("PORT", "8000"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),
		JWTTTL:     24 * time.Hour,
		RedisAddr:  getEnv("REDIS_ADDR", "localhost:6379"),
		SessionTTL: 24 * time.Hour,
		BaseURL:    getEnv("BASE_URL", "http://localhost:8000"),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
