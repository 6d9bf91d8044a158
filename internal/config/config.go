package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const (
	RateSourceEmbedded = "embedded"
	RateSourceDir      = "dir"
	RateSourcePostgres = "postgres"
)

type Config struct {
	Port             string
	GinMode          string
	RateSource       string
	RateDir          string
	StrictRateTables bool
	DBHost           string
	DBPort           string
	DBUser           string
	DBPassword       string
	DBName           string
	DBSSLMode        string
	AutoMigrate      bool
}

// Load reads configuration from the environment. Values from a .env file in
// the working directory are used for keys not already set.
func Load() *Config {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Warn().Err(err).Msg("could not read .env file")
	}

	return &Config{
		Port:             getEnv("PORT", "8080"),
		GinMode:          getEnv("GIN_MODE", "debug"),
		RateSource:       getEnv("RATE_SOURCE", RateSourceEmbedded),
		RateDir:          getEnv("RATE_DIR", "feedata"),
		StrictRateTables: getEnv("STRICT_RATE_TABLES", "false") == "true",
		DBHost:           getEnv("DB_HOST", "localhost"),
		DBPort:           getEnv("DB_PORT", "5432"),
		DBUser:           getEnv("DB_USER", "feewhiz"),
		DBPassword:       getEnv("DB_PASSWORD", "feewhiz_secret"),
		DBName:           getEnv("DB_NAME", "feewhiz"),
		DBSSLMode:        getEnv("DB_SSLMODE", "disable"),
		AutoMigrate:      getEnv("AUTO_MIGRATE", "false") == "true",
	}
}

func (c *Config) Validate() error {
	switch c.RateSource {
	case RateSourceEmbedded, RateSourceDir, RateSourcePostgres:
	default:
		return fmt.Errorf("unknown RATE_SOURCE %q", c.RateSource)
	}
	if c.RateSource == RateSourceDir && c.RateDir == "" {
		return fmt.Errorf("RATE_DIR is required when RATE_SOURCE=%s", RateSourceDir)
	}
	return nil
}

func (c *Config) DatabaseURL() string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		c.DBUser, c.DBPassword, c.DBHost, c.DBPort, c.DBName, c.DBSSLMode)
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
