package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

// Config holds operational settings loaded from environment variables.
// The scope of the chart (cutoff year, anchor president, source URLs) is
// fixed in the app package and is not configurable.
type Config struct {
	CacheDir  string
	LogLevel  log.Level
	Port      string
	ChartPath string
}

// Load reads configuration from environment variables, after loading an
// optional .env file. Variables already set in the shell take precedence.
func Load() (*Config, error) {
	_ = godotenv.Load()

	level, err := log.ParseLevel(getEnv("LOG_LEVEL", "info"))
	if err != nil {
		return nil, fmt.Errorf("invalid LOG_LEVEL: %w", err)
	}

	port := getEnv("PORT", "8080")
	if n, err := strconv.Atoi(port); err != nil || n < 1 || n > 65535 {
		return nil, fmt.Errorf("invalid PORT %q: must be a number between 1 and 65535", port)
	}

	return &Config{
		CacheDir:  getEnv("CACHE_DIR", "."),
		LogLevel:  level,
		Port:      port,
		ChartPath: getEnv("CHART_PATH", "deficits.png"),
	}, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultVal
}
