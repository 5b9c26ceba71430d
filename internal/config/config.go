package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ruckdata/rugby-crawler/internal/platform/logging"
)

// Config stores runtime configuration for the crawler.
type Config struct {
	ServiceName    string
	StartDateFile  string        `validate:"required"`
	EndDateFile    string        `validate:"required"`
	OutputFile     string        `validate:"required"`
	ErrorFile      string        `validate:"required"`
	ESPNBaseURL    string        `validate:"required,url"`
	ESPNUserAgent  string        `validate:"required"`
	ESPNTimeout    time.Duration `validate:"min=0"`
	ESPNMaxRetries int           `validate:"min=0"`
	MaxWorkers     int           `validate:"min=1"`
	Leagues        []string      `validate:"min=1,dive,required"`
	LogLevel       logging.Level
}

// Competitions the crawler cares about, keyed by the provider's league slug.
var defaultLeagues = []string{
	// Northern hemisphere
	"267979",
	"270557",
	"270559",
	"271937",
	"272073",
	// International
	"164205",
	"180659",
	"244293",
	"289234",
	// Super Rugby
	"242041",
}

const (
	defaultBaseURL   = "http://site.web.api.espn.com"
	defaultUserAgent = "Mozilla/5.0 (Windows NT 6.1; Win64; x64; rv:62.0) Gecko/20100101 Firefox/62.0"
)

func Load() (Config, error) {
	espnTimeout, err := time.ParseDuration(getEnv("ESPN_TIMEOUT", "0s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_TIMEOUT: %w", err)
	}
	if espnTimeout < 0 {
		return Config{}, fmt.Errorf("ESPN_TIMEOUT must be >= 0")
	}

	espnMaxRetries, err := getEnvAsInt("ESPN_MAX_RETRIES", 0)
	if err != nil {
		return Config{}, fmt.Errorf("parse ESPN_MAX_RETRIES: %w", err)
	}
	if espnMaxRetries < 0 {
		return Config{}, fmt.Errorf("ESPN_MAX_RETRIES must be >= 0")
	}

	maxWorkers, err := getEnvAsInt("CRAWLER_MAX_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse CRAWLER_MAX_WORKERS: %w", err)
	}
	if maxWorkers < 1 {
		return Config{}, fmt.Errorf("CRAWLER_MAX_WORKERS must be >= 1")
	}

	leagues := splitCSV(getEnv("CRAWLER_LEAGUES", ""))
	if len(leagues) == 0 {
		leagues = defaultLeagues
	}

	cfg := Config{
		ServiceName:    getEnv("APP_SERVICE_NAME", "rugby-crawler"),
		StartDateFile:  getEnv("CRAWLER_START_DATE_FILE", "startdate.txt"),
		EndDateFile:    getEnv("CRAWLER_END_DATE_FILE", "enddate.txt"),
		OutputFile:     getEnv("CRAWLER_OUTPUT_FILE", "games.csv"),
		ErrorFile:      getEnv("CRAWLER_ERROR_FILE", "errors.txt"),
		ESPNBaseURL:    strings.TrimRight(getEnv("ESPN_BASE_URL", defaultBaseURL), "/"),
		ESPNUserAgent:  getEnv("ESPN_USER_AGENT", defaultUserAgent),
		ESPNTimeout:    espnTimeout,
		ESPNMaxRetries: espnMaxRetries,
		MaxWorkers:     maxWorkers,
		Leagues:        leagues,
		LogLevel:       parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("validate config: %w", err)
	}

	return cfg, nil
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}
