// Package config handles application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config holds the application configuration.
type Config struct {
	DatabasePath string
	LogLevel     string
	APIAddr      string

	WeatherAPIURL string
	MatchesAPIURL string

	TelegramBotToken string
	TelegramChatID   int64

	CORSAllowOrigins []string
	RateLimit        int
	RateLimitWindow  time.Duration
}

// Load reads configuration from environment variables. Telegram push is
// optional: leaving the token or chat ID unset disables it.
func Load() (*Config, error) {
	dbPath := os.Getenv("DATABASE_PATH")
	if dbPath == "" {
		dbPath = "./data/companion.db"
	}

	logLevel := os.Getenv("LOG_LEVEL")
	if logLevel == "" {
		logLevel = "info"
	}

	apiAddr := os.Getenv("API_ADDR")
	if apiAddr == "" {
		apiAddr = "127.0.0.1:8080"
	}

	weatherURL := os.Getenv("WEATHER_API_URL")
	if weatherURL == "" {
		weatherURL = "http://localhost:9090/api"
	}

	matchesURL := os.Getenv("MATCHES_API_URL")
	if matchesURL == "" {
		matchesURL = "http://localhost:9090/api"
	}

	var chatID int64
	if raw := os.Getenv("TELEGRAM_CHAT_ID"); raw != "" {
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid TELEGRAM_CHAT_ID %q: %w", raw, err)
		}
		chatID = id
	}

	origins := []string{"*"}
	if raw := os.Getenv("CORS_ALLOW_ORIGINS"); raw != "" {
		origins = origins[:0]
		for _, s := range strings.Split(raw, ",") {
			if s = strings.TrimSpace(s); s != "" {
				origins = append(origins, s)
			}
		}
	}

	rateLimit := 120
	if raw := os.Getenv("RATE_LIMIT"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT %q: %w", raw, err)
		}
		rateLimit = n
	}

	window := time.Minute
	if raw := os.Getenv("RATE_LIMIT_WINDOW"); raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid RATE_LIMIT_WINDOW %q: %w", raw, err)
		}
		window = d
	}

	return &Config{
		DatabasePath:     dbPath,
		LogLevel:         logLevel,
		APIAddr:          apiAddr,
		WeatherAPIURL:    weatherURL,
		MatchesAPIURL:    matchesURL,
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChatID:   chatID,
		CORSAllowOrigins: origins,
		RateLimit:        rateLimit,
		RateLimitWindow:  window,
	}, nil
}
