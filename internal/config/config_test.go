package config

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var configEnvKeys = []string{
	"DATABASE_PATH", "LOG_LEVEL", "API_ADDR",
	"WEATHER_API_URL", "MATCHES_API_URL",
	"TELEGRAM_BOT_TOKEN", "TELEGRAM_CHAT_ID",
	"CORS_ALLOW_ORIGINS", "RATE_LIMIT", "RATE_LIMIT_WINDOW",
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		env     map[string]string
		want    *Config
		wantErr bool
	}{
		{
			name: "defaults",
			env:  map[string]string{},
			want: &Config{
				DatabasePath:     "./data/companion.db",
				LogLevel:         "info",
				APIAddr:          "127.0.0.1:8080",
				WeatherAPIURL:    "http://localhost:9090/api",
				MatchesAPIURL:    "http://localhost:9090/api",
				CORSAllowOrigins: []string{"*"},
				RateLimit:        120,
				RateLimitWindow:  time.Minute,
			},
		},
		{
			name: "all values set",
			env: map[string]string{
				"DATABASE_PATH":      "/tmp/companion.db",
				"LOG_LEVEL":          "debug",
				"API_ADDR":           ":9000",
				"WEATHER_API_URL":    "https://wx.example.com/api",
				"MATCHES_API_URL":    "https://matches.example.com/api",
				"TELEGRAM_BOT_TOKEN": "tok",
				"TELEGRAM_CHAT_ID":   "12345",
				"CORS_ALLOW_ORIGINS": "https://a.example.com, https://b.example.com",
				"RATE_LIMIT":         "60",
				"RATE_LIMIT_WINDOW":  "30s",
			},
			want: &Config{
				DatabasePath:     "/tmp/companion.db",
				LogLevel:         "debug",
				APIAddr:          ":9000",
				WeatherAPIURL:    "https://wx.example.com/api",
				MatchesAPIURL:    "https://matches.example.com/api",
				TelegramBotToken: "tok",
				TelegramChatID:   12345,
				CORSAllowOrigins: []string{"https://a.example.com", "https://b.example.com"},
				RateLimit:        60,
				RateLimitWindow:  30 * time.Second,
			},
		},
		{
			name:    "invalid chat id",
			env:     map[string]string{"TELEGRAM_CHAT_ID": "not-a-number"},
			wantErr: true,
		},
		{
			name:    "invalid rate limit",
			env:     map[string]string{"RATE_LIMIT": "lots"},
			wantErr: true,
		},
		{
			name:    "invalid rate limit window",
			env:     map[string]string{"RATE_LIMIT_WINDOW": "soon"},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, key := range configEnvKeys {
				t.Setenv(key, "")
			}
			for k, v := range tt.env {
				t.Setenv(k, v)
			}

			got, err := Load()
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("load: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Load mismatch (-want +got):\n%s", diff)
			}
		})
	}
}
