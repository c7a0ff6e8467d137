package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"matchtrip/internal/api"
	"matchtrip/internal/config"
	"matchtrip/internal/feeds"
	"matchtrip/internal/notify"
	"matchtrip/internal/push"
	"matchtrip/internal/reminder"
	"matchtrip/internal/storage"
	"matchtrip/internal/trigger"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("load config", "error", err)
		os.Exit(1)
	}

	log := newLogger(cfg.LogLevel)

	if dir := filepath.Dir(cfg.DatabasePath); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			log.Error("create data directory", "path", dir, "error", err)
			os.Exit(1)
		}
	}

	store, err := storage.NewSQLite(cfg.DatabasePath)
	if err != nil {
		log.Error("open database", "path", cfg.DatabasePath, "error", err)
		os.Exit(1)
	}
	defer func() { _ = store.Close() }()

	tg, err := push.NewTelegram(cfg.TelegramBotToken, cfg.TelegramChatID, log)
	if err != nil {
		log.Error("create pusher", "error", err)
		os.Exit(1)
	}
	var pusher notify.Pusher
	if tg != nil {
		pusher = tg
	}

	center := notify.NewCenter(store, pusher, log)

	weatherClient := feeds.NewWeatherClient(http.DefaultClient, cfg.WeatherAPIURL)
	matchClient := feeds.NewMatchClient(http.DefaultClient, cfg.MatchesAPIURL)

	reminders := reminder.NewScheduler(store, center, log)

	manager := trigger.NewManager(store, reminders,
		trigger.NewGameDay(store, center, matchClient, log),
		trigger.NewMatchResult(store, center, matchClient, log),
		trigger.NewWeather(store, center, weatherClient, log),
		trigger.NewSafety(store, center, log),
		trigger.NewStadium(store, center, log),
		trigger.NewCurrency(store, center, log),
		log,
	)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	manager.Start(ctx)
	defer manager.Stop()

	server := api.NewServer(center, manager, reminders, store, log)
	httpServer := &http.Server{
		Addr: cfg.APIAddr,
		Handler: server.Router(api.Options{
			AllowedOrigins:  cfg.CORSAllowOrigins,
			RateLimit:       cfg.RateLimit,
			RateLimitWindow: cfg.RateLimitWindow,
		}),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Info("api listening", "addr", cfg.APIAddr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("api server", "error", err)
			cancel()
		}
	}()

	<-ctx.Done()
	log.Info("shutting down")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		log.Error("api shutdown", "error", err)
	}

	log.Info("stopped")
}

func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch strings.ToLower(level) {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl}))
}
