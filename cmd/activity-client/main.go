// Package main запускает локальный клиент записи на школьные занятия
package main

import (
	"context"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"activity-signup-client/internal/api"
	"activity-signup-client/internal/config"
	httpapi "activity-signup-client/internal/http"
	"activity-signup-client/internal/repository"
	"activity-signup-client/internal/service"
	"activity-signup-client/internal/ui"
)

func main() {
	// Контекст для корректного завершения
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Чтение конфигурации из ENV
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	// Инициализация логгера (JSON)
	level, _ := cfg.SlogLevel()
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level}))

	// 1. Локальное хранилище сессии
	var store service.LocalStorage
	if cfg.UsesMemoryStorage() {
		store = repository.NewMemoryStorage()
	} else {
		db, err := repository.NewSQLite(ctx, cfg.StoragePath)
		if err != nil {
			log.Fatalf("failed to init local storage: %v", err)
		}
		defer db.Close()
		store = repository.NewLocalStorageRepo(db)
	}

	// 2. Клиент сервера занятий
	client := api.NewClient(cfg.APIBaseURL, nil, cfg.RequestTimeout, logger)

	// 3. Сервисы
	sessions, err := service.NewSessionManager(ctx, store, client, logger)
	if err != nil {
		log.Fatalf("failed to restore session: %v", err)
	}
	activityService := service.NewActivityService(client)
	mutationService := service.NewMutationService(client, sessions, logger)

	// 4. Состояние интерфейса и HTTP-диспетчер событий
	app := ui.NewApp(sessions, activityService, mutationService, cfg.BannerTTL, logger)

	handler := httpapi.NewHandler(app, cfg.UIOrigins(), logger)

	server := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           handler.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	// Запуск сервера в горутине
	go func() {
		logger.Info("starting activity client",
			slog.String("addr", server.Addr),
			slog.String("api", cfg.APIBaseURL),
			slog.Bool("teacher_mode", sessions.IsLoggedIn()),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("err", err))
			cancel()
		}
	}()

	// Graceful Shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	select {
	case <-stop:
	case <-ctx.Done():
	}
	logger.Info("shutting down activity client")

	ctxShutdown, cancelShutdown := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelShutdown()

	if err := server.Shutdown(ctxShutdown); err != nil {
		logger.Error("server shutdown error", slog.Any("err", err))
	}

	logger.Info("activity client stopped")
}
