package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/exp/slog"

	"bomkeeper/internal/app/server/api"
	"bomkeeper/internal/app/server/config"
	"bomkeeper/internal/domain/sheet"
	"bomkeeper/internal/infrastructure/storage/postgres"
	"bomkeeper/internal/infrastructure/storage/sqlite"
	"bomkeeper/internal/utils/logger"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg := config.MustLoad()
	log := logger.New(cfg.Env)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	repo, err := openRepository(ctx, cfg, log)
	if err != nil {
		log.Error("Не удалось открыть хранилище", logger.Err(err))
		os.Exit(1)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Warn("Ошибка закрытия хранилища", logger.Err(err))
		}
	}()

	srv := &http.Server{
		Addr:              cfg.Server.RunAddress,
		Handler:           api.New(repo, log),
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		<-ctx.Done()
		log.Info("Получен сигнал завершения")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("Ошибка остановки сервера", logger.Err(err))
		}
	}()

	log.Info("Сервер запущен", "address", srv.Addr, "storage", cfg.DB.Driver)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("Сервер остановлен с ошибкой", logger.Err(err))
		return
	}
	log.Info("Сервер остановлен")
}

func openRepository(ctx context.Context, cfg *config.Config, log *slog.Logger) (sheet.Repository, error) {
	switch cfg.DB.Driver {
	case config.DriverPostgres:
		storage, err := postgres.New(ctx, cfg)
		if err != nil {
			return nil, err
		}
		return postgres.NewSheetRepository(storage, log), nil
	default:
		return sqlite.New(cfg.DB.SQLitePath, log)
	}
}
