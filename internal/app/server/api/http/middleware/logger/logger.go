package logger

import (
	"time"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

// Logger middleware для логирования входящих HTTP запросов
type Logger struct {
	log *slog.Logger
}

// New создает новый экземпляр Logger middleware
func New(log *slog.Logger) *Logger {
	return &Logger{
		log: log.With(slog.String("component", "http_logger")),
	}
}

// Middleware возвращает middleware функцию для логирования HTTP запросов
func (l *Logger) Middleware() func(huma.Context, func(huma.Context)) {
	return func(ctx huma.Context, next func(huma.Context)) {
		start := time.Now()

		method := ctx.Method()
		path := ctx.URL().Path
		remoteAddr := ctx.RemoteAddr()

		next(ctx)

		status := ctx.Status()
		level := slog.LevelInfo
		if status >= 500 {
			level = slog.LevelError
		}

		l.log.Log(ctx.Context(), level, "HTTP request",
			slog.String("method", method),
			slog.String("path", path),
			slog.Int("status", status),
			slog.Duration("duration", time.Since(start)),
			slog.String("remote_addr", remoteAddr),
		)
	}
}
