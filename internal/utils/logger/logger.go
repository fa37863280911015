package logger

import (
	"io"
	"os"

	"golang.org/x/exp/slog"

	"bomkeeper/internal/utils/logger/handlers/slogpretty"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

// New возвращает логгер для окружения env, пишущий в stdout.
// Неизвестное окружение получает prod настройки.
func New(env string) *slog.Logger {
	return NewWithWriter(env, os.Stdout)
}

// NewWithWriter - то же, что New, но пишет в out. CLI передает os.Stderr,
// чтобы логи не смешивались с выводом команд.
func NewWithWriter(env string, out io.Writer) *slog.Logger {
	var log *slog.Logger

	switch env {
	case envLocal, "":
		log = setupPrettySlog(out)
	case envDev:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelDebug}),
		)
	default:
		log = slog.New(
			slog.NewJSONHandler(out, &slog.HandlerOptions{Level: slog.LevelInfo}),
		)
	}

	return log
}

// Err упаковывает ошибку в атрибут "error"
func Err(err error) slog.Attr {
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

func setupPrettySlog(out io.Writer) *slog.Logger {
	opts := slogpretty.PrettyHandlerOptions{
		SlogOpts: &slog.HandlerOptions{
			Level: slog.LevelDebug,
		},
	}

	handler := opts.NewPrettyHandler(out)

	return slog.New(handler)
}
