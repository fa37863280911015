package health

import (
	"context"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"
)

const (
	statusOK          = "OK"
	statusUnavailable = "UNAVAILABLE"
)

// Pinger проверяет доступность хранилища
type Pinger interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	storage    Pinger
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(storage Pinger, log *slog.Logger, middleware huma.Middlewares) *Handler {
	return &Handler{
		storage:    storage,
		log:        log,
		middleware: middleware,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.healthCheckOp(), h.healthCheck)
}

func (h *Handler) healthCheck(ctx context.Context, _ *Input) (*Output, error) {
	if err := h.storage.Ping(ctx); err != nil {
		h.log.Error("storage is unreachable", "error", err)
		return nil, huma.Error503ServiceUnavailable("storage " + statusUnavailable)
	}

	return &Output{
		Body: Response{
			Status:  statusOK,
			Storage: statusOK,
		},
	}, nil
}
