// Dev-сервер повторяет подмножество SheetDB API, которым пользуется клиент:
//
//GET    /api/v1/{sheet}                  # все строки листа
//POST   /api/v1/{sheet}                  # добавить строку или массив строк
//PATCH  /api/v1/{sheet}/{column}/{value} # обновить совпавшие строки
//DELETE /api/v1/{sheet}/{column}/{value} # удалить совпавшие строки
//GET    /metrics                         # prometheus

package api

import (
	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humachi"
	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/exp/slog"

	healthAPI "bomkeeper/internal/app/server/api/http/health"
	"bomkeeper/internal/app/server/api/http/middleware"
	"bomkeeper/internal/app/server/api/http/middleware/logger"
	"bomkeeper/internal/app/server/api/http/middleware/metrics"
	sheetAPI "bomkeeper/internal/app/server/api/http/sheet"
	"bomkeeper/internal/domain/sheet"
)

type Handlers struct {
	Health *healthAPI.Handler
	Sheet  *sheetAPI.Handler
}

// New создает *chi.Mux с операциями листов, health и /metrics
func New(repo sheet.Repository, log *slog.Logger) *chi.Mux {
	mux := chi.NewMux()

	config := huma.DefaultConfig("BOMKeeper dev sheet API", "1.0.0")
	API := humachi.New(mux, config)

	h := handlers(repo, log)
	h.Health.SetupRoutes(API)
	h.Sheet.SetupRoutes(API)

	mux.Handle("/metrics", promhttp.Handler())

	return mux
}

func handlers(repo sheet.Repository, log *slog.Logger) *Handlers {
	loggerMW := logger.New(log)
	metricsMW := metrics.New()
	middlewares := middleware.NewContainer()

	middlewares.Add(loggerMW.Middleware())
	healthHandler := healthAPI.NewHandler(repo, log, middlewares.GetAllAndClear())

	sheetService := sheet.NewService(repo, log)
	middlewares.Add(metricsMW.Middleware())
	middlewares.Add(loggerMW.Middleware())
	sheetHandler := sheetAPI.NewHandler(sheetService, log, middlewares.GetAllAndClear())

	return &Handlers{
		Health: healthHandler,
		Sheet:  sheetHandler,
	}
}
