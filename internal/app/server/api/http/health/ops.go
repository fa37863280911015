package health

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) healthCheckOp() huma.Operation {
	return huma.Operation{
		OperationID: "health-check",
		Method:      http.MethodGet,
		Path:        "/api/v1/health",
		Summary:     "Health check",
		Description: "Reports OK when the sheet storage answers a ping, 503 otherwise",
		Tags:        []string{"health"},
		Errors:      []int{http.StatusServiceUnavailable},
		Middlewares: h.middleware,
	}
}
