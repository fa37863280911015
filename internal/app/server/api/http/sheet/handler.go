package sheet

import (
	"context"
	"errors"

	"github.com/danielgtaylor/huma/v2"
	"golang.org/x/exp/slog"

	"bomkeeper/internal/domain/sheet"
)

type Handler struct {
	service    sheet.Servicer
	log        *slog.Logger
	middleware huma.Middlewares
}

func NewHandler(service sheet.Servicer, log *slog.Logger, mws huma.Middlewares) *Handler {
	return &Handler{
		service:    service,
		log:        log,
		middleware: mws,
	}
}

func (h *Handler) SetupRoutes(api huma.API) {
	huma.Register(api, h.listOp(), h.list)
	huma.Register(api, h.createOp(), h.create)
	huma.Register(api, h.updateOp(), h.update)
	huma.Register(api, h.deleteOp(), h.delete)
}

func (h *Handler) list(ctx context.Context, input *listInput) (*listOutput, error) {
	rows, err := h.service.List(ctx, input.Sheet)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &listOutput{Body: rows}, nil
}

func (h *Handler) create(ctx context.Context, input *createInput) (*createOutput, error) {
	n, err := h.service.Create(ctx, input.Sheet, input.Body.Data)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &createOutput{Body: createdResponse{Created: n}}, nil
}

func (h *Handler) update(ctx context.Context, input *updateInput) (*updateOutput, error) {
	n, err := h.service.Update(ctx, input.Sheet, input.Column, input.Value, input.Body.Data)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &updateOutput{Body: updatedResponse{Updated: n}}, nil
}

func (h *Handler) delete(ctx context.Context, input *matchInput) (*deleteOutput, error) {
	n, err := h.service.Delete(ctx, input.Sheet, input.Column, input.Value)
	if err != nil {
		return nil, toHTTPError(err)
	}
	return &deleteOutput{Body: deletedResponse{Deleted: n}}, nil
}

func toHTTPError(err error) error {
	switch {
	case errors.Is(err, sheet.ErrNotFound):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, sheet.ErrEmptyData),
		errors.Is(err, sheet.ErrInvalidData),
		errors.Is(err, sheet.ErrInvalidColumn),
		errors.Is(err, sheet.ErrInvalidSheet):
		return huma.Error400BadRequest(err.Error())
	default:
		return huma.Error500InternalServerError("internal error")
	}
}
