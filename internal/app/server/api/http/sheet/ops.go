package sheet

import (
	"net/http"

	"github.com/danielgtaylor/huma/v2"
)

func (h *Handler) listOp() huma.Operation {
	return huma.Operation{
		OperationID: "sheet-list",
		Method:      http.MethodGet,
		Path:        "/api/v1/{sheet}",
		Summary:     "Все строки листа",
		Tags:        []string{"sheet"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) createOp() huma.Operation {
	return huma.Operation{
		OperationID:   "sheet-create",
		Method:        http.MethodPost,
		Path:          "/api/v1/{sheet}",
		Summary:       "Добавить строки",
		Description:   "Добавляет одну строку или массив строк в конец листа. Значения сохраняются строками.",
		Tags:          []string{"sheet"},
		DefaultStatus: http.StatusCreated,
		Middlewares:   h.middleware,
	}
}

func (h *Handler) updateOp() huma.Operation {
	return huma.Operation{
		OperationID: "sheet-update",
		Method:      http.MethodPatch,
		Path:        "/api/v1/{sheet}/{column}/{value}",
		Summary:     "Изменить строки",
		Description: "Сливает переданные поля со всеми строками, где column равно value.",
		Tags:        []string{"sheet"},
		Middlewares: h.middleware,
	}
}

func (h *Handler) deleteOp() huma.Operation {
	return huma.Operation{
		OperationID: "sheet-delete",
		Method:      http.MethodDelete,
		Path:        "/api/v1/{sheet}/{column}/{value}",
		Summary:     "Удалить строки",
		Tags:        []string{"sheet"},
		Middlewares: h.middleware,
	}
}
