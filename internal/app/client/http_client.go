package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/exp/slog"

	"bomkeeper/internal/app/client/config"
	"bomkeeper/internal/domain/bom"
)

// HTTPError is a non-2xx answer from the spreadsheet service.
type HTTPError struct {
	Status int
	Body   string
}

func (e *HTTPError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("HTTP error! status: %d", e.Status)
	}
	return fmt.Sprintf("HTTP error! status: %d, details: %s", e.Status, e.Body)
}

// Remote is the subset of the SheetDB API the client uses.
type Remote interface {
	ListRecords(ctx context.Context) ([]map[string]any, error)
	CreateRecord(ctx context.Context, rec bom.WireRecord) error
	UpdateRecord(ctx context.Context, id string, rec bom.WireRecord) error
	DeleteRecord(ctx context.Context, id string) error
}

type httpClient struct {
	client    *http.Client
	log       *slog.Logger
	baseURL   string
	userAgent string
}

type dataEnvelope struct {
	Data bom.WireRecord `json:"data"`
}

func NewHTTPClient(cfg *config.Config, log *slog.Logger) (*httpClient, error) {
	if _, err := url.Parse(cfg.SheetURL); err != nil {
		return nil, fmt.Errorf("неверный адрес таблицы: %w", err)
	}

	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:    client,
		log:       log.With("component", "sheet_client"),
		baseURL:   strings.TrimRight(cfg.SheetURL, "/"),
		userAgent: "BOMKeeper-Client/1.0",
	}, nil
}

// ListRecords загружает все строки таблицы
func (h *httpClient) ListRecords(ctx context.Context) ([]map[string]any, error) {
	resp, err := h.doRequest(ctx, http.MethodGet, "", nil)
	if err != nil {
		return nil, err
	}

	var rows []map[string]any
	if err := h.parseResponse(resp, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// CreateRecord добавляет строку с уже назначенным id
func (h *httpClient) CreateRecord(ctx context.Context, rec bom.WireRecord) error {
	resp, err := h.doRequest(ctx, http.MethodPost, "", dataEnvelope{Data: rec})
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// UpdateRecord заменяет все поля строки с указанным id
func (h *httpClient) UpdateRecord(ctx context.Context, id string, rec bom.WireRecord) error {
	rec.ID = ""
	resp, err := h.doRequest(ctx, http.MethodPatch, "/id/"+url.PathEscape(id), dataEnvelope{Data: rec})
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

// DeleteRecord удаляет строку с указанным id
func (h *httpClient) DeleteRecord(ctx context.Context, id string) error {
	resp, err := h.doRequest(ctx, http.MethodDelete, "/id/"+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, path string, body interface{}) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("ошибка маршалинга тела запроса: %w", err)
		}
		reqBody = bytes.NewBuffer(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, h.baseURL+path, reqBody)
	if err != nil {
		return nil, fmt.Errorf("ошибка создания запроса: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("ошибка выполнения запроса: %w", err)
	}

	return resp, nil
}

func (h *httpClient) parseResponse(resp *http.Response, result interface{}) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("ошибка чтения ответа: %w", err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &HTTPError{Status: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	if result != nil {
		if err := json.Unmarshal(body, result); err != nil {
			return fmt.Errorf("ошибка парсинга ответа: %w", err)
		}
	}

	return nil
}
