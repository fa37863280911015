package client

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	gosync "sync"
	"time"

	"golang.org/x/exp/slog"

	"bomkeeper/internal/app/client/config"
	"bomkeeper/internal/domain/bom"
	"bomkeeper/internal/domain/form"
	"bomkeeper/internal/domain/intent"
	"bomkeeper/internal/domain/view"
)

const (
	msgDeleteFailed   = "Error deleting record. "
	msgDeleteRejected = "The server rejected the request. Please check if the record exists."
	msgDeleteMissing  = "Record not found. It may have been already deleted."
	msgDeleteServer   = "Server error. Please try again later."
	msgDeleteOther    = "Please check console for details."
)

type App struct {
	config   *config.Config
	log      *slog.Logger
	remote   Remote
	codec    bom.VendorCodec
	store    *Store
	status   *StatusBoard
	confirm  bom.Confirmer
	composer *intent.Composer

	ctx    context.Context
	cancel context.CancelFunc
	wg     gosync.WaitGroup
	mu     gosync.Mutex
	timers map[uint64]*time.Timer
	seq    uint64
	closed bool
}

// New собирает клиент поверх SheetDB API. onStatus получает каждое
// сообщение для пользователя и может быть nil.
func New(cfg *config.Config, log *slog.Logger, confirm bom.Confirmer, onStatus func(Status)) (*App, error) {
	httpCl, err := NewHTTPClient(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации HTTP клиента: %w", err)
	}

	return newApp(cfg, log, httpCl, confirm, onStatus)
}

func newApp(cfg *config.Config, log *slog.Logger, remote Remote, confirm bom.Confirmer, onStatus func(Status)) (*App, error) {
	composer, err := intent.NewComposer(intent.DefaultHeader)
	if err != nil {
		return nil, fmt.Errorf("ошибка инициализации шаблона заявки: %w", err)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &App{
		config:   cfg,
		log:      log,
		remote:   remote,
		codec:    bom.NewDelimitedCodec(log),
		store:    NewStore(),
		status:   NewStatusBoard(cfg.StatusTTL, onStatus),
		confirm:  confirm,
		composer: composer,
		ctx:      ctx,
		cancel:   cancel,
		timers:   make(map[uint64]*time.Timer),
	}, nil
}

// LoadAll заменяет локальную коллекцию содержимым таблицы
func (a *App) LoadAll(ctx context.Context) ([]bom.Record, error) {
	gen := a.store.Begin()

	rows, err := a.remote.ListRecords(ctx)
	if err != nil {
		msg := err.Error()
		var httpErr *HTTPError
		if errors.As(err, &httpErr) {
			msg = fmt.Sprintf("HTTP error! status: %d", httpErr.Status)
		}
		a.log.Error("Ошибка загрузки записей", "error", err)
		a.status.Show(StatusError, "Error loading BOM data: "+msg)
		return nil, fmt.Errorf("ошибка загрузки записей: %w", err)
	}

	records := make([]bom.Record, 0, len(rows))
	for _, row := range rows {
		records = append(records, bom.FromWire(row, a.codec))
	}

	if !a.store.ReplaceIfNewer(gen, records) {
		a.log.Debug("Устаревшая загрузка отброшена", "generation", gen)
		return a.store.Snapshot(), nil
	}

	a.log.Debug("Записи загружены", "count", len(records), "generation", gen)
	a.status.Show(StatusSuccess, fmt.Sprintf("Loaded %d records successfully", len(records)))
	return records, nil
}

// Create проверяет черновик, назначает новый id и добавляет запись
func (a *App) Create(ctx context.Context, draft bom.Draft) (bom.Record, error) {
	records := a.store.Snapshot()

	if err := draft.Validate(); err != nil {
		return bom.Record{}, a.reject(err)
	}
	if err := bom.CheckSKU(records, draft.SKU, ""); err != nil {
		return bom.Record{}, a.reject(err)
	}
	if !a.confirm.Confirm("Are you sure you want to save this new record?") {
		return bom.Record{}, bom.ErrNotConfirmed
	}

	id := bom.NextID(records)
	if err := a.remote.CreateRecord(ctx, bom.ToWire(id, draft, a.codec)); err != nil {
		return bom.Record{}, a.saveFailed(err)
	}

	a.log.Info("Запись создана", "id", id, "sku", draft.SKU)
	a.status.Show(StatusSuccess, "New record saved successfully with ID: "+id)
	a.scheduleReload(a.config.ReloadDelay)

	return bom.Record{ID: id, Product: draft.Product, Vendors: draft.Vendors}, nil
}

// Update полностью заменяет поля записи id
func (a *App) Update(ctx context.Context, id string, draft bom.Draft) (bom.Record, error) {
	if err := draft.Validate(); err != nil {
		return bom.Record{}, a.reject(err)
	}
	if !a.confirm.Confirm(fmt.Sprintf("Are you sure you want to update record %s?", id)) {
		return bom.Record{}, bom.ErrNotConfirmed
	}

	if err := a.remote.UpdateRecord(ctx, id, bom.ToWire("", draft, a.codec)); err != nil {
		return bom.Record{}, a.saveFailed(err)
	}

	a.log.Info("Запись обновлена", "id", id)
	a.status.Show(StatusSuccess, "Record updated successfully!")
	a.scheduleReload(a.config.ReloadDelay)

	return bom.Record{ID: id, Product: draft.Product, Vendors: draft.Vendors}, nil
}

// Save сохраняет черновик редактора как новую или измененную запись и
// сбрасывает редактор после успеха.
func (a *App) Save(ctx context.Context, ed *form.Editor) (bom.Record, error) {
	var (
		rec bom.Record
		err error
	)
	if id := ed.EditingID(); id != "" {
		rec, err = a.Update(ctx, id, ed.Draft())
	} else {
		rec, err = a.Create(ctx, ed.Draft())
	}
	if err != nil {
		return bom.Record{}, err
	}

	ed.Cancel()
	return rec, nil
}

// Delete удаляет запись на сервере, сразу убирает ее из локальной коллекции
// и планирует сверочную перезагрузку.
func (a *App) Delete(ctx context.Context, id string) error {
	if !a.confirm.Confirm(fmt.Sprintf("Are you sure you want to delete record %s?", id)) {
		return bom.ErrNotConfirmed
	}

	if err := a.remote.DeleteRecord(ctx, id); err != nil {
		a.log.Error("Ошибка удаления записи", "id", id, "error", err)
		a.status.Show(StatusError, deleteFailureMessage(err))
		return fmt.Errorf("ошибка удаления записи %s: %w", id, err)
	}

	a.store.Remove(id)
	a.log.Info("Запись удалена", "id", id)
	a.status.Show(StatusSuccess, fmt.Sprintf("Record %s deleted successfully!", id))
	a.scheduleReload(a.config.DeleteReloadDelay)

	return nil
}

func deleteFailureMessage(err error) string {
	var httpErr *HTTPError
	if !errors.As(err, &httpErr) {
		return msgDeleteFailed + msgDeleteOther
	}

	switch httpErr.Status {
	case http.StatusBadRequest:
		return msgDeleteFailed + msgDeleteRejected
	case http.StatusNotFound:
		return msgDeleteFailed + msgDeleteMissing
	case http.StatusInternalServerError:
		return msgDeleteFailed + msgDeleteServer
	default:
		return msgDeleteFailed + msgDeleteOther
	}
}

// BeginEdit загружает запись id в редактор
func (a *App) BeginEdit(ed *form.Editor, id string) error {
	rec, ok := a.store.Find(id)
	if !ok {
		return fmt.Errorf("%w: %s", bom.ErrNotFound, id)
	}

	ed.BeginEdit(rec)
	a.status.Show(StatusInfo, "Editing record. Update and save changes.")
	return nil
}

// CancelEdit сбрасывает редактор
func (a *App) CancelEdit(ed *form.Editor) {
	ed.Cancel()
	a.status.Show(StatusInfo, "Edit cancelled")
}

// View применяет сортировку, поиск, фильтр и пагинацию к текущей коллекции
func (a *App) View(q view.Query) view.Page {
	return view.Apply(a.store.Snapshot(), q)
}

func (a *App) Stats() view.Stats {
	return view.Aggregate(a.store.Snapshot())
}

func (a *App) Records() []bom.Record {
	return a.store.Snapshot()
}

func (a *App) Record(id string) (bom.Record, bool) {
	return a.store.Find(id)
}

func (a *App) SKUs() []string {
	return view.SKUs(a.store.Snapshot())
}

func (a *App) Categories() []string {
	return view.Categories(a.store.Snapshot())
}

// GenerateIntent строит строки заявки по выбору и пишет HTML документ в w
func (a *App) GenerateIntent(sel *form.Selection, w io.Writer) ([]intent.LineItem, error) {
	items, err := intent.Build(a.store.Snapshot(), sel.Picks())
	if err != nil {
		return nil, a.reject(err)
	}

	if err := a.composer.Render(w, items); err != nil {
		a.status.Show(StatusError, err.Error())
		return nil, err
	}

	a.log.Info("Заявка сформирована", "items", len(items), "total", intent.GrandTotal(items).StringFixed(2))
	return items, nil
}

// Status возвращает текущее сообщение, если оно еще не скрыто
func (a *App) Status() (Status, bool) {
	return a.status.Current()
}

// Settle ждет завершения всех запланированных перезагрузок
func (a *App) Settle() {
	a.wg.Wait()
}

// Close отменяет запланированные перезагрузки и прерывает выполняющиеся
func (a *App) Close() {
	a.mu.Lock()
	a.closed = true
	for id, t := range a.timers {
		if t.Stop() {
			a.wg.Done()
		}
		delete(a.timers, id)
	}
	a.mu.Unlock()

	a.cancel()
	a.wg.Wait()
	a.status.Dismiss()
}

func (a *App) scheduleReload(delay time.Duration) {
	a.mu.Lock()
	defer a.mu.Unlock()

	if a.closed {
		return
	}

	a.seq++
	id := a.seq
	a.wg.Add(1)
	a.timers[id] = time.AfterFunc(delay, func() {
		defer a.wg.Done()

		a.mu.Lock()
		delete(a.timers, id)
		a.mu.Unlock()

		ctx, cancel := context.WithTimeout(a.ctx, a.config.RequestTimeout)
		defer cancel()

		if _, err := a.LoadAll(ctx); err != nil {
			a.log.Warn("Перезагрузка не удалась", "error", err)
		}
	})
}

func (a *App) reject(err error) error {
	var verr *bom.ValidationError
	if errors.As(err, &verr) {
		a.status.Show(StatusError, verr.Error())
	}
	return err
}

func (a *App) saveFailed(err error) error {
	a.log.Error("Ошибка сохранения записи", "error", err)
	a.status.Show(StatusError, "Error saving data: "+err.Error())
	return fmt.Errorf("ошибка сохранения записи: %w", err)
}
