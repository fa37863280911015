package client

import (
	"sync"
	"time"
)

type StatusKind string

const (
	StatusSuccess StatusKind = "success"
	StatusError   StatusKind = "error"
	StatusInfo    StatusKind = "info"
)

// Status - сообщение для пользователя
type Status struct {
	Kind    StatusKind
	Message string
	At      time.Time
}

// StatusBoard хранит последнее сообщение и скрывает его через ttl
type StatusBoard struct {
	mu      sync.Mutex
	current *Status
	timer   *time.Timer
	ttl     time.Duration
	notify  func(Status)
}

// NewStatusBoard создает доску сообщений. notify вызывается синхронно при
// каждом Show и может быть nil.
func NewStatusBoard(ttl time.Duration, notify func(Status)) *StatusBoard {
	return &StatusBoard{ttl: ttl, notify: notify}
}

// Show заменяет текущее сообщение и перезапускает таймер скрытия
func (b *StatusBoard) Show(kind StatusKind, message string) {
	st := Status{Kind: kind, Message: message, At: time.Now()}

	b.mu.Lock()
	if b.timer != nil {
		b.timer.Stop()
	}
	b.current = &st
	if b.ttl > 0 {
		b.timer = time.AfterFunc(b.ttl, func() { b.expire(&st) })
	}
	b.mu.Unlock()

	if b.notify != nil {
		b.notify(st)
	}
}

func (b *StatusBoard) expire(st *Status) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == st {
		b.current = nil
		b.timer = nil
	}
}

// Current возвращает текущее сообщение, если оно еще не скрыто
func (b *StatusBoard) Current() (Status, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.current == nil {
		return Status{}, false
	}
	return *b.current, true
}

// Dismiss скрывает сообщение немедленно
func (b *StatusBoard) Dismiss() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.current = nil
}
