package client

import (
	"sync"

	"bomkeeper/internal/domain/bom"
)

// Store - in-memory коллекция записей BOM, заполняемая полной перезагрузкой
type Store struct {
	mu      sync.RWMutex
	records []bom.Record
	issued  uint64
	applied uint64
}

func NewStore() *Store {
	return &Store{}
}

// Replace заменяет всю коллекцию
func (s *Store) Replace(records []bom.Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records = append([]bom.Record(nil), records...)
}

// Begin выдает номер поколения для новой загрузки
func (s *Store) Begin() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.issued++
	return s.issued
}

// ReplaceIfNewer заменяет коллекцию, только если загрузка gen не устарела.
// Загрузка устаревает, когда применена более поздняя загрузка или после нее
// выполнено локальное удаление.
func (s *Store) ReplaceIfNewer(gen uint64, records []bom.Record) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if gen <= s.applied {
		return false
	}
	s.applied = gen
	s.records = append([]bom.Record(nil), records...)
	return true
}

// Snapshot возвращает копию коллекции в порядке загрузки
func (s *Store) Snapshot() []bom.Record {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]bom.Record(nil), s.records...)
}

// Remove удаляет все записи с указанным id
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.records[:0:0]
	for _, r := range s.records {
		if r.ID != id {
			kept = append(kept, r)
		}
	}
	removed := len(kept) != len(s.records)
	s.records = kept
	s.applied = s.issued
	return removed
}

// Find возвращает первую запись с указанным id
func (s *Store) Find(id string) (bom.Record, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, r := range s.records {
		if r.ID == id {
			return r, true
		}
	}
	return bom.Record{}, false
}

func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.records)
}
