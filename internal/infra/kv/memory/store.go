package memory

import (
	"context"
	"sync"

	"github.com/m04kA/SMC-StageCalendar/internal/infra/kv"
)

// Store key-value хранилище в памяти процесса.
// Используется для локального запуска и в тестах.
type Store struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewStore создает пустое хранилище
func NewStore() *Store {
	return &Store{data: make(map[string][]byte)}
}

// Get возвращает копию значения по ключу
func (s *Store) Get(_ context.Context, key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.data[key]
	if !ok {
		return nil, kv.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}

// Put сохраняет копию значения по ключу
func (s *Store) Put(_ context.Context, key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.data[key] = append([]byte(nil), value...)
	return nil
}
