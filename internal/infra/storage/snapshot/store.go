package snapshot

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/kv"
)

// Store единственный владелец состояния бронирований.
//
// Все мутации сериализуются одним мьютексом и выполняются copy-on-write:
// копия -> изменение -> запись полного снапшота -> публикация.
// Читатели получают последний закоммиченный снапшот через View без блокировок
// и никогда не видят частично применённую мутацию.
type Store struct {
	mu      sync.Mutex
	current atomic.Pointer[State]

	kv      KeyValue
	key     string
	metrics Metrics
	logger  Logger
}

// Option настройка хранилища
type Option func(*Store)

// WithMetrics подключает метрики записи снапшотов
func WithMetrics(m Metrics) Option {
	return func(s *Store) {
		s.metrics = m
	}
}

// NewStore создает хранилище с пустым состоянием; для чтения сохранённых данных вызвать Load
func NewStore(kvStore KeyValue, key string, logger Logger, opts ...Option) *Store {
	s := &Store{
		kv:     kvStore,
		key:    key,
		logger: logger,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.current.Store(NewState())
	return s
}

// Load загружает снапшот из key-value хранилища.
// Отсутствующий, нечитаемый или устаревший по версии снапшот заменяется пустым состоянием.
func (s *Store) Load(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := s.kv.Get(ctx, s.key)
	if errors.Is(err, kv.ErrNotFound) {
		s.logger.Info("Load: snapshot %s not found, starting with empty store", s.key)
		s.current.Store(NewState())
		return nil
	}
	if err != nil {
		s.logger.Error("Load: failed to read snapshot %s: %v", s.key, err)
		return fmt.Errorf("%w: %v", ErrLoad, err)
	}

	state, err := Decode(raw)
	if err != nil {
		s.logger.Warn("Load: discarding snapshot %s: %v", s.key, err)
		s.current.Store(NewState())
		return nil
	}

	s.current.Store(state)
	s.logger.Info("Load: snapshot loaded (reservations=%d, artists=%d, closedSlots=%d)",
		len(state.Reservations), len(state.Artists), len(state.ClosedSlots))
	return nil
}

// View возвращает последний закоммиченный снапшот. Изменять его нельзя.
func (s *Store) View() *State {
	return s.current.Load()
}

// Mutate применяет fn к копии состояния внутри критической секции и коммитит результат.
// Если fn вернула ошибку или запись снапшота не удалась, состояние не меняется.
func (s *Store) Mutate(ctx context.Context, fn func(state *State) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	next := s.current.Load().Clone()
	if err := fn(next); err != nil {
		return err
	}

	if err := s.save(ctx, next); err != nil {
		return err
	}

	s.current.Store(next)
	return nil
}

// Replace заменяет состояние целиком (используется для демо-данных)
func (s *Store) Replace(ctx context.Context, state *State) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	next := state.Clone()
	next.Version = domain.SnapshotVersion
	next.normalize()

	if err := s.save(ctx, next); err != nil {
		return err
	}

	s.current.Store(next)
	return nil
}

func (s *Store) save(ctx context.Context, state *State) error {
	started := time.Now()

	raw, err := Encode(state)
	if err != nil {
		s.observe("encode_error", started)
		return err
	}

	if err := s.kv.Put(ctx, s.key, raw); err != nil {
		s.observe("error", started)
		s.logger.Error("save: failed to write snapshot %s: %v", s.key, err)
		return fmt.Errorf("%w: %v", ErrPersist, err)
	}

	s.observe("ok", started)
	return nil
}

func (s *Store) observe(result string, started time.Time) {
	if s.metrics != nil {
		s.metrics.ObserveSnapshotSave(result, time.Since(started))
	}
}

// Encode сериализует снапшот в JSON
func Encode(state *State) ([]byte, error) {
	raw, err := json.Marshal(state)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrEncode, err)
	}
	return raw, nil
}

// Decode разбирает снапшот и проверяет версию схемы
func Decode(raw []byte) (*State, error) {
	var state State
	if err := json.Unmarshal(raw, &state); err != nil {
		return nil, fmt.Errorf("unparsable snapshot: %w", err)
	}
	if state.Version != domain.SnapshotVersion {
		return nil, fmt.Errorf("snapshot version %d, expected %d", state.Version, domain.SnapshotVersion)
	}
	state.normalize()
	return &state, nil
}
