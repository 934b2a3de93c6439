package redis

import (
	"context"
	"errors"
	"fmt"

	goredis "github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-StageCalendar/internal/infra/kv"
)

var (
	// ErrCommand возвращается при ошибке выполнения команды Redis
	ErrCommand = errors.New("kv.redis: command failed")
)

// Store key-value хранилище поверх Redis
type Store struct {
	client goredis.Cmdable
}

// NewStore создает новый экземпляр хранилища
func NewStore(client goredis.Cmdable) *Store {
	return &Store{client: client}
}

// Get получает значение по ключу
func (s *Store) Get(ctx context.Context, key string) ([]byte, error) {
	value, err := s.client.Get(ctx, key).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, kv.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GET %s: %v", ErrCommand, key, err)
	}
	return value, nil
}

// Put сохраняет значение по ключу без TTL
func (s *Store) Put(ctx context.Context, key string, value []byte) error {
	if err := s.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("%w: SET %s: %v", ErrCommand, key, err)
	}
	return nil
}
