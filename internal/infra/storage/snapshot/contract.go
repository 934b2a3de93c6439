package snapshot

import (
	"context"
	"time"
)

// KeyValue транспорт хранения сериализованного снапшота
type KeyValue interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Put(ctx context.Context, key string, value []byte) error
}

// Metrics наблюдение за записью снапшотов
type Metrics interface {
	ObserveSnapshotSave(result string, duration time.Duration)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
