package approve_artist

import (
	"context"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

type ArtistDirectory interface {
	Approve(ctx context.Context, id string) (*domain.Artist, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
