package register_artist

import (
	"context"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/service/artists"
)

type ArtistDirectory interface {
	Register(ctx context.Context, req artists.RegisterRequest) (*domain.Artist, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
