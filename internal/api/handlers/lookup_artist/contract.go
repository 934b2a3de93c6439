package lookup_artist

import "github.com/m04kA/SMC-StageCalendar/internal/domain"

type ArtistDirectory interface {
	Lookup(query string) (*domain.Artist, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
