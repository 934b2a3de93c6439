package list_artists

import "github.com/m04kA/SMC-StageCalendar/internal/domain"

type ArtistDirectory interface {
	List() []domain.Artist
	PendingCount() int
}

// Authorizer список анкет с контактами виден только администратору
type Authorizer interface {
	Require() error
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
