package create_reservation

import (
	"fmt"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

var (
	// ErrArtistNotFound возвращается, когда поиск не нашел артиста
	ErrArtistNotFound = fmt.Errorf("%w: create_reservation: artist not found", domain.ErrNotFound)

	// ErrArtistPending возвращается, когда найденный артист еще не прошел модерацию
	ErrArtistPending = fmt.Errorf("%w: create_reservation: artist is awaiting approval", domain.ErrValidation)

	// ErrInvalidTransition возвращается при недопустимом переходе сценария
	ErrInvalidTransition = fmt.Errorf("%w: create_reservation: invalid workflow transition", domain.ErrValidation)

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = fmt.Errorf("%w: create_reservation: invalid input data", domain.ErrValidation)
)
