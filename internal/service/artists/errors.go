package artists

import (
	"fmt"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

var (
	// ErrArtistNotFound возвращается, когда артист с указанным ID не найден
	ErrArtistNotFound = fmt.Errorf("%w: artists: artist not found", domain.ErrNotFound)

	// ErrRequiredField возвращается, когда не заполнено обязательное поле анкеты
	ErrRequiredField = fmt.Errorf("%w: artists: required field is blank", domain.ErrValidation)

	// ErrNoSocialHandle возвращается, когда не указан ни один аккаунт в соцсетях
	ErrNoSocialHandle = fmt.Errorf("%w: artists: at least one social handle is required", domain.ErrValidation)

	// ErrNoVideo возвращается, когда не указаны ни ссылка на видео, ни контакт для отправки видео
	ErrNoVideo = fmt.Errorf("%w: artists: video url or video contact is required", domain.ErrValidation)

	// ErrEmptyQuery возвращается при пустом поисковом запросе
	ErrEmptyQuery = fmt.Errorf("%w: artists: lookup query is empty", domain.ErrValidation)
)
