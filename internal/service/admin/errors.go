package admin

import (
	"errors"
	"fmt"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

var (
	// ErrInvalidCredentials возвращается при неверном пароле администратора
	ErrInvalidCredentials = fmt.Errorf("%w: invalid admin password", domain.ErrUnauthorized)

	// ErrNoCredential возвращается, когда хеш пароля администратора не настроен
	ErrNoCredential = errors.New("admin: credential is not configured")
)
