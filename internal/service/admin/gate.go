package admin

import (
	"fmt"
	"sync/atomic"

	"golang.org/x/crypto/bcrypt"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

// Gate единый на процесс флаг прав администратора.
// Открывается сравнением пароля с фиксированным bcrypt-хешем из конфигурации.
type Gate struct {
	passwordHash []byte
	open         atomic.Bool
	logger       Logger
}

// NewGate создает закрытый гейт
func NewGate(passwordHash string, logger Logger) (*Gate, error) {
	if passwordHash == "" {
		return nil, ErrNoCredential
	}
	if _, err := bcrypt.Cost([]byte(passwordHash)); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNoCredential, err)
	}
	return &Gate{passwordHash: []byte(passwordHash), logger: logger}, nil
}

// HashPassword возвращает bcrypt-хеш пароля для конфигурации
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// Login открывает гейт при совпадении пароля
func (g *Gate) Login(password string) error {
	if err := bcrypt.CompareHashAndPassword(g.passwordHash, []byte(password)); err != nil {
		g.logger.Warn("Login: admin password mismatch")
		return ErrInvalidCredentials
	}
	g.open.Store(true)
	g.logger.Info("Login: admin gate opened")
	return nil
}

// Logout закрывает гейт
func (g *Gate) Logout() {
	g.open.Store(false)
	g.logger.Info("Logout: admin gate closed")
}

// IsOpen возвращает состояние гейта
func (g *Gate) IsOpen() bool {
	return g.open.Load()
}

// Require возвращает ErrUnauthorized, если гейт закрыт
func (g *Gate) Require() error {
	if !g.open.Load() {
		return domain.ErrUnauthorized
	}
	return nil
}
