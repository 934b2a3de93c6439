package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/service/reservations"
)

// Session сценарий бронирования одного слота:
// SelectingArtist -> ArtistFound -> EnteringDetails -> Confirmed.
// Смена даты или слота и явная отмена возвращают сессию в SelectingArtist.
type Session struct {
	uc *UseCase

	mu          sync.Mutex
	stage       Stage
	date        domain.DateKey
	slot        domain.SlotID
	artist      *domain.Artist
	reservation *domain.Reservation
}

// State возвращает снимок состояния сессии
func (s *Session) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()

	return SessionState{
		Stage:       s.stage,
		Date:        s.date,
		Slot:        s.slot,
		Artist:      s.artist,
		Eligible:    s.artist != nil && s.artist.IsApproved(),
		Reservation: s.reservation,
	}
}

// LookupArtist ищет артиста. Найденный, но не одобренный артист
// переводит сессию в ArtistFound без права продолжить.
func (s *Session) LookupArtist(query string) (*domain.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageSelectingArtist && s.stage != StageArtistFound {
		return nil, fmt.Errorf("%w: lookup from %s", ErrInvalidTransition, s.stage)
	}

	artist, err := s.uc.directory.Lookup(query)
	if err != nil {
		s.stage = StageSelectingArtist
		s.artist = nil
		if errors.Is(err, domain.ErrNotFound) {
			s.uc.logger.Info("CreateReservation: lookup query=%q found nothing", query)
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	s.stage = StageArtistFound
	s.artist = artist
	s.uc.logger.Info("CreateReservation: lookup matched artist id=%s status=%s", artist.ID, artist.Status)
	return artist, nil
}

// SelectArtist выбирает артиста по ID (без поиска)
func (s *Session) SelectArtist(id string) (*domain.Artist, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageSelectingArtist && s.stage != StageArtistFound {
		return nil, fmt.Errorf("%w: select artist from %s", ErrInvalidTransition, s.stage)
	}

	artist, err := s.uc.directory.Get(id)
	if err != nil {
		s.stage = StageSelectingArtist
		s.artist = nil
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}

	s.stage = StageArtistFound
	s.artist = artist
	return artist, nil
}

// Proceed переходит к вводу деталей. Требует одобренного артиста.
func (s *Session) Proceed() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageArtistFound {
		return fmt.Errorf("%w: proceed from %s", ErrInvalidTransition, s.stage)
	}
	if !s.artist.IsApproved() {
		s.uc.logger.Warn("CreateReservation: artist id=%s is pending, cannot proceed", s.artist.ID)
		return ErrArtistPending
	}

	s.stage = StageEnteringDetails
	return nil
}

// Confirm повторно проверяет артиста и слот и создает бронирование
func (s *Session) Confirm(ctx context.Context, note string) (*domain.Reservation, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stage != StageEnteringDetails {
		return nil, fmt.Errorf("%w: confirm from %s", ErrInvalidTransition, s.stage)
	}

	// 1. Статус артиста мог измениться (анкету могли отклонить)
	artist, err := s.uc.directory.Get(s.artist.ID)
	if err != nil {
		s.uc.logger.Warn("CreateReservation: artist id=%s is gone: %v", s.artist.ID, err)
		s.resetLocked()
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrArtistNotFound
		}
		return nil, err
	}
	if !artist.IsApproved() {
		return nil, ErrArtistPending
	}

	// 2. Доступность слота по свежему снапшоту
	if err := checkSlotAvailable(s.uc.resolver.DaySlots(s.date), s.slot); err != nil {
		s.uc.logger.Warn("CreateReservation: date=%s slot=%s no longer available: %v", s.date, s.slot, err)
		return nil, err
	}

	// 3. Атомарная проверка и вставка в журнале
	reservation, err := s.uc.ledger.Reserve(ctx, reservations.ReserveRequest{
		Date:   s.date,
		Slot:   s.slot,
		Artist: artist.Snapshot(),
		Note:   note,
	})
	if err != nil {
		return nil, err
	}

	s.stage = StageConfirmed
	s.artist = artist
	s.reservation = reservation
	s.uc.logger.Info("CreateReservation: confirmed reservation id=%s", reservation.ID)
	return reservation, nil
}

// ChangeSelection меняет дату и слот и сбрасывает сессию к поиску артиста
func (s *Session) ChangeSelection(date domain.DateKey, slot domain.SlotID) error {
	if err := validateSelection(date, slot); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.date = date
	s.slot = slot
	s.resetLocked()
	return nil
}

// Reset явная отмена: возврат к поиску артиста с той же датой и слотом
func (s *Session) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.resetLocked()
}

func (s *Session) resetLocked() {
	s.stage = StageSelectingArtist
	s.artist = nil
	s.reservation = nil
}
