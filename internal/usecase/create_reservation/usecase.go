package create_reservation

import (
	"context"
	"strings"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

// UseCase use case для создания бронирования
type UseCase struct {
	directory ArtistDirectory
	ledger    ReservationLedger
	resolver  AvailabilityResolver
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	directory ArtistDirectory,
	ledger ReservationLedger,
	resolver AvailabilityResolver,
	logger Logger,
) *UseCase {
	return &UseCase{
		directory: directory,
		ledger:    ledger,
		resolver:  resolver,
		logger:    logger,
	}
}

// Begin открывает сессию бронирования для выбранных даты и слота.
// Слот должен быть доступен на момент выбора.
func (uc *UseCase) Begin(date domain.DateKey, slot domain.SlotID) (*Session, error) {
	if err := validateSelection(date, slot); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}
	if err := checkSlotAvailable(uc.resolver.DaySlots(date), slot); err != nil {
		uc.logger.Warn("CreateReservation: date=%s slot=%s not available: %v", date, slot, err)
		return nil, err
	}

	return &Session{
		uc:    uc,
		stage: StageSelectingArtist,
		date:  date,
		slot:  slot,
	}, nil
}

// Execute проводит сессию от выбора слота до подтверждения
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateReservation: date=%s slot=%s artist_id=%q query=%q",
		req.Date, req.Slot, req.ArtistID, req.ArtistQuery)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateReservation: validation failed: %v", err)
		return nil, err
	}

	// 2. Выбор слота
	session, err := uc.Begin(req.Date, req.Slot)
	if err != nil {
		return nil, err
	}

	// 3. Поиск артиста
	if id := strings.TrimSpace(req.ArtistID); id != "" {
		_, err = session.SelectArtist(id)
	} else {
		_, err = session.LookupArtist(req.ArtistQuery)
	}
	if err != nil {
		return nil, err
	}

	// 4. Проверка допуска
	if err := session.Proceed(); err != nil {
		return nil, err
	}

	// 5. Подтверждение
	reservation, err := session.Confirm(ctx, req.Note)
	if err != nil {
		return nil, err
	}

	return &Response{
		Reservation: reservation,
		Artist:      session.State().Artist,
	}, nil
}
