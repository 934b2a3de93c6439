package reservations

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
)

// Ledger журнал подтвержденных бронирований.
// Гарантирует не более одного бронирования на пару (дата, слот).
type Ledger struct {
	store        Store
	gate         Authorizer
	horizon      Horizon
	timeProvider TimeProvider
	metrics      Metrics
	logger       Logger
}

// Option настройка журнала
type Option func(*Ledger)

// WithMetrics подключает счетчик бронирований
func WithMetrics(m Metrics) Option {
	return func(l *Ledger) {
		l.metrics = m
	}
}

// NewLedger создает новый экземпляр журнала
func NewLedger(
	store Store,
	gate Authorizer,
	horizon Horizon,
	timeProvider TimeProvider,
	logger Logger,
	opts ...Option,
) *Ledger {
	l := &Ledger{
		store:        store,
		gate:         gate,
		horizon:      horizon,
		timeProvider: timeProvider,
		logger:       logger,
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Reserve создает бронирование. Проверки и вставка выполняются
// в одной критической секции хранилища.
// Статус артиста здесь не проверяется: это ответственность сценария бронирования.
func (l *Ledger) Reserve(ctx context.Context, req ReserveRequest) (*domain.Reservation, error) {
	l.logger.Info("Reserve: date=%s slot=%s artist=%s", req.Date, req.Slot, req.Artist.ArtistID)

	if err := validateReserve(req); err != nil {
		l.logger.Warn("Reserve: validation failed: %v", err)
		l.observe(resultInvalid)
		return nil, err
	}

	var created domain.Reservation
	err := l.store.Mutate(ctx, func(state *snapshot.State) error {
		// 1. Горизонт
		if err := l.horizon.CheckBookable(req.Date); err != nil {
			return err
		}

		// 2. Закрытие слота
		if state.IsClosed(req.Date, req.Slot) {
			return fmt.Errorf("%w: %s", domain.ErrSlotClosed, domain.ClosedSlotKey(req.Date, req.Slot))
		}

		// 3. Занятость слота
		if existing, ok := state.ReservationAt(req.Date, req.Slot); ok {
			return fmt.Errorf("%w: %s by reservation %s", domain.ErrSlotTaken,
				domain.ClosedSlotKey(req.Date, req.Slot), existing.ID)
		}

		// 4. Вставка с денормализованными данными артиста
		created = domain.Reservation{
			ID:         uuid.NewString(),
			DateKey:    req.Date,
			SlotID:     req.Slot,
			ArtistID:   req.Artist.ArtistID,
			Name:       req.Artist.Name,
			ArtistName: req.Artist.ArtistName,
			Phone:      req.Artist.Phone,
			LineID:     req.Artist.LineID,
			Note:       strings.TrimSpace(req.Note),
			CreatedAt:  l.timeProvider.Now().UTC(),
		}
		state.Reservations[created.ID] = created
		return nil
	})
	if err != nil {
		l.logger.Warn("Reserve: date=%s slot=%s failed: %v", req.Date, req.Slot, err)
		l.observe(classify(err))
		return nil, err
	}

	l.observe(resultCreated)
	l.logger.Info("Reserve: created reservation id=%s", created.ID)
	return &created, nil
}

// Cancel удаляет бронирование безвозвратно
func (l *Ledger) Cancel(ctx context.Context, id string) error {
	if err := l.gate.Require(); err != nil {
		l.logger.Warn("Cancel: reservation id=%s rejected: %v", id, err)
		return err
	}

	err := l.store.Mutate(ctx, func(state *snapshot.State) error {
		if _, ok := state.Reservations[id]; !ok {
			return ErrReservationNotFound
		}
		delete(state.Reservations, id)
		return nil
	})
	if err != nil {
		l.logger.Warn("Cancel: reservation id=%s failed: %v", id, err)
		return err
	}

	l.logger.Info("Cancel: reservation id=%s removed", id)
	return nil
}

// Get возвращает бронирование по ID
func (l *Ledger) Get(id string) (*domain.Reservation, error) {
	r, ok := l.store.View().Reservations[id]
	if !ok {
		return nil, ErrReservationNotFound
	}
	return &r, nil
}

// List возвращает все бронирования по дате и порядку слотов
func (l *Ledger) List() []domain.Reservation {
	state := l.store.View()
	list := make([]domain.Reservation, 0, len(state.Reservations))
	for _, r := range state.Reservations {
		list = append(list, r)
	}
	slices.SortFunc(list, compareReservations)
	return list
}

// ListByDate возвращает бронирования на дату в порядке слотов
func (l *Ledger) ListByDate(date domain.DateKey) []domain.Reservation {
	byDate := l.store.View().ReservationsOn(date)
	list := make([]domain.Reservation, 0, len(byDate))
	for _, s := range domain.Slots {
		if r, ok := byDate[s.ID]; ok {
			list = append(list, r)
		}
	}
	return list
}

func (l *Ledger) observe(result string) {
	if l.metrics != nil {
		l.metrics.IncReservation(result)
	}
}

func validateReserve(req ReserveRequest) error {
	if _, ok := req.Slot.Index(); !ok {
		return fmt.Errorf("%w: unknown slot %q", domain.ErrValidation, req.Slot)
	}
	if _, err := domain.ParseDateKey(string(req.Date)); err != nil {
		return err
	}
	if req.Artist.ArtistID == "" {
		return fmt.Errorf("%w: artist is required", domain.ErrValidation)
	}
	if utf8.RuneCountInString(req.Note) > domain.MaxNoteLength {
		return fmt.Errorf("%w: note exceeds %d characters", domain.ErrValidation, domain.MaxNoteLength)
	}
	return nil
}

func classify(err error) string {
	switch {
	case errors.Is(err, domain.ErrSlotClosed):
		return resultClosed
	case errors.Is(err, domain.ErrSlotTaken):
		return resultTaken
	case errors.Is(err, domain.ErrHorizonExceeded):
		return resultHorizon
	default:
		return resultFailed
	}
}

func compareReservations(a, b domain.Reservation) int {
	if c := strings.Compare(string(a.DateKey), string(b.DateKey)); c != 0 {
		return c
	}
	ai, _ := a.SlotID.Index()
	bi, _ := b.SlotID.Index()
	return ai - bi
}
