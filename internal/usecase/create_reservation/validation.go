package create_reservation

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/service/availability"
)

// validateSelection проверяет формат даты и слота
func validateSelection(date domain.DateKey, slot domain.SlotID) error {
	if _, err := domain.ParseDateKey(string(date)); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, ok := slot.Index(); !ok {
		return fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, slot)
	}
	return nil
}

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if err := validateSelection(req.Date, req.Slot); err != nil {
		return err
	}
	if strings.TrimSpace(req.ArtistID) == "" && strings.TrimSpace(req.ArtistQuery) == "" {
		return fmt.Errorf("%w: artist id or query is required", ErrInvalidInput)
	}
	return nil
}

// checkSlotAvailable проверяет, что слот можно забронировать по текущему снапшоту
func checkSlotAvailable(view availability.DayView, slot domain.SlotID) error {
	switch view.Status {
	case domain.DayTooFuture, domain.DayPast:
		return fmt.Errorf("%w: %s is %s", domain.ErrHorizonExceeded, view.Date, view.Status)
	}

	for _, s := range view.Slots {
		if s.Slot.ID != slot {
			continue
		}
		if s.Closed {
			return fmt.Errorf("%w: %s", domain.ErrSlotClosed, domain.ClosedSlotKey(view.Date, slot))
		}
		if s.Reservation != nil {
			return fmt.Errorf("%w: %s", domain.ErrSlotTaken, domain.ClosedSlotKey(view.Date, slot))
		}
		return nil
	}
	return fmt.Errorf("%w: unknown slot %q", ErrInvalidInput, slot)
}
