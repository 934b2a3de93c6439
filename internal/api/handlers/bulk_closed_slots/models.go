package bulk_closed_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/service/closedslots"
)

// BulkRequest HTTP request model
type BulkRequest struct {
	Start    string   `json:"start"`              // "2024-01-01"
	End      string   `json:"end"`                // "2024-03-31"
	Weekdays []int    `json:"weekdays,omitempty"` // 0=вс ... 6=сб, пусто = все дни
	Slots    []string `json:"slots,omitempty"`    // пусто = все слоты
	Closed   bool     `json:"closed"`
}

// BulkResponse HTTP response model
type BulkResponse struct {
	Closed bool     `json:"closed"`
	Dates  []string `json:"dates"`
	Total  int      `json:"total"`
	Done   int      `json:"done"`
}

// ToRangeRequest конвертирует HTTP запрос в модель реестра
func (r *BulkRequest) ToRangeRequest() (closedslots.RangeRequest, error) {
	start, err := domain.ParseDateKey(r.Start)
	if err != nil {
		return closedslots.RangeRequest{}, err
	}
	end, err := domain.ParseDateKey(r.End)
	if err != nil {
		return closedslots.RangeRequest{}, err
	}

	weekdays := make([]time.Weekday, 0, len(r.Weekdays))
	for _, d := range r.Weekdays {
		if d < 0 || d > 6 {
			return closedslots.RangeRequest{}, fmt.Errorf("%w: invalid weekday %d", domain.ErrValidation, d)
		}
		weekdays = append(weekdays, time.Weekday(d))
	}

	slots := make([]domain.SlotID, 0, len(r.Slots))
	for _, raw := range r.Slots {
		s, err := domain.ParseSlotID(raw)
		if err != nil {
			return closedslots.RangeRequest{}, err
		}
		slots = append(slots, s)
	}

	return closedslots.RangeRequest{
		Start:    start,
		End:      end,
		Weekdays: weekdays,
		Slots:    slots,
		Closed:   r.Closed,
	}, nil
}
