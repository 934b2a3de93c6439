package snapshot

import (
	"maps"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

// State полный снапшот хранилища.
// Закоммиченный State неизменяем: мутации выполняются над копией (см. Store.Mutate).
type State struct {
	Version      int                           `json:"version"`
	Reservations map[string]domain.Reservation `json:"reservations"`
	Artists      map[string]domain.Artist      `json:"artists"`
	ClosedSlots  map[string]bool               `json:"closedSlots"`
}

// NewState создает пустой снапшот текущей версии схемы
func NewState() *State {
	return &State{
		Version:      domain.SnapshotVersion,
		Reservations: make(map[string]domain.Reservation),
		Artists:      make(map[string]domain.Artist),
		ClosedSlots:  make(map[string]bool),
	}
}

// Clone возвращает независимую копию снапшота
func (s *State) Clone() *State {
	return &State{
		Version:      s.Version,
		Reservations: maps.Clone(s.Reservations),
		Artists:      maps.Clone(s.Artists),
		ClosedSlots:  maps.Clone(s.ClosedSlots),
	}
}

// IsEmpty возвращает true, если в снапшоте нет данных
func (s *State) IsEmpty() bool {
	return len(s.Reservations) == 0 && len(s.Artists) == 0 && len(s.ClosedSlots) == 0
}

// IsClosed проверяет, закрыт ли слот на дату
func (s *State) IsClosed(date domain.DateKey, slot domain.SlotID) bool {
	return s.ClosedSlots[domain.ClosedSlotKey(date, slot)]
}

// SetClosed выставляет или снимает флаг закрытия.
// Открытый слот не хранится: отсутствие ключа означает "открыт".
func (s *State) SetClosed(date domain.DateKey, slot domain.SlotID, closed bool) {
	key := domain.ClosedSlotKey(date, slot)
	if closed {
		s.ClosedSlots[key] = true
		return
	}
	delete(s.ClosedSlots, key)
}

// ReservationAt возвращает бронирование слота на дату, если оно есть
func (s *State) ReservationAt(date domain.DateKey, slot domain.SlotID) (domain.Reservation, bool) {
	for _, r := range s.Reservations {
		if r.DateKey == date && r.SlotID == slot {
			return r, true
		}
	}
	return domain.Reservation{}, false
}

// ReservationsOn возвращает бронирования на дату, индексированные по слоту
func (s *State) ReservationsOn(date domain.DateKey) map[domain.SlotID]domain.Reservation {
	result := make(map[domain.SlotID]domain.Reservation)
	for _, r := range s.Reservations {
		if r.DateKey == date {
			result[r.SlotID] = r
		}
	}
	return result
}

// normalize восстанавливает nil-карты после декодирования
func (s *State) normalize() {
	if s.Reservations == nil {
		s.Reservations = make(map[string]domain.Reservation)
	}
	if s.Artists == nil {
		s.Artists = make(map[string]domain.Artist)
	}
	if s.ClosedSlots == nil {
		s.ClosedSlots = make(map[string]bool)
	}
}
