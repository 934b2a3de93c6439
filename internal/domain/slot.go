package domain

import "fmt"

// SlotID identifies one of the fixed daily time windows
type SlotID string

const (
	SlotA SlotID = "A"
	SlotB SlotID = "B"
	SlotC SlotID = "C"
	SlotD SlotID = "D"
)

// Slot is static configuration: a bookable window with its display time range and label
type Slot struct {
	ID    SlotID
	Time  string // "17:00-18:00"
	Label string
}

// Slots is the canonical display order of all configured slots
var Slots = []Slot{
	{ID: SlotA, Time: "17:00-18:00", Label: "Set 1"},
	{ID: SlotB, Time: "18:00-19:00", Label: "Set 2"},
	{ID: SlotC, Time: "19:00-20:00", Label: "Set 3"},
	{ID: SlotD, Time: "20:00-21:00", Label: "Set 4"},
}

// SlotIDs returns ids of all configured slots in canonical order
func SlotIDs() []SlotID {
	ids := make([]SlotID, len(Slots))
	for i, s := range Slots {
		ids[i] = s.ID
	}
	return ids
}

// ParseSlotID validates a raw slot identifier
func ParseSlotID(raw string) (SlotID, error) {
	id := SlotID(raw)
	if _, ok := id.Index(); !ok {
		return "", fmt.Errorf("%w: unknown slot %q", ErrValidation, raw)
	}
	return id, nil
}

// Index returns the position of the slot in canonical order
func (id SlotID) Index() (int, bool) {
	for i, s := range Slots {
		if s.ID == id {
			return i, true
		}
	}
	return -1, false
}

// Slot returns the catalogue entry for the id
func (id SlotID) Slot() (Slot, bool) {
	i, ok := id.Index()
	if !ok {
		return Slot{}, false
	}
	return Slots[i], true
}

// ClosedSlotKey builds the registry key "<dateKey>_<slotId>"
func ClosedSlotKey(date DateKey, slot SlotID) string {
	return string(date) + "_" + string(slot)
}
