package domain

import "time"

// ArtistSnapshot is the denormalized artist data stored with a reservation.
// Later changes to the artist record do not alter it.
type ArtistSnapshot struct {
	ArtistID   string
	Name       string
	ArtistName string
	Phone      string
	LineID     string
}

// Reservation represents a confirmed booking of one slot on one date.
// (DateKey, SlotID) is unique across the ledger.
type Reservation struct {
	ID      string  `json:"id"`
	DateKey DateKey `json:"dateKey"`
	SlotID  SlotID  `json:"slotId"`

	// Denormalized data for history
	ArtistID   string `json:"artistId"`
	Name       string `json:"name"`
	ArtistName string `json:"artistName"`
	Phone      string `json:"phone"`
	LineID     string `json:"lineId"`
	Note       string `json:"note,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
}

// SlotKey returns the (date, slot) business key of the reservation
func (r *Reservation) SlotKey() string {
	return ClosedSlotKey(r.DateKey, r.SlotID)
}
