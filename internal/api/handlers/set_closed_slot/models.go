package set_closed_slot

// SetClosedSlotRequest HTTP request model.
// Closed == nil переключает текущее состояние.
type SetClosedSlotRequest struct {
	Closed *bool `json:"closed,omitempty"`
}

// ClosedSlotResponse HTTP response model
type ClosedSlotResponse struct {
	Date        string   `json:"date"`
	SlotID      string   `json:"slotId"`
	Closed      bool     `json:"closed"`
	ClosedSlots []string `json:"closedSlots"`
}
