package set_closed_day

// SetClosedDayRequest HTTP request model
type SetClosedDayRequest struct {
	Closed bool `json:"closed"`
}

// ClosedDayResponse HTTP response model
type ClosedDayResponse struct {
	Date        string   `json:"date"`
	ClosedSlots []string `json:"closedSlots"`
}
