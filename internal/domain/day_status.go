package domain

// DayStatus is the derived availability of a calendar date
type DayStatus string

const (
	DayTooFuture     DayStatus = "too_future"
	DayPast          DayStatus = "past"
	DayAllClosed     DayStatus = "all_closed"
	DayFull          DayStatus = "full"
	DayPartiallyOpen DayStatus = "partially_open"
)

// IsBookable returns true if at least one slot can still be reserved
func (s DayStatus) IsBookable() bool {
	return s == DayPartiallyOpen
}
