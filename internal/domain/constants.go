package domain

// Snapshot schema
const (
	SnapshotVersion    = 1
	DefaultSnapshotKey = "stage-calendar.snapshot.v1"
)

// Default configuration values
const (
	DefaultHorizonMonths = 3
	DefaultBulkBatchSize = 20
)

// Business validation constants
const (
	MaxHorizonMonths = 24
	MaxNoteLength    = 500
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
