package seed_demo

// Request модель запроса на заполнение демо-данными
type Request struct {
	// Force перезаписывает непустое хранилище; требует открытого гейта
	Force bool
}

// Response итог заполнения
type Response struct {
	Skipped      bool
	Artists      int
	Reservations int
	ClosedSlots  int
}

// Доли дней в демо-расписании
const (
	weekdayClosedShare   = 0.75 // будни, закрытые целиком
	weekendOneSlotClosed = 0.25 // выходные с одним случайно закрытым слотом
	weekendScanLimit     = 6
)
