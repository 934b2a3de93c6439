package closedslots

import (
	"time"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
)

// RangeRequest пакетная операция над диапазоном дат
type RangeRequest struct {
	Start    domain.DateKey // Начало диапазона (включительно)
	End      domain.DateKey // Конец диапазона (включительно)
	Weekdays []time.Weekday // Фильтр по дням недели, пусто = все дни
	Slots    []domain.SlotID
	Closed   bool // true = закрыть, false = открыть
}

// Key ключ реестра закрытых слотов
type Key struct {
	Date domain.DateKey
	Slot domain.SlotID
}

// Progress результат обработки одного ключа пакетной операции.
// Progress с Err != nil всегда последний в последовательности.
type Progress struct {
	Key   Key
	Done  int
	Total int
	Err   error
}
