package seed_demo

import (
	"encoding/binary"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
)

// builder строит демо-снапшот. При одинаковом seed результат одинаков.
type builder struct {
	source *rand.ChaCha8
	rng    *rand.Rand
	now    time.Time
	state  *snapshot.State
}

func newBuilder(seed int64, now time.Time) *builder {
	var key [32]byte
	binary.LittleEndian.PutUint64(key[:8], uint64(seed))
	source := rand.NewChaCha8(key)

	return &builder{
		source: source,
		rng:    rand.New(source),
		now:    now.UTC(),
		state:  snapshot.NewState(),
	}
}

// Build заполняет снапшот: три артиста, расписание закрытий на весь горизонт,
// один полностью занятый и один частично занятый выходной
func Build(seed int64, now time.Time, today, end domain.DateKey) *snapshot.State {
	b := newBuilder(seed, now)
	approved, second := b.artists()
	b.schedule(today, end)

	weekends := weekendsBetween(today, end)
	if len(weekends) == 0 {
		return b.state
	}
	fullDay := pick(weekends, 1)
	partialDay := pick(weekends, 2)

	for _, s := range domain.Slots {
		if b.state.IsClosed(fullDay, s.ID) {
			continue
		}
		b.reserve(fullDay, s.ID, approved, "demo: fully booked")
	}

	var open []domain.SlotID
	for _, s := range domain.Slots {
		if !b.state.IsClosed(partialDay, s.ID) && !b.taken(partialDay, s.ID) {
			open = append(open, s.ID)
		}
	}
	if len(open) >= 2 {
		b.reserve(partialDay, open[0], second, "demo: popular slot")
		b.reserve(partialDay, open[1], approved, "demo: booked")
	}

	return b.state
}

func (b *builder) artists() (domain.Artist, domain.Artist) {
	first := domain.Artist{
		ID:        "artist_demo_approved_1",
		Name:      "Taro Yamada",
		Phone:     "090-1111-2222",
		StageName: "Sora no Oto",
		Genre:     "Acoustic",
		Instagram: "sora_note",
		YouTube:   "https://www.youtube.com/@soranote",
		VideoURL:  "https://www.youtube.com/@soranote",
		LineID:    "@soranote",
		Status:    domain.ArtistApproved,
		CreatedAt: b.now,
	}
	second := domain.Artist{
		ID:          "artist_demo_approved_2",
		Name:        "Hana Sato",
		Phone:       "090-3333-4444",
		StageName:   "HANA VIBES",
		Genre:       "Neo-Soul",
		TikTok:      "@hanavibes",
		Instagram:   "hana_vibes",
		VideoLineID: "@hanavibes",
		LineID:      "@hanavibes",
		Status:      domain.ArtistApproved,
		CreatedAt:   b.now,
	}
	pending := domain.Artist{
		ID:        "artist_demo_pending_1",
		Name:      "Jiro Tanaka",
		Phone:     "080-5555-6666",
		StageName: "Tokuyama Beats",
		Genre:     "DJ / HipHop",
		Twitter:   "@tokuyamabeats",
		VideoURL:  "https://youtu.be/dQw4w9WgXcQ",
		LineID:    "@tokuyama_beats",
		Status:    domain.ArtistPending,
		CreatedAt: b.now,
	}

	for _, a := range []domain.Artist{first, second, pending} {
		b.state.Artists[a.ID] = a
	}
	return first, second
}

// schedule закрывает будни почти целиком, выходные оставляет открытыми
func (b *builder) schedule(today, end domain.DateKey) {
	for d := today; !d.After(end); d = d.AddDays(1) {
		if isWeekend(d) {
			if b.rng.Float64() < weekendOneSlotClosed {
				b.state.SetClosed(d, domain.Slots[b.rng.IntN(len(domain.Slots))].ID, true)
			}
			continue
		}

		allClosed := b.rng.Float64() < weekdayClosedShare
		for _, s := range domain.Slots {
			if allClosed || s.ID != domain.SlotA {
				b.state.SetClosed(d, s.ID, true)
			}
		}
	}
}

func (b *builder) reserve(date domain.DateKey, slot domain.SlotID, artist domain.Artist, note string) {
	id := uuid.Must(uuid.NewRandomFromReader(b.source)).String()
	snap := artist.Snapshot()
	b.state.Reservations[id] = domain.Reservation{
		ID:         id,
		DateKey:    date,
		SlotID:     slot,
		ArtistID:   snap.ArtistID,
		Name:       snap.Name,
		ArtistName: snap.ArtistName,
		Phone:      snap.Phone,
		LineID:     snap.LineID,
		Note:       note,
		CreatedAt:  b.now,
	}
}

func (b *builder) taken(date domain.DateKey, slot domain.SlotID) bool {
	_, ok := b.state.ReservationAt(date, slot)
	return ok
}

func weekendsBetween(today, end domain.DateKey) []domain.DateKey {
	var weekends []domain.DateKey
	for d := today; !d.After(end) && len(weekends) < weekendScanLimit; d = d.AddDays(1) {
		if isWeekend(d) {
			weekends = append(weekends, d)
		}
	}
	return weekends
}

func isWeekend(d domain.DateKey) bool {
	wd := d.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// pick возвращает i-й элемент или первый, если элементов меньше
func pick(dates []domain.DateKey, i int) domain.DateKey {
	if i < len(dates) {
		return dates[i]
	}
	return dates[0]
}
