package reservations

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/kv/memory"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-StageCalendar/internal/service/horizon"
	"github.com/m04kA/SMC-StageCalendar/pkg/logger"
)

type stubGate struct{ open bool }

func (g *stubGate) Require() error {
	if !g.open {
		return domain.ErrUnauthorized
	}
	return nil
}

type fixedTime struct{ t time.Time }

func (f fixedTime) Now() time.Time { return f.t }

type countingMetrics struct {
	mu      sync.Mutex
	results map[string]int
}

func (m *countingMetrics) IncReservation(result string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.results[result]++
}

var artist = domain.ArtistSnapshot{
	ArtistID:   "artist-1",
	Name:       "Taro Yamada",
	ArtistName: "Taro Acoustic",
	Phone:      "090-1234-5678",
	LineID:     "taro_line",
}

func newTestLedger(t *testing.T) (*Ledger, *snapshot.Store, *stubGate, *countingMetrics) {
	t.Helper()
	store := snapshot.NewStore(memory.NewStore(), "test", logger.NewNop())
	gate := &stubGate{}
	clock := fixedTime{t: time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)}
	metrics := &countingMetrics{results: map[string]int{}}
	l := NewLedger(store, gate, horizon.New(3, clock), clock, logger.NewNop(), WithMetrics(metrics))
	return l, store, gate, metrics
}

func closeSlot(t *testing.T, store *snapshot.Store, date domain.DateKey, slot domain.SlotID) {
	t.Helper()
	require.NoError(t, store.Mutate(context.Background(), func(state *snapshot.State) error {
		state.SetClosed(date, slot, true)
		return nil
	}))
}

func TestLedger_ReserveScenario(t *testing.T) {
	ctx := context.Background()
	l, store, _, metrics := newTestLedger(t)
	closeSlot(t, store, "2024-04-01", domain.SlotD)

	_, err := l.Reserve(ctx, ReserveRequest{Date: "2024-04-01", Slot: domain.SlotD, Artist: artist})
	assert.ErrorIs(t, err, domain.ErrSlotClosed)
	assert.Empty(t, store.View().Reservations)

	r, err := l.Reserve(ctx, ReserveRequest{Date: "2024-04-01", Slot: domain.SlotC, Artist: artist, Note: " acoustic set "})
	require.NoError(t, err)
	assert.NotEmpty(t, r.ID)
	assert.Equal(t, "Taro Acoustic", r.ArtistName)
	assert.Equal(t, "acoustic set", r.Note)

	_, err = l.Reserve(ctx, ReserveRequest{Date: "2024-04-01", Slot: domain.SlotC, Artist: artist})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
	assert.Len(t, store.View().Reservations, 1)

	_, err = l.Reserve(ctx, ReserveRequest{Date: "2024-04-02", Slot: domain.SlotA, Artist: artist})
	assert.ErrorIs(t, err, domain.ErrHorizonExceeded)

	_, err = l.Reserve(ctx, ReserveRequest{Date: "2023-12-31", Slot: domain.SlotA, Artist: artist})
	assert.ErrorIs(t, err, domain.ErrHorizonExceeded)

	assert.Equal(t, 1, metrics.results[resultCreated])
	assert.Equal(t, 1, metrics.results[resultClosed])
	assert.Equal(t, 1, metrics.results[resultTaken])
	assert.Equal(t, 2, metrics.results[resultHorizon])
}

func TestLedger_ReserveValidation(t *testing.T) {
	l, _, _, _ := newTestLedger(t)

	tests := []struct {
		name string
		req  ReserveRequest
	}{
		{name: "unknown slot", req: ReserveRequest{Date: "2024-01-10", Slot: "E", Artist: artist}},
		{name: "bad date", req: ReserveRequest{Date: "2024-1-10", Slot: domain.SlotA, Artist: artist}},
		{name: "no artist", req: ReserveRequest{Date: "2024-01-10", Slot: domain.SlotA}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := l.Reserve(context.Background(), tt.req)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestLedger_ConcurrentReservesOfSameSlot(t *testing.T) {
	ctx := context.Background()
	l, store, _, _ := newTestLedger(t)

	const workers = 16
	var (
		wg      sync.WaitGroup
		mu      sync.Mutex
		success int
		taken   int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := l.Reserve(ctx, ReserveRequest{Date: "2024-02-10", Slot: domain.SlotB, Artist: artist})
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				success++
			} else if assert.ErrorIs(t, err, domain.ErrSlotTaken) {
				taken++
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, success)
	assert.Equal(t, workers-1, taken)
	assert.Len(t, store.View().Reservations, 1)
}

func TestLedger_ClosingKeepsExistingReservation(t *testing.T) {
	ctx := context.Background()
	l, store, _, _ := newTestLedger(t)

	r, err := l.Reserve(ctx, ReserveRequest{Date: "2024-02-10", Slot: domain.SlotA, Artist: artist})
	require.NoError(t, err)

	closeSlot(t, store, "2024-02-10", domain.SlotA)

	got, err := l.Get(r.ID)
	require.NoError(t, err)
	assert.Equal(t, r.ID, got.ID)
}

func TestLedger_Cancel(t *testing.T) {
	ctx := context.Background()
	l, _, gate, _ := newTestLedger(t)

	r, err := l.Reserve(ctx, ReserveRequest{Date: "2024-02-10", Slot: domain.SlotA, Artist: artist})
	require.NoError(t, err)

	assert.ErrorIs(t, l.Cancel(ctx, r.ID), domain.ErrUnauthorized)
	_, err = l.Get(r.ID)
	require.NoError(t, err)

	gate.open = true
	require.NoError(t, l.Cancel(ctx, r.ID))
	_, err = l.Get(r.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, l.Cancel(ctx, r.ID), domain.ErrNotFound)

	// освобожденный слот снова доступен
	_, err = l.Reserve(ctx, ReserveRequest{Date: "2024-02-10", Slot: domain.SlotA, Artist: artist})
	assert.NoError(t, err)
}

func TestLedger_ListOrdering(t *testing.T) {
	ctx := context.Background()
	l, _, _, _ := newTestLedger(t)

	keys := []struct {
		date domain.DateKey
		slot domain.SlotID
	}{
		{"2024-02-11", domain.SlotA},
		{"2024-02-10", domain.SlotD},
		{"2024-02-10", domain.SlotB},
	}
	for _, k := range keys {
		_, err := l.Reserve(ctx, ReserveRequest{Date: k.date, Slot: k.slot, Artist: artist})
		require.NoError(t, err)
	}

	list := l.List()
	require.Len(t, list, 3)
	assert.Equal(t, "2024-02-10_B", list[0].SlotKey())
	assert.Equal(t, "2024-02-10_D", list[1].SlotKey())
	assert.Equal(t, "2024-02-11_A", list[2].SlotKey())

	byDate := l.ListByDate("2024-02-10")
	require.Len(t, byDate, 2)
	assert.Equal(t, domain.SlotB, byDate[0].SlotID)
	assert.Equal(t, domain.SlotD, byDate[1].SlotID)
}
