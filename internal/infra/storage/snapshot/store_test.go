package snapshot

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/kv/memory"
	"github.com/m04kA/SMC-StageCalendar/pkg/logger"
)

const testKey = "test.snapshot"

type failingKV struct {
	*memory.Store
	failPut bool
	failGet bool
}

func (f *failingKV) Get(ctx context.Context, key string) ([]byte, error) {
	if f.failGet {
		return nil, errors.New("connection refused")
	}
	return f.Store.Get(ctx, key)
}

func (f *failingKV) Put(ctx context.Context, key string, value []byte) error {
	if f.failPut {
		return errors.New("disk full")
	}
	return f.Store.Put(ctx, key, value)
}

func sampleState() *State {
	st := NewState()
	st.Artists["artist_1"] = domain.Artist{
		ID: "artist_1", Name: "Taro", Phone: "090-1111-2222", StageName: "Sora",
		Instagram: "sora", LineID: "@sora", Status: domain.ArtistApproved,
		CreatedAt: time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}
	st.Reservations["res_1"] = domain.Reservation{
		ID: "res_1", DateKey: "2024-01-06", SlotID: domain.SlotB, ArtistID: "artist_1",
		Name: "Taro", ArtistName: "Sora", Phone: "090-1111-2222", LineID: "@sora",
		CreatedAt: time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC),
	}
	st.SetClosed("2024-01-08", domain.SlotA, true)
	return st
}

func TestStore_LoadFallsBackToEmpty(t *testing.T) {
	tests := []struct {
		name string
		blob []byte
	}{
		{name: "absent"},
		{name: "unparsable", blob: []byte("{not json")},
		{name: "version mismatch", blob: []byte(`{"version":2,"reservations":{},"artists":{},"closedSlots":{"2024-01-01_A":true}}`)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			kvStore := memory.NewStore()
			if tt.blob != nil {
				require.NoError(t, kvStore.Put(ctx, testKey, tt.blob))
			}

			s := NewStore(kvStore, testKey, logger.NewNop())
			require.NoError(t, s.Load(ctx))
			assert.True(t, s.View().IsEmpty())
			assert.Equal(t, domain.SnapshotVersion, s.View().Version)
		})
	}
}

func TestStore_LoadTransportError(t *testing.T) {
	s := NewStore(&failingKV{Store: memory.NewStore(), failGet: true}, testKey, logger.NewNop())
	err := s.Load(context.Background())
	assert.ErrorIs(t, err, ErrLoad)
}

func TestStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kvStore := memory.NewStore()

	s := NewStore(kvStore, testKey, logger.NewNop())
	require.NoError(t, s.Replace(ctx, sampleState()))

	reloaded := NewStore(kvStore, testKey, logger.NewNop())
	require.NoError(t, reloaded.Load(ctx))

	assert.Equal(t, s.View().Reservations, reloaded.View().Reservations)
	assert.Equal(t, s.View().Artists, reloaded.View().Artists)
	assert.Equal(t, s.View().ClosedSlots, reloaded.View().ClosedSlots)
}

func TestStore_MutateErrorLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.NewStore(), testKey, logger.NewNop())
	require.NoError(t, s.Replace(ctx, sampleState()))
	before := s.View()

	err := s.Mutate(ctx, func(st *State) error {
		st.SetClosed("2024-01-09", domain.SlotC, true)
		delete(st.Reservations, "res_1")
		return domain.ErrSlotTaken
	})

	assert.ErrorIs(t, err, domain.ErrSlotTaken)
	assert.Same(t, before, s.View())
	assert.False(t, s.View().IsClosed("2024-01-09", domain.SlotC))
	assert.Contains(t, s.View().Reservations, "res_1")
}

func TestStore_FailedSaveLeavesStateUnchanged(t *testing.T) {
	ctx := context.Background()
	kvStore := &failingKV{Store: memory.NewStore()}
	s := NewStore(kvStore, testKey, logger.NewNop())
	require.NoError(t, s.Replace(ctx, sampleState()))

	kvStore.failPut = true
	err := s.Mutate(ctx, func(st *State) error {
		st.SetClosed("2024-01-09", domain.SlotC, true)
		return nil
	})

	assert.ErrorIs(t, err, ErrPersist)
	assert.False(t, s.View().IsClosed("2024-01-09", domain.SlotC))
}

func TestStore_MutateSavesFullSnapshot(t *testing.T) {
	ctx := context.Background()
	kvStore := memory.NewStore()
	s := NewStore(kvStore, testKey, logger.NewNop())

	require.NoError(t, s.Mutate(ctx, func(st *State) error {
		st.SetClosed("2024-01-09", domain.SlotC, true)
		return nil
	}))

	raw, err := kvStore.Get(ctx, testKey)
	require.NoError(t, err)
	decoded, err := Decode(raw)
	require.NoError(t, err)
	assert.True(t, decoded.IsClosed("2024-01-09", domain.SlotC))
}

func TestStore_MutationsAreSerialized(t *testing.T) {
	ctx := context.Background()
	s := NewStore(memory.NewStore(), testKey, logger.NewNop())

	const workers = 50
	var wg sync.WaitGroup
	wg.Add(workers)
	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			_ = s.Mutate(ctx, func(st *State) error {
				if _, taken := st.ReservationAt("2024-01-06", domain.SlotA); taken {
					return domain.ErrSlotTaken
				}
				id := time.Now().Format(time.RFC3339Nano)
				st.Reservations[id] = domain.Reservation{ID: id, DateKey: "2024-01-06", SlotID: domain.SlotA}
				return nil
			})
		}()
	}
	wg.Wait()

	assert.Len(t, s.View().Reservations, 1)
}

func TestStore_MutateRespectsCancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewStore(memory.NewStore(), testKey, logger.NewNop())
	called := false
	err := s.Mutate(ctx, func(*State) error {
		called = true
		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.False(t, called)
}
