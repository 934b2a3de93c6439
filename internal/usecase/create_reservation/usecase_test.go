package create_reservation

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/kv/memory"
	"github.com/m04kA/SMC-StageCalendar/internal/infra/storage/snapshot"
	"github.com/m04kA/SMC-StageCalendar/internal/service/artists"
	"github.com/m04kA/SMC-StageCalendar/internal/service/availability"
	"github.com/m04kA/SMC-StageCalendar/internal/service/horizon"
	"github.com/m04kA/SMC-StageCalendar/internal/service/reservations"
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

type fixture struct {
	uc        *UseCase
	store     *snapshot.Store
	gate      *stubGate
	directory *artists.Directory
	ledger    *reservations.Ledger
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	log := logger.NewNop()
	store := snapshot.NewStore(memory.NewStore(), "test", log)
	gate := &stubGate{}
	clock := fixedTime{t: time.Date(2024, time.January, 1, 9, 0, 0, 0, time.Local)}
	h := horizon.New(3, clock)

	directory := artists.NewDirectory(store, gate, clock, log)
	ledger := reservations.NewLedger(store, gate, h, clock, log)
	resolver := availability.NewResolver(store, h)

	return &fixture{
		uc:        NewUseCase(directory, ledger, resolver, log),
		store:     store,
		gate:      gate,
		directory: directory,
		ledger:    ledger,
	}
}

func (f *fixture) register(t *testing.T, stage string, approve bool) *domain.Artist {
	t.Helper()
	ctx := context.Background()
	a, err := f.directory.Register(ctx, artists.RegisterRequest{
		Name:      stage + " Person",
		Phone:     "090-0000-0000",
		StageName: stage,
		LineID:    "line_" + stage,
		Instagram: "@" + stage,
		VideoURL:  "https://example.com/" + stage,
	})
	require.NoError(t, err)

	if approve {
		f.gate.open = true
		a, err = f.directory.Approve(ctx, a.ID)
		require.NoError(t, err)
		f.gate.open = false
	}
	return a
}

func TestSession_HappyPath(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Sakura", true)

	session, err := f.uc.Begin("2024-01-20", domain.SlotB)
	require.NoError(t, err)
	assert.Equal(t, StageSelectingArtist, session.State().Stage)

	found, err := session.LookupArtist("sakura")
	require.NoError(t, err)
	assert.Equal(t, "Sakura", found.StageName)
	assert.True(t, session.State().Eligible)
	assert.Equal(t, StageArtistFound, session.State().Stage)

	require.NoError(t, session.Proceed())
	assert.Equal(t, StageEnteringDetails, session.State().Stage)

	res, err := session.Confirm(context.Background(), "bring a cajon")
	require.NoError(t, err)
	assert.Equal(t, StageConfirmed, session.State().Stage)
	assert.Equal(t, "Sakura", res.ArtistName)
	assert.Equal(t, found.ID, res.ArtistID)

	_, err = f.uc.Begin("2024-01-20", domain.SlotB)
	assert.ErrorIs(t, err, domain.ErrSlotTaken)
}

func TestSession_PendingArtistBlocked(t *testing.T) {
	f := newFixture(t)
	pending := f.register(t, "Newbie", false)

	session, err := f.uc.Begin("2024-01-20", domain.SlotA)
	require.NoError(t, err)

	found, err := session.LookupArtist("newbie")
	require.NoError(t, err)
	assert.Equal(t, pending.ID, found.ID)
	assert.False(t, session.State().Eligible)

	err = session.Proceed()
	assert.ErrorIs(t, err, ErrArtistPending)
	assert.Equal(t, StageArtistFound, session.State().Stage)

	_, err = session.Confirm(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Empty(t, f.ledger.List())
}

func TestSession_NotFoundIsDistinct(t *testing.T) {
	f := newFixture(t)

	session, err := f.uc.Begin("2024-01-20", domain.SlotA)
	require.NoError(t, err)

	_, err = session.LookupArtist("ghost")
	assert.ErrorIs(t, err, ErrArtistNotFound)
	assert.NotErrorIs(t, err, ErrArtistPending)
	assert.Equal(t, StageSelectingArtist, session.State().Stage)

	assert.ErrorIs(t, session.Proceed(), ErrInvalidTransition)
}

func TestSession_ConfirmRevalidatesSlot(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	f.register(t, "Sakura", true)

	session, err := f.uc.Begin("2024-01-20", domain.SlotC)
	require.NoError(t, err)
	_, err = session.LookupArtist("sakura")
	require.NoError(t, err)
	require.NoError(t, session.Proceed())

	// слот закрыли между показом и отправкой
	require.NoError(t, f.store.Mutate(ctx, func(state *snapshot.State) error {
		state.SetClosed("2024-01-20", domain.SlotC, true)
		return nil
	}))

	_, err = session.Confirm(ctx, "")
	assert.ErrorIs(t, err, domain.ErrSlotClosed)
	assert.Equal(t, StageEnteringDetails, session.State().Stage)
	assert.Empty(t, f.ledger.List())
}

func TestSession_ConfirmAfterArtistRejected(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	a := f.register(t, "Sakura", true)

	session, err := f.uc.Begin("2024-01-20", domain.SlotC)
	require.NoError(t, err)
	_, err = session.LookupArtist("sakura")
	require.NoError(t, err)
	require.NoError(t, session.Proceed())

	f.gate.open = true
	require.NoError(t, f.directory.Reject(ctx, a.ID))

	_, err = session.Confirm(ctx, "")
	assert.ErrorIs(t, err, ErrArtistNotFound)
	assert.Equal(t, StageSelectingArtist, session.State().Stage)
}

func TestSession_ChangeSelectionAndReset(t *testing.T) {
	f := newFixture(t)
	f.register(t, "Sakura", true)

	session, err := f.uc.Begin("2024-01-20", domain.SlotA)
	require.NoError(t, err)
	_, err = session.LookupArtist("sakura")
	require.NoError(t, err)

	require.NoError(t, session.ChangeSelection("2024-01-21", domain.SlotD))
	state := session.State()
	assert.Equal(t, StageSelectingArtist, state.Stage)
	assert.Nil(t, state.Artist)
	assert.Equal(t, domain.DateKey("2024-01-21"), state.Date)
	assert.Equal(t, domain.SlotD, state.Slot)

	assert.ErrorIs(t, session.ChangeSelection("2024-1-21", domain.SlotD), domain.ErrValidation)

	_, err = session.LookupArtist("sakura")
	require.NoError(t, err)
	require.NoError(t, session.Proceed())
	session.Reset()
	assert.Equal(t, StageSelectingArtist, session.State().Stage)
}

func TestUseCase_BeginRejectsUnavailable(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.Begin("2024-04-02", domain.SlotA)
	assert.ErrorIs(t, err, domain.ErrHorizonExceeded)

	_, err = f.uc.Begin("2023-12-31", domain.SlotA)
	assert.ErrorIs(t, err, domain.ErrHorizonExceeded)

	_, err = f.uc.Begin("2024-01-20", domain.SlotID("Z"))
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestUseCase_Execute(t *testing.T) {
	ctx := context.Background()
	f := newFixture(t)
	approved := f.register(t, "Sakura", true)
	f.register(t, "Newbie", false)

	resp, err := f.uc.Execute(ctx, &Request{Date: "2024-04-01", Slot: domain.SlotC, ArtistQuery: "sakura"})
	require.NoError(t, err)
	assert.Equal(t, approved.ID, resp.Reservation.ArtistID)

	resp, err = f.uc.Execute(ctx, &Request{Date: "2024-04-01", Slot: domain.SlotD, ArtistID: approved.ID})
	require.NoError(t, err)
	assert.Equal(t, domain.SlotD, resp.Reservation.SlotID)

	_, err = f.uc.Execute(ctx, &Request{Date: "2024-04-01", Slot: domain.SlotC, ArtistQuery: "sakura"})
	assert.ErrorIs(t, err, domain.ErrSlotTaken)

	_, err = f.uc.Execute(ctx, &Request{Date: "2024-04-01", Slot: domain.SlotA, ArtistQuery: "newbie"})
	assert.ErrorIs(t, err, ErrArtistPending)

	_, err = f.uc.Execute(ctx, &Request{Date: "2024-04-01", Slot: domain.SlotA})
	assert.ErrorIs(t, err, domain.ErrValidation)

	assert.Len(t, f.ledger.List(), 2)
}
