package create_reservation

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	createReservation "github.com/m04kA/SMC-StageCalendar/internal/usecase/create_reservation"
	"github.com/m04kA/SMC-StageCalendar/pkg/logger"
)

type stubUseCase struct {
	got  *createReservation.Request
	resp *createReservation.Response
	err  error
}

func (s *stubUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	s.got = req
	return s.resp, s.err
}

func post(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Created(t *testing.T) {
	uc := &stubUseCase{resp: &createReservation.Response{
		Reservation: &domain.Reservation{
			ID:         "res-1",
			DateKey:    "2024-01-20",
			SlotID:     domain.SlotB,
			ArtistID:   "artist-1",
			ArtistName: "DJ Test",
			CreatedAt:  time.Date(2024, time.January, 15, 10, 0, 0, 0, time.UTC),
		},
	}}
	h := NewHandler(uc, logger.NewNop())

	rec := post(h, `{"date":"2024-01-20","slotId":"B","artistQuery":"dj test","note":"hi"}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":"res-1"`)
	assert.Contains(t, rec.Body.String(), `"slotTime":"18:00-19:00"`)

	require.NotNil(t, uc.got)
	assert.Equal(t, domain.DateKey("2024-01-20"), uc.got.Date)
	assert.Equal(t, domain.SlotB, uc.got.Slot)
	assert.Equal(t, "dj test", uc.got.ArtistQuery)
	assert.Equal(t, "hi", uc.got.Note)
}

func TestHandle_BadInput(t *testing.T) {
	uc := &stubUseCase{}
	h := NewHandler(uc, logger.NewNop())

	for _, body := range []string{
		`not json`,
		`{"date":"2024-1-20","slotId":"B"}`,
		`{"date":"2024-01-20","slotId":"X"}`,
		`{"date":"2024-01-20","slotId":"B","unknown":true}`,
	} {
		rec := post(h, body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
	assert.Nil(t, uc.got)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{name: "pending artist", err: fmt.Errorf("%w: x", createReservation.ErrArtistPending), want: http.StatusForbidden},
		{name: "artist not found", err: createReservation.ErrArtistNotFound, want: http.StatusNotFound},
		{name: "slot closed", err: fmt.Errorf("%w: x", domain.ErrSlotClosed), want: http.StatusConflict},
		{name: "slot taken", err: fmt.Errorf("%w: x", domain.ErrSlotTaken), want: http.StatusConflict},
		{name: "beyond horizon", err: fmt.Errorf("%w: x", domain.ErrHorizonExceeded), want: http.StatusBadRequest},
		{name: "validation", err: fmt.Errorf("%w: x", domain.ErrValidation), want: http.StatusBadRequest},
		{name: "persist failure", err: errors.New("disk full"), want: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := NewHandler(&stubUseCase{err: tt.err}, logger.NewNop())
			rec := post(h, `{"date":"2024-01-20","slotId":"A","artistId":"artist-1"}`)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}
