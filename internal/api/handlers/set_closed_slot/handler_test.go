package set_closed_slot

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/pkg/logger"
)

type stubRegistry struct {
	closed  map[string]bool
	gateErr error
}

func newStubRegistry() *stubRegistry {
	return &stubRegistry{closed: make(map[string]bool)}
}

func (s *stubRegistry) SetClosed(_ context.Context, date domain.DateKey, slot domain.SlotID, closed bool) error {
	if s.gateErr != nil {
		return s.gateErr
	}
	s.closed[domain.ClosedSlotKey(date, slot)] = closed
	return nil
}

func (s *stubRegistry) Toggle(_ context.Context, date domain.DateKey, slot domain.SlotID) (bool, error) {
	if s.gateErr != nil {
		return false, s.gateErr
	}
	key := domain.ClosedSlotKey(date, slot)
	s.closed[key] = !s.closed[key]
	return s.closed[key], nil
}

func (s *stubRegistry) ClosedOn(date domain.DateKey) []domain.SlotID {
	var out []domain.SlotID
	for _, id := range domain.SlotIDs() {
		if s.closed[domain.ClosedSlotKey(date, id)] {
			out = append(out, id)
		}
	}
	return out
}

func put(h *Handler, date, slot, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPut, "/api/v1/closed-slots/"+date+"/"+slot, strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"date": date, "slotId": slot})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_ToggleWithoutBody(t *testing.T) {
	reg := newStubRegistry()
	h := NewHandler(reg, logger.NewNop())

	rec := put(h, "2024-01-10", "C", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2024-01-10","slotId":"C","closed":true,"closedSlots":["C"]}`, rec.Body.String())

	rec = put(h, "2024-01-10", "C", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"date":"2024-01-10","slotId":"C","closed":false,"closedSlots":[]}`, rec.Body.String())
}

func TestHandle_ExplicitValue(t *testing.T) {
	reg := newStubRegistry()
	h := NewHandler(reg, logger.NewNop())

	rec := put(h, "2024-01-10", "A", `{"closed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = put(h, "2024-01-10", "A", `{"closed":true}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, reg.closed["2024-01-10_A"])
}

func TestHandle_Errors(t *testing.T) {
	h := NewHandler(newStubRegistry(), logger.NewNop())
	assert.Equal(t, http.StatusBadRequest, put(h, "10-01-2024", "A", "").Code)
	assert.Equal(t, http.StatusBadRequest, put(h, "2024-01-10", "E", "").Code)
	assert.Equal(t, http.StatusBadRequest, put(h, "2024-01-10", "A", `{"closed":"yes"}`).Code)

	locked := newStubRegistry()
	locked.gateErr = domain.ErrUnauthorized
	h = NewHandler(locked, logger.NewNop())
	assert.Equal(t, http.StatusForbidden, put(h, "2024-01-10", "A", "").Code)

	beyond := newStubRegistry()
	beyond.gateErr = domain.ErrRangeInvalid
	h = NewHandler(beyond, logger.NewNop())
	assert.Equal(t, http.StatusBadRequest, put(h, "2024-09-10", "A", `{"closed":false}`).Code)
}
