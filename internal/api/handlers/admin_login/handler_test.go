package admin_login

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StageCalendar/internal/service/admin"
	"github.com/m04kA/SMC-StageCalendar/pkg/logger"
)

func TestHandle(t *testing.T) {
	hash, err := admin.HashPassword("open-sesame")
	require.NoError(t, err)
	gate, err := admin.NewGate(hash, logger.NewNop())
	require.NoError(t, err)
	h := NewHandler(gate, logger.NewNop())

	login := func(body string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/login", strings.NewReader(body))
		rec := httptest.NewRecorder()
		h.Handle(rec, req)
		return rec
	}

	assert.Equal(t, http.StatusBadRequest, login(`{"password":`).Code)

	rec := login(`{"password":"wrong"}`)
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.False(t, gate.IsOpen())

	rec = login(`{"password":"open-sesame"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"admin":true}`, rec.Body.String())
	assert.True(t, gate.IsOpen())
}
