package lookup_artist

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StageCalendar/internal/domain"
	"github.com/m04kA/SMC-StageCalendar/pkg/logger"
)

type stubDirectory struct {
	artists []domain.Artist
}

func (s *stubDirectory) Lookup(query string) (*domain.Artist, error) {
	q := strings.TrimSpace(query)
	if q == "" {
		return nil, fmt.Errorf("%w: empty query", domain.ErrValidation)
	}
	for i := range s.artists {
		if strings.EqualFold(s.artists[i].StageName, q) {
			return &s.artists[i], nil
		}
	}
	return nil, fmt.Errorf("%w: no artist", domain.ErrNotFound)
}

func lookup(h *Handler, q string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/artists/lookup?q="+url.QueryEscape(q), nil)
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle(t *testing.T) {
	dir := &stubDirectory{artists: []domain.Artist{
		{ID: "a1", Name: "Jane Roe", StageName: "Nova", Status: domain.ArtistApproved},
		{ID: "a2", Name: "John Doe", StageName: "", Status: domain.ArtistPending},
		{ID: "a3", Name: "Kim Lee", StageName: "Echo", Status: domain.ArtistPending},
	}}
	h := NewHandler(dir, logger.NewNop())

	rec := lookup(h, "nova")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":"a1","displayName":"Nova","name":"Jane Roe","status":"approved","eligible":true}`,
		rec.Body.String())

	rec = lookup(h, "echo")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"eligible":false`)

	assert.Equal(t, http.StatusNotFound, lookup(h, "nobody").Code)
	assert.Equal(t, http.StatusBadRequest, lookup(h, "   ").Code)
}
