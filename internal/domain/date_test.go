package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDateKey(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{name: "canonical", raw: "2024-04-01"},
		{name: "leap day", raw: "2024-02-29"},
		{name: "no padding", raw: "2024-4-1", wantErr: true},
		{name: "not a leap year", raw: "2023-02-29", wantErr: true},
		{name: "month overflow", raw: "2024-13-01", wantErr: true},
		{name: "empty", raw: "", wantErr: true},
		{name: "with time", raw: "2024-04-01T10:00:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, err := ParseDateKey(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, DateKey(tt.raw), key)
		})
	}
}

func TestDateKey_Arithmetic(t *testing.T) {
	d := NewDateKey(2024, time.February, 28)

	assert.Equal(t, DateKey("2024-02-29"), d.AddDays(1))
	assert.Equal(t, DateKey("2024-03-01"), d.AddDays(2))
	assert.Equal(t, DateKey("2023-12-31"), NewDateKey(2024, time.January, 1).AddDays(-1))
	assert.Equal(t, time.Wednesday, d.Weekday())

	assert.True(t, DateKey("2024-01-31").Before("2024-02-01"))
	assert.True(t, DateKey("2024-10-01").After("2024-09-30"))
	assert.False(t, d.Before(d))
}

func TestDateKeyOf_WallClock(t *testing.T) {
	late := time.Date(2024, time.March, 10, 23, 59, 0, 0, time.Local)
	assert.Equal(t, DateKey("2024-03-10"), DateKeyOf(late))
}
