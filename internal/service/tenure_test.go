package service

import (
	"testing"
	"time"

	"github.com/bagdasarian/team-tasks/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestDaysSinceJoined(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		joinedAt time.Time
		want     int
	}{
		{"только что", now, 0},
		{"23 часа", now.Add(-23 * time.Hour), 0},
		{"ровно сутки", now.Add(-24 * time.Hour), 1},
		{"10 дней", now.Add(-10 * 24 * time.Hour), 10},
		{"дата в будущем", now.Add(time.Hour), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DaysSinceJoined(tt.joinedAt, now))
		})
	}
}

func TestCheckTransferTenure(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

	assert.NoError(t, checkTransferTenure(now.Add(-7*24*time.Hour), now))
	assert.NoError(t, checkTransferTenure(now.Add(-30*24*time.Hour), now))

	err := checkTransferTenure(now.Add(-2*24*time.Hour), now)
	assert.ErrorIs(t, err, domain.ErrConflict)
	assert.EqualError(t, err, "officer must be a member for at least 7 days: current 2 days, 5 days remaining")
}
