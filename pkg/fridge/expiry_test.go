package fridge

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestClassifyBoundaries(t *testing.T) {
	now := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name      string
		expiresAt time.Time
		expected  Status
	}{
		{"expired yesterday", now.AddDate(0, 0, -1), StatusExpired},
		{"expires exactly now", now, StatusExpired},
		{"expires in one day", now.AddDate(0, 0, 1), StatusExpiringSoon},
		{"expires in three days", now.AddDate(0, 0, 3), StatusExpiringSoon},
		{"expires in four days", now.AddDate(0, 0, 4), StatusFresh},
		{"expires in a month", now.AddDate(0, 1, 0), StatusFresh},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Classify(tt.expiresAt, now))
		})
	}
}

func TestClassifyPartialDayRoundsUp(t *testing.T) {
	now := time.Date(2025, 3, 10, 23, 0, 0, 0, time.UTC)

	// One hour left still counts as a full remaining day.
	assert.Equal(t, 1, DaysUntilExpiry(now.Add(time.Hour), now))
	assert.Equal(t, StatusExpiringSoon, Classify(now.Add(time.Hour), now))

	// Exactly 72 hours is day three; one second more tips into day four.
	assert.Equal(t, 3, DaysUntilExpiry(now.Add(72*time.Hour), now))
	assert.Equal(t, StatusExpiringSoon, Classify(now.Add(72*time.Hour), now))
	assert.Equal(t, 4, DaysUntilExpiry(now.Add(72*time.Hour+time.Second), now))
	assert.Equal(t, StatusFresh, Classify(now.Add(72*time.Hour+time.Second), now))
}

func TestClassifyExpiredJustPast(t *testing.T) {
	now := time.Date(2025, 3, 10, 10, 0, 0, 0, time.UTC)

	// Ten hours past expiry: ceil(-10/24) == 0, already expired.
	assert.Equal(t, 0, DaysUntilExpiry(now.Add(-10*time.Hour), now))
	assert.Equal(t, StatusExpired, Classify(now.Add(-10*time.Hour), now))
}

func TestClassifyMonotonic(t *testing.T) {
	now := time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)

	rank := map[Status]int{
		StatusExpired:      0,
		StatusExpiringSoon: 1,
		StatusFresh:        2,
	}

	previous := -1
	for offset := -10 * 24 * time.Hour; offset <= 10*24*time.Hour; offset += 6 * time.Hour {
		status := Classify(now.Add(offset), now)
		current := rank[status]
		assert.GreaterOrEqual(t, current, previous,
			"an item expiring later must never look less fresh (offset %v)", offset)
		previous = current
	}
}
