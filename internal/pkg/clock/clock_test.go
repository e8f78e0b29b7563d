//go:build unit

package clock_test

import (
	"testing"
	"time"

	"car-rental/internal/pkg/clock"

	"github.com/stretchr/testify/assert"
)

func TestDateOf(t *testing.T) {
	tokyo := time.FixedZone("Asia/Tokyo", 9*60*60)

	t.Run("drops time of day", func(t *testing.T) {
		got := clock.DateOf(time.Date(2025, 12, 10, 23, 59, 59, 999, time.UTC))
		assert.Equal(t, time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC), got)
	})

	t.Run("keeps the calendar date of the original location", func(t *testing.T) {
		got := clock.DateOf(time.Date(2025, 12, 10, 1, 0, 0, 0, tokyo))
		assert.Equal(t, time.Date(2025, 12, 10, 0, 0, 0, 0, time.UTC), got)
	})
}

func TestMockClock(t *testing.T) {
	start := time.Date(2025, 12, 1, 18, 0, 0, 0, time.UTC)
	c := clock.NewMockClock(start)

	assert.Equal(t, time.Date(2025, 12, 1, 0, 0, 0, 0, time.UTC), clock.Today(c))

	c.Add(8 * time.Hour)
	assert.Equal(t, time.Date(2025, 12, 2, 0, 0, 0, 0, time.UTC), clock.Today(c))

	c.Set(start)
	assert.Equal(t, start, c.Now())
}
