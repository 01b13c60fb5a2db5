package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseClock(t *testing.T) {
	t.Run("HH:MM:SS", func(t *testing.T) {
		c, err := ParseClock("17:30:00")
		require.NoError(t, err)
		assert.Equal(t, 17, c.Hour())
		assert.Equal(t, 30, c.Minute())
	})

	t.Run("HH:MM", func(t *testing.T) {
		c, err := ParseClock("06:00")
		require.NoError(t, err)
		assert.Equal(t, 6, c.Hour())
		assert.Equal(t, 0, c.Minute())
	})

	t.Run("garbage is rejected", func(t *testing.T) {
		for _, s := range []string{"", "25:00", "17h30", "noon"} {
			_, err := ParseClock(s)
			assert.ErrorIs(t, err, ErrInvalidClock, s)
		}
	})
}

func TestClockIntervalOn(t *testing.T) {
	date := time.Date(2024, 1, 3, 0, 0, 0, 0, time.UTC)

	t.Run("anchors both clocks on the date", func(t *testing.T) {
		iv, err := ClockIntervalOn(date, "06:00:00", "23:00:00")
		require.NoError(t, err)
		assert.Equal(t, time.Date(2024, 1, 3, 6, 0, 0, 0, time.UTC), iv.Start)
		assert.Equal(t, time.Date(2024, 1, 3, 23, 0, 0, 0, time.UTC), iv.End)
	})

	t.Run("inverted clocks are rejected", func(t *testing.T) {
		_, err := ClockIntervalOn(date, "23:00:00", "06:00:00")
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}
