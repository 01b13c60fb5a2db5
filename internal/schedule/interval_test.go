package schedule

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 1, 3, hour, min, 0, 0, time.UTC)
}

func mustInterval(t *testing.T, start, end time.Time) Interval {
	t.Helper()
	iv, err := NewInterval(start, end)
	require.NoError(t, err)
	return iv
}

func TestNewInterval(t *testing.T) {
	t.Run("valid range", func(t *testing.T) {
		iv, err := NewInterval(at(10, 0), at(11, 0))
		require.NoError(t, err)
		assert.Equal(t, at(10, 0), iv.Start)
		assert.Equal(t, at(11, 0), iv.End)
	})

	t.Run("zero length is rejected", func(t *testing.T) {
		_, err := NewInterval(at(10, 0), at(10, 0))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})

	t.Run("inverted range is rejected", func(t *testing.T) {
		_, err := NewInterval(at(11, 0), at(10, 0))
		assert.ErrorIs(t, err, ErrInvalidInterval)
	})
}

func TestIntervalOverlaps(t *testing.T) {
	base := Interval{Start: at(10, 0), End: at(12, 0)}

	cases := []struct {
		name  string
		other Interval
		want  bool
	}{
		{"identical", Interval{at(10, 0), at(12, 0)}, true},
		{"other inside base", Interval{at(10, 30), at(11, 30)}, true},
		{"base inside other", Interval{at(9, 0), at(13, 0)}, true},
		{"partial at start edge", Interval{at(9, 0), at(10, 30)}, true},
		{"partial at end edge", Interval{at(11, 30), at(13, 0)}, true},
		{"abuts before", Interval{at(8, 0), at(10, 0)}, false},
		{"abuts after", Interval{at(12, 0), at(14, 0)}, false},
		{"disjoint before", Interval{at(7, 0), at(8, 0)}, false},
		{"disjoint after", Interval{at(13, 0), at(14, 0)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, base.Overlaps(tc.other))
			// Overlap is symmetric.
			assert.Equal(t, tc.want, tc.other.Overlaps(base))
		})
	}
}

func TestIntervalContains(t *testing.T) {
	iv := Interval{Start: at(10, 0), End: at(12, 0)}

	assert.True(t, iv.Contains(at(10, 0)), "start is inclusive")
	assert.True(t, iv.Contains(at(11, 59)))
	assert.False(t, iv.Contains(at(12, 0)), "end is exclusive")
	assert.False(t, iv.Contains(at(9, 59)))
}

func TestIntervalMinutes(t *testing.T) {
	iv := mustInterval(t, at(10, 0), at(11, 30))
	assert.Equal(t, int64(90), iv.Minutes())
	assert.Equal(t, 90*time.Minute, iv.Duration())
}

func TestIntervalIntersect(t *testing.T) {
	base := Interval{Start: at(10, 0), End: at(12, 0)}

	t.Run("partial overlap", func(t *testing.T) {
		part, ok := base.Intersect(Interval{Start: at(11, 0), End: at(13, 0)})
		require.True(t, ok)
		assert.Equal(t, at(11, 0), part.Start)
		assert.Equal(t, at(12, 0), part.End)
	})

	t.Run("contained interval is returned unchanged", func(t *testing.T) {
		inner := Interval{Start: at(10, 30), End: at(11, 30)}
		part, ok := base.Intersect(inner)
		require.True(t, ok)
		assert.Equal(t, inner, part)
	})

	t.Run("abutting intervals do not intersect", func(t *testing.T) {
		_, ok := base.Intersect(Interval{Start: at(12, 0), End: at(13, 0)})
		assert.False(t, ok)
	})
}
