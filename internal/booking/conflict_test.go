package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/openfield/field-booking-backend/internal/schedule"
)

func at(hour, min int) time.Time {
	return time.Date(2024, 1, 3, hour, min, 0, 0, time.UTC)
}

func TestHasConflict(t *testing.T) {
	existing := []*Booking{
		{ID: "b1", FieldID: "f1", Status: StatusConfirmed, StartTime: at(10, 0), EndTime: at(12, 0)},
		{ID: "b2", FieldID: "f1", Status: StatusCancelled, StartTime: at(14, 0), EndTime: at(16, 0)},
		{ID: "b3", FieldID: "f2", Status: StatusPending, StartTime: at(10, 0), EndTime: at(12, 0)},
	}

	cases := []struct {
		name      string
		fieldID   string
		candidate schedule.Interval
		want      bool
	}{
		{"candidate inside existing", "f1", schedule.Interval{Start: at(10, 30), End: at(11, 30)}, true},
		{"existing inside candidate", "f1", schedule.Interval{Start: at(9, 0), End: at(13, 0)}, true},
		{"partial overlap at start", "f1", schedule.Interval{Start: at(9, 0), End: at(10, 30)}, true},
		{"partial overlap at end", "f1", schedule.Interval{Start: at(11, 30), End: at(13, 0)}, true},
		{"abuts existing end", "f1", schedule.Interval{Start: at(12, 0), End: at(13, 0)}, false},
		{"abuts existing start", "f1", schedule.Interval{Start: at(9, 0), End: at(10, 0)}, false},
		{"overlaps cancelled booking", "f1", schedule.Interval{Start: at(14, 0), End: at(15, 0)}, false},
		{"same range on another field", "f3", schedule.Interval{Start: at(10, 0), End: at(12, 0)}, false},
		{"other field's booking does not block", "f1", schedule.Interval{Start: at(13, 0), End: at(14, 0)}, false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, HasConflict(existing, tc.fieldID, tc.candidate))
		})
	}
}

func TestAssertBookable(t *testing.T) {
	now := at(8, 0)

	t.Run("future aligned interval is bookable", func(t *testing.T) {
		assert.NoError(t, AssertBookable(schedule.Interval{Start: at(10, 0), End: at(11, 0)}, now))
	})

	t.Run("inverted range", func(t *testing.T) {
		err := AssertBookable(schedule.Interval{Start: at(11, 0), End: at(10, 0)}, now)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("zero length range", func(t *testing.T) {
		err := AssertBookable(schedule.Interval{Start: at(10, 0), End: at(10, 0)}, now)
		assert.ErrorIs(t, err, ErrInvalidTimeRange)
	})

	t.Run("start in the past", func(t *testing.T) {
		err := AssertBookable(schedule.Interval{Start: at(7, 0), End: at(9, 0)}, now)
		assert.ErrorIs(t, err, ErrStartTimePast)
	})

	t.Run("start exactly now is rejected", func(t *testing.T) {
		err := AssertBookable(schedule.Interval{Start: at(8, 0), End: at(9, 0)}, now)
		assert.ErrorIs(t, err, ErrStartTimePast)
	})

	t.Run("sub-minute precision is rejected", func(t *testing.T) {
		start := time.Date(2024, 1, 3, 10, 0, 30, 0, time.UTC)
		err := AssertBookable(schedule.Interval{Start: start, End: at(11, 0)}, now)
		assert.ErrorIs(t, err, ErrNotMinuteAligned)
	})
}
