package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from, to Status
		want     bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusConfirmed, false},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusCancelled, false},
		{StatusCompleted, StatusConfirmed, false},
		{StatusCancelled, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestTransition(t *testing.T) {
	t.Run("confirm then complete", func(t *testing.T) {
		b := &Booking{Status: StatusPending}

		assert.NoError(t, b.Transition(StatusConfirmed))
		assert.Equal(t, StatusConfirmed, b.Status)

		assert.NoError(t, b.Transition(StatusCompleted))
		assert.Equal(t, StatusCompleted, b.Status)
	})

	t.Run("double confirm fails", func(t *testing.T) {
		b := &Booking{Status: StatusConfirmed}
		err := b.Transition(StatusConfirmed)
		assert.ErrorIs(t, err, ErrInvalidStatusTransition)
		assert.Equal(t, StatusConfirmed, b.Status, "status unchanged on failure")
	})

	t.Run("terminal statuses reject everything", func(t *testing.T) {
		for _, from := range []Status{StatusCompleted, StatusCancelled} {
			for _, to := range []Status{StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled} {
				b := &Booking{Status: from}
				assert.ErrorIs(t, b.Transition(to), ErrInvalidStatusTransition, "%s -> %s", from, to)
			}
		}
	})

	t.Run("unknown target status", func(t *testing.T) {
		b := &Booking{Status: StatusPending}
		assert.ErrorIs(t, b.Transition(Status("archived")), ErrInvalidStatus)
	})
}

func TestStatusIsActive(t *testing.T) {
	assert.True(t, StatusPending.IsActive())
	assert.True(t, StatusConfirmed.IsActive())
	assert.False(t, StatusCompleted.IsActive())
	assert.False(t, StatusCancelled.IsActive())
}
