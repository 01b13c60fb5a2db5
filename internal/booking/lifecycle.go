package booking

// transitions is the full status machine:
//
//	pending   -> confirmed, cancelled
//	confirmed -> completed, cancelled
//	completed -> (terminal)
//	cancelled -> (terminal)
//
// Conflict and validation failures reject the request before a booking row
// exists, so they never appear here.
var transitions = map[Status][]Status{
	StatusPending:   {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted, StatusCancelled},
	StatusCompleted: {},
	StatusCancelled: {},
}

// ValidStatus reports whether s is a known booking status.
func ValidStatus(s Status) bool {
	_, ok := transitions[s]
	return ok
}

// CanTransition reports whether the status machine allows from -> to.
func CanTransition(from, to Status) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// Transition moves the booking to the next status, or fails with
// ErrInvalidStatus / ErrInvalidStatusTransition.
func (b *Booking) Transition(to Status) error {
	if !ValidStatus(to) {
		return ErrInvalidStatus
	}
	if !CanTransition(b.Status, to) {
		return ErrInvalidStatusTransition
	}
	b.Status = to
	return nil
}
