package bookings

// Status of a booking
type Status string

// Booking statuses
const (
	StatusPending     Status = "PENDING"
	StatusConfirmed   Status = "CONFIRMED"
	StatusInProgress  Status = "IN_PROGRESS"
	StatusCompleted   Status = "COMPLETED"
	StatusCancelled   Status = "CANCELLED"
	StatusRejected    Status = "REJECTED"
	StatusRescheduled Status = "RESCHEDULED"
)

var transitions = map[Status][]Status{
	StatusPending:     {StatusConfirmed, StatusCancelled, StatusRejected, StatusRescheduled},
	StatusConfirmed:   {StatusInProgress, StatusCancelled, StatusRescheduled},
	StatusRescheduled: {StatusConfirmed, StatusInProgress, StatusCancelled, StatusRejected},
	StatusInProgress:  {StatusCompleted, StatusCancelled},
}

// Valid reports whether s is a known status
func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusInProgress, StatusCompleted,
		StatusCancelled, StatusRejected, StatusRescheduled:
		return true
	}
	return false
}

// CanTransitionTo reports whether the status machine allows s -> next
func (s Status) CanTransitionTo(next Status) bool {
	for _, allowed := range transitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Terminal reports whether no further transition is possible
func (s Status) Terminal() bool {
	return len(transitions[s]) == 0
}

// AllowedTransitions returns the statuses reachable from s
func (s Status) AllowedTransitions() []Status {
	out := make([]Status, len(transitions[s]))
	copy(out, transitions[s])
	return out
}

// Assignable reports whether a technician may still be assigned in status s
func (s Status) Assignable() bool {
	return s == StatusPending || s == StatusConfirmed || s == StatusRescheduled
}
