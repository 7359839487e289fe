// Package entities contains core business entities.
package entities

// Activity is a named extracurricular offering with a bounded roster.
// Participants keeps signup order and never contains the same email twice.
type Activity struct {
	Name            string
	Description     string
	Schedule        string
	MaxParticipants int
	Participants    []string
}

// HasParticipant reports whether email is already on the roster.
func (a Activity) HasParticipant(email string) bool {
	for _, p := range a.Participants {
		if p == email {
			return true
		}
	}
	return false
}

// IsFull reports whether the roster reached capacity.
func (a Activity) IsFull() bool {
	return len(a.Participants) >= a.MaxParticipants
}

// Clone returns a deep copy safe to hand across the API boundary.
func (a Activity) Clone() Activity {
	cp := a
	cp.Participants = make([]string, len(a.Participants))
	copy(cp.Participants, a.Participants)
	return cp
}
