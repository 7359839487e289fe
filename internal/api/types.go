// Package api defines the transport-level request and response models
// together with route registration for the activities API.
package api

// Activity is the transport representation of one activity.
type Activity struct {
	Description     string   `json:"description"`
	Schedule        string   `json:"schedule"`
	MaxParticipants int      `json:"max_participants"`
	Participants    []string `json:"participants"`
}

// ActivitiesResponse maps activity name to its details.
type ActivitiesResponse map[string]Activity

// MessageResponse carries the confirmation text for a successful mutation.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse carries a human-readable failure detail.
type ErrorResponse struct {
	Detail string `json:"detail"`
}
