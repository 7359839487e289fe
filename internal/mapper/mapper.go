// Package mapper converts between domain models and transport DTOs.
package mapper

import (
	"school-activities/internal/api"
	"school-activities/internal/entities"
)

// ToAPIActivity maps entities.Activity to transport model.
func ToAPIActivity(a entities.Activity) api.Activity {
	participants := make([]string, len(a.Participants))
	copy(participants, a.Participants)

	return api.Activity{
		Description:     a.Description,
		Schedule:        a.Schedule,
		MaxParticipants: a.MaxParticipants,
		Participants:    participants,
	}
}

// ToAPIActivities maps the full registry snapshot to the transport map.
func ToAPIActivities(src map[string]entities.Activity) api.ActivitiesResponse {
	res := make(api.ActivitiesResponse, len(src))
	for name, act := range src {
		res[name] = ToAPIActivity(act)
	}
	return res
}
