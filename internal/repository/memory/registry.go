// Package memory implements the activity registry in process memory.
package memory

import (
	"context"
	"fmt"
	"sync"

	"school-activities/config"
	"school-activities/internal/entities"
	"school-activities/internal/metrics"

	"go.uber.org/zap"
)

// Registry holds every activity behind a single lock. The lock serializes
// roster mutations so the capacity and no-duplicate invariants hold under
// concurrent requests.
type Registry struct {
	log *zap.SugaredLogger
	cfg config.RegistryConfig

	mu         sync.RWMutex
	activities map[string]*entities.Activity
}

// New creates a memory registry instance.
func New(log *zap.SugaredLogger, cfg *config.Config) *Registry {
	return &Registry{
		log: log.Named("repo.memory"),
		cfg: cfg.Registry,
	}
}

// OnStart loads the seed catalog and builds the registry. Calling it again
// discards all signups and reseeds, which is also the reset path for tests.
func (r *Registry) OnStart(_ context.Context) error {
	seed, err := config.LoadSeed(r.cfg.SeedFile)
	if err != nil {
		return fmt.Errorf("load seed: %w", err)
	}

	activities := make(map[string]*entities.Activity, len(seed))
	for _, s := range seed {
		if s.Name == "" {
			return fmt.Errorf("seed activity with empty name")
		}
		if s.MaxParticipants <= 0 {
			return fmt.Errorf("seed activity %q: max_participants must be positive", s.Name)
		}
		if _, exists := activities[s.Name]; exists {
			return fmt.Errorf("seed activity %q listed twice", s.Name)
		}
		if len(s.Participants) > s.MaxParticipants {
			return fmt.Errorf("seed activity %q: %d participants over capacity %d",
				s.Name, len(s.Participants), s.MaxParticipants)
		}

		seen := make(map[string]struct{}, len(s.Participants))
		roster := make([]string, 0, len(s.Participants))
		for _, email := range s.Participants {
			if _, dup := seen[email]; dup {
				return fmt.Errorf("seed activity %q: duplicate participant %s", s.Name, email)
			}
			seen[email] = struct{}{}
			roster = append(roster, email)
		}

		activities[s.Name] = &entities.Activity{
			Name:            s.Name,
			Description:     s.Description,
			Schedule:        s.Schedule,
			MaxParticipants: s.MaxParticipants,
			Participants:    roster,
		}
		metrics.RosterSize.WithLabelValues(s.Name).Set(float64(len(roster)))
	}

	r.mu.Lock()
	r.activities = activities
	r.mu.Unlock()

	r.log.Infow("registry seeded", "activities", len(activities), "seed_file", r.cfg.SeedFile)
	return nil
}

// OnStop releases nothing; state lives and dies with the process.
func (r *Registry) OnStop(_ context.Context) error {
	return nil
}

// ListActivities returns a snapshot of every activity keyed by name. Rosters
// are copied so callers never alias registry state.
func (r *Registry) ListActivities(_ context.Context) (map[string]entities.Activity, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make(map[string]entities.Activity, len(r.activities))
	for name, act := range r.activities {
		out[name] = act.Clone()
	}
	return out, nil
}

// SignUp appends email to the activity roster. Preconditions are checked in
// order: the activity exists, the email is not already enrolled, the roster
// is below capacity.
func (r *Registry) SignUp(_ context.Context, activity, email string) (*entities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[activity]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}
	if act.HasParticipant(email) {
		return nil, entities.ErrAlreadySignedUp
	}
	if act.IsFull() {
		return nil, entities.ErrActivityFull
	}

	act.Participants = append(act.Participants, email)
	metrics.RosterSize.WithLabelValues(act.Name).Set(float64(len(act.Participants)))

	r.log.Infow("participant signed up",
		"activity", act.Name, "email", email, "roster_size", len(act.Participants))
	snapshot := act.Clone()
	return &snapshot, nil
}

// Unregister removes email from the activity roster, preserving the order of
// the remaining entries.
func (r *Registry) Unregister(_ context.Context, activity, email string) (*entities.Activity, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	act, ok := r.activities[activity]
	if !ok {
		return nil, entities.ErrActivityNotFound
	}

	idx := -1
	for i, p := range act.Participants {
		if p == email {
			idx = i
			break
		}
	}
	if idx < 0 {
		return nil, entities.ErrNotSignedUp
	}

	act.Participants = append(act.Participants[:idx], act.Participants[idx+1:]...)
	metrics.RosterSize.WithLabelValues(act.Name).Set(float64(len(act.Participants)))

	r.log.Infow("participant unregistered",
		"activity", act.Name, "email", email, "roster_size", len(act.Participants))
	snapshot := act.Clone()
	return &snapshot, nil
}
