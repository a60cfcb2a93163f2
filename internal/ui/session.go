package ui

import (
	"time"

	"github.com/ngmaloney/surf-terminal/internal/models"
)

// session tracks the selected spot and the lifecycle of its fetch.
// Every fetch gets a new generation; results carrying an older generation
// are dropped so a slow response can never overwrite a newer selection.
type session struct {
	spot       models.Spot
	state      AppState
	generation uint64
	conditions *models.ConditionsViewModel
	fetchedAt  time.Time
	err        error
}

func newSession(spot models.Spot) session {
	return session{spot: spot, state: StateIdle}
}

// begin starts a fetch for spot and clears whatever was shown before
func (s *session) begin(spot models.Spot) uint64 {
	s.generation++
	s.spot = spot
	s.state = StateLoading
	s.conditions = nil
	s.fetchedAt = time.Time{}
	s.err = nil
	return s.generation
}

// succeed applies a result; it reports false for a stale generation
func (s *session) succeed(generation uint64, vm *models.ConditionsViewModel, at time.Time) bool {
	if generation != s.generation || s.state != StateLoading {
		return false
	}
	s.state = StateDisplay
	s.conditions = vm
	s.fetchedAt = at
	return true
}

// fail records a failed fetch; it reports false for a stale generation
func (s *session) fail(generation uint64, err error) bool {
	if generation != s.generation || s.state != StateLoading {
		return false
	}
	s.state = StateError
	s.err = err
	return true
}

// show puts ready-made conditions on screen without a fetch
func (s *session) show(vm *models.ConditionsViewModel, at time.Time) {
	s.generation++
	s.state = StateDisplay
	s.conditions = vm
	s.fetchedAt = at
	s.err = nil
}
