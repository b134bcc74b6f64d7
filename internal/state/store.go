package state

import (
	"fmt"
	"sync"
	"time"
)

// Snapshot is the latest connectivity view shared with the UI.
type Snapshot struct {
	Healthy             bool
	LastChecked         time.Time
	LastError           error
	ConsecutiveFailures int // number of consecutive health-check failures
}

// IsOffline returns true when the API has been unreachable for multiple
// consecutive checks.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Store coordinates concurrent updates to the snapshot between the health
// poller and the UI.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update records the outcome of one health check.
func (s *Store) Update(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.snapshot.LastChecked = time.Now()
	if err != nil {
		s.snapshot.Healthy = false
		s.snapshot.LastError = err
		s.snapshot.ConsecutiveFailures++
		return
	}
	s.snapshot.Healthy = true
	s.snapshot.LastError = nil
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}
