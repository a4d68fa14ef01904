package store

import (
	"fmt"
)

// SeedExecution describes one execution to insert with Seed.
type SeedExecution struct {
	ID        string
	ParentID  string
	Variables map[string]any
}

// Seed inserts executions in parent-first order regardless of the order in
// which they are listed. Parents may also be executions already present in the
// store.
func (s *InMemoryStore) Seed(execs []SeedExecution) error {
	pending := make([]SeedExecution, len(execs))
	copy(pending, execs)

	for len(pending) > 0 {
		var next []SeedExecution
		for _, e := range pending {
			if e.ParentID != "" && !s.has(e.ParentID) {
				next = append(next, e)
				continue
			}
			if err := s.AddExecution(e.ID, e.ParentID, e.Variables); err != nil {
				return fmt.Errorf("seed execution '%s': %w", e.ID, err)
			}
		}
		if len(next) == len(pending) {
			return fmt.Errorf("%w: '%s' (parent '%s')", ErrUnresolvedParent, next[0].ID, next[0].ParentID)
		}
		pending = next
	}
	return nil
}

func (s *InMemoryStore) has(id string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.executions[id]
	return ok
}
