// Package memory implements the repository contracts on top of in-process
// maps. It is the default backend when no database is configured and also
// serves as the test double for the persistence layer.
package memory

import (
	"sync"

	"editais/internal/domain/entity"

	"github.com/google/uuid"
)

// Store holds every entity collection behind one mutex so multi-step
// operations can be made atomic by taking the lock once.
type Store struct {
	mu sync.Mutex

	tenders      map[string]*entity.Tender
	filters      map[uuid.UUID]*entity.Filter
	alerts       []*entity.AlertHistory
	users        map[uuid.UUID]*entity.User
	usersByEmail map[string]uuid.UUID
}

// NewStore creates an empty store.
func NewStore() *Store {
	return &Store{
		tenders:      make(map[string]*entity.Tender),
		filters:      make(map[uuid.UUID]*entity.Filter),
		users:        make(map[uuid.UUID]*entity.User),
		usersByEmail: make(map[string]uuid.UUID),
	}
}

// lock acquires the store mutex unless the caller already holds it through
// a transaction. It returns the matching unlock.
func (s *Store) lock(held bool) func() {
	if held {
		return func() {}
	}
	s.mu.Lock()

	return s.mu.Unlock
}

func cloneTender(t *entity.Tender) *entity.Tender {
	clone := *t
	if t.EstimatedValue != nil {
		v := *t.EstimatedValue
		clone.EstimatedValue = &v
	}
	if t.Description != nil {
		d := *t.Description
		clone.Description = &d
	}

	return &clone
}

func cloneFilter(f *entity.Filter) *entity.Filter {
	clone := *f
	if f.MinValue != nil {
		v := *f.MinValue
		clone.MinValue = &v
	}
	if f.MaxValue != nil {
		v := *f.MaxValue
		clone.MaxValue = &v
	}

	return &clone
}

func cloneAlertHistory(h *entity.AlertHistory) *entity.AlertHistory {
	clone := *h

	return &clone
}

func cloneUser(u *entity.User) *entity.User {
	clone := *u

	return &clone
}
