package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"folio/contexts/identity-access/role-service/domain/entities"
	domainerrors "folio/contexts/identity-access/role-service/domain/errors"
)

// Store is an in-memory role registry for local runtime and tests.
type Store struct {
	mu     sync.RWMutex
	grants map[string]entities.RoleGrant
}

func NewStore() *Store {
	return &Store{grants: make(map[string]entities.RoleGrant)}
}

func (s *Store) CreateGrant(_ context.Context, grant entities.RoleGrant) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := grant.Key()
	if existing, ok := s.grants[key]; ok && existing.Active {
		return domainerrors.ErrDuplicateGrant
	}
	s.grants[key] = grant
	return nil
}

func (s *Store) HasRole(_ context.Context, userID, role string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grant, ok := s.grants[userID+"/"+role]
	return ok && grant.Active, nil
}

func (s *Store) ListUserRoles(_ context.Context, userID string) ([]entities.RoleGrant, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	grants := make([]entities.RoleGrant, 0)
	for _, grant := range s.grants {
		if grant.UserID == userID && grant.Active {
			grants = append(grants, grant)
		}
	}
	sort.Slice(grants, func(i, j int) bool {
		return grants[i].Role < grants[j].Role
	})
	return grants, nil
}

func (s *Store) Now() time.Time {
	return time.Now().UTC()
}
