// Package memstore implements the stores interfaces on process memory.
// It backs the test suite and the PHARMAHUB_STORE=memory mode. Mutations are
// serialized under the store mutex, which keeps the merge-on-add and
// single-default invariants intact under concurrent requests.
package memstore

import (
	"context"
	"sync"
	"time"

	"pharmahub/models"
	"pharmahub/stores"
)

type Users struct {
	mu    sync.RWMutex
	seq   int
	users []models.User
}

func NewUsers(seed ...models.User) *Users {
	s := &Users{}
	for _, u := range seed {
		s.users = append(s.users, u)
		if u.ID > s.seq {
			s.seq = u.ID
		}
	}
	return s
}

func (s *Users) GetByID(_ context.Context, id int) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, u := range s.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, stores.ErrNotFound
}

func (s *Users) GetByEmail(_ context.Context, email string) (models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	// Case-sensitive exact match, as the storefront has always behaved.
	for _, u := range s.users {
		if u.Email == email {
			return u, nil
		}
	}
	return models.User{}, stores.ErrNotFound
}

func (s *Users) All(_ context.Context) ([]models.User, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.User, len(s.users))
	copy(out, s.users)
	return out, nil
}

func (s *Users) Create(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return models.User{}, stores.ErrConflict
		}
	}
	s.seq++
	u.ID = s.seq
	now := time.Now()
	u.CreatedAt = now
	u.UpdatedAt = now
	s.users = append(s.users, u)
	return u, nil
}

func (s *Users) Update(_ context.Context, u models.User) (models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.users {
		if existing.ID == u.ID {
			u.CreatedAt = existing.CreatedAt
			u.UpdatedAt = time.Now()
			s.users[i] = u
			return u, nil
		}
	}
	return models.User{}, stores.ErrNotFound
}
