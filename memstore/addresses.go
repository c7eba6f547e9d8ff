package memstore

import (
	"context"
	"sync"

	"pharmahub/models"
	"pharmahub/stores"
)

type Addresses struct {
	mu        sync.RWMutex
	addresses []models.Address
}

func NewAddresses(seed ...models.Address) *Addresses {
	return &Addresses{addresses: append([]models.Address{}, seed...)}
}

func (s *Addresses) List(_ context.Context, userID int) ([]models.Address, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Address{}
	for _, a := range s.addresses {
		if a.UserID == userID {
			out = append(out, a)
		}
	}
	return out, nil
}

// clearDefaultLocked drops the default flag on all of the user's addresses
// except the one with keepID. Callers hold the write lock.
func (s *Addresses) clearDefaultLocked(userID int, keepID string) {
	for i := range s.addresses {
		if s.addresses[i].UserID == userID && s.addresses[i].ID != keepID {
			s.addresses[i].IsDefault = false
		}
	}
}

func (s *Addresses) Create(_ context.Context, a models.Address) (models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if a.IsDefault {
		s.clearDefaultLocked(a.UserID, a.ID)
	}
	s.addresses = append(s.addresses, a)
	return a, nil
}

func (s *Addresses) Update(_ context.Context, a models.Address) (models.Address, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.addresses {
		if existing.ID == a.ID && existing.UserID == a.UserID {
			s.addresses[i] = a
			if a.IsDefault {
				s.clearDefaultLocked(a.UserID, a.ID)
			}
			return a, nil
		}
	}
	return models.Address{}, stores.ErrNotFound
}

// Delete removes the address. Deleting the current default does not promote
// another address.
func (s *Addresses) Delete(_ context.Context, userID int, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, a := range s.addresses {
		if a.ID == id && a.UserID == userID {
			s.addresses = append(s.addresses[:i], s.addresses[i+1:]...)
			return nil
		}
	}
	return stores.ErrNotFound
}
