package memstore

import (
	"context"
	"sync"

	"pharmahub/models"
	"pharmahub/stores"
)

type Carts struct {
	mu    sync.RWMutex
	lines map[int][]models.CartLine
}

func NewCarts() *Carts {
	return &Carts{lines: make(map[int][]models.CartLine)}
}

func (s *Carts) Lines(_ context.Context, userID int) ([]models.CartLine, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.CartLine, len(s.lines[userID]))
	copy(out, s.lines[userID])
	return out, nil
}

func (s *Carts) Add(_ context.Context, line models.CartLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.lines[line.UserID] {
		if existing.ProductID == line.ProductID && existing.Unit == line.Unit {
			s.lines[line.UserID][i].Quantity += line.Quantity
			return nil
		}
	}
	s.lines[line.UserID] = append(s.lines[line.UserID], line)
	return nil
}

func (s *Carts) SetQuantity(_ context.Context, userID int, lineID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.lines[userID] {
		if existing.ID == lineID {
			if qty <= 0 {
				s.lines[userID] = append(s.lines[userID][:i], s.lines[userID][i+1:]...)
			} else {
				s.lines[userID][i].Quantity = qty
			}
			return nil
		}
	}
	return stores.ErrNotFound
}

func (s *Carts) Remove(_ context.Context, userID int, lineID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, existing := range s.lines[userID] {
		if existing.ID == lineID {
			s.lines[userID] = append(s.lines[userID][:i], s.lines[userID][i+1:]...)
			return nil
		}
	}
	return stores.ErrNotFound
}

func (s *Carts) Clear(_ context.Context, userID int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.lines, userID)
	return nil
}
