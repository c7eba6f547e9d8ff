package memstore

import (
	"context"
	"sort"
	"sync"
	"time"

	"pharmahub/models"
	"pharmahub/stores"
)

type Orders struct {
	mu     sync.RWMutex
	orders []models.Order
}

func NewOrders(seed ...models.Order) *Orders {
	return &Orders{orders: append([]models.Order{}, seed...)}
}

func (s *Orders) Insert(_ context.Context, o models.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
	return nil
}

func sortNewestFirst(orders []models.Order) {
	sort.SliceStable(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
}

func (s *Orders) All(_ context.Context) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Order, len(s.orders))
	copy(out, s.orders)
	sortNewestFirst(out)
	return out, nil
}

func (s *Orders) ListByUser(_ context.Context, userID int) ([]models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []models.Order{}
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, o)
		}
	}
	sortNewestFirst(out)
	return out, nil
}

func (s *Orders) GetByID(_ context.Context, id string) (models.Order, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return models.Order{}, stores.ErrNotFound
}

func (s *Orders) SetStatus(_ context.Context, id, status string, at time.Time) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, o := range s.orders {
		if o.ID == id {
			s.orders[i].Status = status
			s.orders[i].UpdatedAt = at
			return s.orders[i], nil
		}
	}
	return models.Order{}, stores.ErrNotFound
}
