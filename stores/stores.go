// Package stores defines the persistence contracts for every entity the
// storefront mutates. db provides the MongoDB implementations, memstore the
// in-memory ones used by tests and the PHARMAHUB_STORE=memory mode.
package stores

import (
	"context"
	"time"

	"pharmahub/models"
)

type UserStore interface {
	GetByID(ctx context.Context, id int) (models.User, error)
	GetByEmail(ctx context.Context, email string) (models.User, error)
	All(ctx context.Context) ([]models.User, error)
	// Create assigns the next sequential id and returns the stored user.
	// Fails with ErrConflict if the email is already registered.
	Create(ctx context.Context, u models.User) (models.User, error)
	Update(ctx context.Context, u models.User) (models.User, error)
}

type AddressStore interface {
	List(ctx context.Context, userID int) ([]models.Address, error)
	// Create and Update clear IsDefault on the owner's other addresses in
	// the same operation when the written address is the default.
	Create(ctx context.Context, a models.Address) (models.Address, error)
	Update(ctx context.Context, a models.Address) (models.Address, error)
	Delete(ctx context.Context, userID int, id string) error
}

type CartStore interface {
	Lines(ctx context.Context, userID int) ([]models.CartLine, error)
	// Add merges on (productId, unit): an existing line gets its quantity
	// incremented, otherwise the line is appended as-is.
	Add(ctx context.Context, line models.CartLine) error
	// SetQuantity removes the line when qty <= 0.
	SetQuantity(ctx context.Context, userID int, lineID string, qty int) error
	Remove(ctx context.Context, userID int, lineID string) error
	// Clear is idempotent; clearing an absent cart succeeds.
	Clear(ctx context.Context, userID int) error
}

type OrderStore interface {
	Insert(ctx context.Context, o models.Order) error
	// All and ListByUser return orders sorted by createdAt descending.
	All(ctx context.Context) ([]models.Order, error)
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	GetByID(ctx context.Context, id string) (models.Order, error)
	SetStatus(ctx context.Context, id, status string, at time.Time) (models.Order, error)
}
