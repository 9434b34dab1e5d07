package ports

import (
	"context"

	"commerce/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Implementations own the uniqueness of the order number column and the
// assignment of numeric identifiers on first insert.
type OrderRepository interface {
	// Add persists a new order aggregate and attaches the store-assigned
	// identifier to it.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, replacing its
	// owned line items as a set. It returns the status that was stored before
	// this write, so callers can detect status changes.
	Update(ctx context.Context, aggregate *order.Order) (order.Status, error)

	// Get retrieves an order aggregate with its line items by identifier.
	Get(ctx context.Context, id int64) (*order.Order, error)

	// FindUnnumbered retrieves up to limit orders still missing a display
	// number. Used by the repair sweep.
	FindUnnumbered(ctx context.Context, limit int) ([]*order.Order, error)

	// DeleteLineItems removes every line item owned by the given order.
	// Called before the order row itself is deleted.
	DeleteLineItems(ctx context.Context, orderID int64) error

	// Delete removes the order row. Line items must already be gone.
	Delete(ctx context.Context, orderID int64) error
}
