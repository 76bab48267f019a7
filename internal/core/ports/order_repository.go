// Package ports defines the contracts between the fastfood core and its
// infrastructure: repositories, the unit of work, the media store and the
// domain event publisher.
package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/services"
)

// OrderRepository persists the pending set: orders that are neither delivered
// nor cancelled.
//
// Writes are guarded by the version the order was loaded with. When another
// transaction changed or removed the row first, Update and Delete return a
// Conflict error and change nothing.
type OrderRepository interface {
	// Add inserts a new Pending order.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update stores the status and staff assignment of aggregate and bumps its
	// version. The estimate is not written; see ShortenEstimates.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes aggregate from the pending set.
	Delete(ctx context.Context, aggregate *order.Order) error

	// Get returns the order or a NotFound error.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// SumAwaitingPickupQuantity totals the quantity of Pending and Assigned orders.
	SumAwaitingPickupQuantity(ctx context.Context) (int, error)

	// ShortenEstimates applies plan in a single statement and returns the
	// number of orders whose estimate changed.
	ShortenEstimates(ctx context.Context, plan services.RebalancePlan) (int64, error)

	// CountByFood counts pending orders of a food.
	CountByFood(ctx context.Context, foodID kernel.UUID) (int64, error)
}
