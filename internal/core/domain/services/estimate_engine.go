package services

import (
	"errors"
	"fmt"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"
)

const (
	// BatchSize is how many items the kitchen prepares at once.
	BatchSize = 4
	// MinutesPerBatch is the preparation time of one batch.
	MinutesPerBatch = 5
	// MinutesPerKm is the travel time per kilometer of great-circle distance.
	MinutesPerKm = 3
)

// EstimateEngine computes delivery estimates from the queued kitchen load and
// the travel distance:
//
//	estimate = ceil((quantity + pending) / BatchSize) × MinutesPerBatch + distance × MinutesPerKm
//
// pending is the total quantity of the orders still awaiting pickup, that is
// Pending or Assigned. InTransit orders left the kitchen and do not count.
type EstimateEngine struct{}

func NewEstimateEngine() EstimateEngine {
	return EstimateEngine{}
}

// EstimateMinutes returns the estimate for a new order of quantity items
// travelling distanceKm while pendingQuantity items are queued before it.
func (EstimateEngine) EstimateMinutes(distanceKm int, quantity int, pendingQuantity int) (int, error) {
	if err := errors.Join(
		validateNotNegative("distance", distanceKm),
		validatePositive("quantity", quantity),
		validateNotNegative("pending quantity", pendingQuantity),
	); err != nil {
		return 0, err
	}

	return preparationMinutes(quantity+pendingQuantity) + distanceKm*MinutesPerKm, nil
}

// Estimate measures the distance from pickup to destination and returns
// EstimateMinutes for it.
func (e EstimateEngine) Estimate(
	pickup kernel.Location,
	destination kernel.Location,
	quantity int,
	pendingQuantity int,
) (int, error) {
	distance, err := destination.Distance(pickup)
	if err != nil {
		return 0, err
	}
	return e.EstimateMinutes(distance, quantity, pendingQuantity)
}

// FreedMinutes is the preparation time the kitchen gets back when removed
// leaves the queue.
func (EstimateEngine) FreedMinutes(removed *order.Order) int {
	if removed.Validate() != nil {
		return 0
	}
	return max(0, preparationMinutes(removed.Quantity()))
}

// Rebalance describes how the estimates of the orders queued after removed
// shrink once removed is cancelled.
func (e EstimateEngine) Rebalance(removed *order.Order) (RebalancePlan, error) {
	if err := removed.Validate(); err != nil {
		return RebalancePlan{}, err
	}

	return RebalancePlan{
		Since:   removed.CreatedAt(),
		Exclude: removed.ID(),
		Minutes: e.FreedMinutes(removed),
	}, nil
}

// RebalancePlan shortens by Minutes the estimate of every order awaiting
// pickup that was created at or after Since, except Exclude. Estimates never
// drop below order.MinEstimateMinutes; earlier orders are untouched.
//
// Repositories execute the plan as one set-based update so concurrent
// cancellations never lose each other's decrement.
type RebalancePlan struct {
	Since   time.Time
	Exclude kernel.UUID
	Minutes int
}

// Covers reports whether o is affected by the plan.
func (p RebalancePlan) Covers(o *order.Order) bool {
	return o.Validate() == nil &&
		o.Status().AwaitsPickup() &&
		!o.ID().IsEqual(p.Exclude) &&
		!o.CreatedAt().Before(p.Since)
}

// Apply shortens the estimates of the covered orders in memory and returns
// those that changed.
func (p RebalancePlan) Apply(orders []*order.Order) []*order.Order {
	changed := make([]*order.Order, 0, len(orders))
	for _, o := range orders {
		if p.Covers(o) && o.ShortenEstimate(p.Minutes) {
			changed = append(changed, o)
		}
	}
	return changed
}

func preparationMinutes(quantity int) int {
	batches := (quantity + BatchSize - 1) / BatchSize
	return batches * MinutesPerBatch
}

func validatePositive(name string, v int) error {
	if v <= 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is not greater than 0", v))
	}
	return nil
}

func validateNotNegative(name string, v int) error {
	if v < 0 {
		return errs.NewValueIsInvalidErrorWithCause(name, fmt.Errorf("%d is negative", v))
	}
	return nil
}
