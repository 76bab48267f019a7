package services_test

import (
	"testing"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/services"
	"fastfood/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var baseTime = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func newOrderAt(t *testing.T, quantity, estimate int, createdAt time.Time) *order.Order {
	t.Helper()
	destination, _ := kernel.NewLocation(40.84411221242592, 72.33245510501874)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), destination, quantity, estimate, createdAt)
	require.NoError(t, err)
	return o
}

func TestEstimateEngine_EstimateMinutes(t *testing.T) {
	engine := services.NewEstimateEngine()

	testCases := []struct {
		name     string
		distance int
		quantity int
		pending  int
		expected int
	}{
		{"one full batch nearby", 0, 4, 0, 5},
		{"single item nearby", 0, 1, 0, 5},
		{"second batch", 0, 5, 0, 10},
		{"queued load counts", 0, 1, 4, 10},
		{"travel time", 10, 4, 0, 35},
		{"load and travel", 264, 3, 10, 812},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := engine.EstimateMinutes(tc.distance, tc.quantity, tc.pending)

			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestEstimateEngine_EstimateMinutes_Monotonic(t *testing.T) {
	engine := services.NewEstimateEngine()

	for distance := 0; distance < 20; distance++ {
		for quantity := 1; quantity < 12; quantity++ {
			for pending := 0; pending < 12; pending++ {
				base, err := engine.EstimateMinutes(distance, quantity, pending)
				require.NoError(t, err)

				moreDistance, _ := engine.EstimateMinutes(distance+1, quantity, pending)
				moreQuantity, _ := engine.EstimateMinutes(distance, quantity+1, pending)
				morePending, _ := engine.EstimateMinutes(distance, quantity, pending+1)

				assert.GreaterOrEqual(t, moreDistance, base)
				assert.GreaterOrEqual(t, moreQuantity, base)
				assert.GreaterOrEqual(t, morePending, base)
				assert.GreaterOrEqual(t, base, order.MinEstimateMinutes)
			}
		}
	}
}

func TestEstimateEngine_EstimateMinutes_InvalidInput(t *testing.T) {
	engine := services.NewEstimateEngine()

	_, err := engine.EstimateMinutes(-1, 0, -1)

	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	assert.Contains(t, err.Error(), "distance")
	assert.Contains(t, err.Error(), "quantity")
	assert.Contains(t, err.Error(), "pending quantity")
}

func TestEstimateEngine_Estimate(t *testing.T) {
	engine := services.NewEstimateEngine()
	pickup, _ := kernel.NewLocation(41.311081, 69.240562)
	destination, _ := kernel.NewLocation(40.84411221242592, 72.33245510501874)

	got, err := engine.Estimate(pickup, destination, 4, 0)

	require.NoError(t, err)
	assert.Equal(t, 5+264*services.MinutesPerKm, got)

	_, err = engine.Estimate(kernel.Location{}, destination, 4, 0)
	require.ErrorIs(t, err, kernel.ErrLocationIsNotConstructed)
}

func TestEstimateEngine_FreedMinutes(t *testing.T) {
	engine := services.NewEstimateEngine()

	assert.Equal(t, 5, engine.FreedMinutes(newOrderAt(t, 1, 10, baseTime)))
	assert.Equal(t, 5, engine.FreedMinutes(newOrderAt(t, 4, 10, baseTime)))
	assert.Equal(t, 10, engine.FreedMinutes(newOrderAt(t, 5, 10, baseTime)))
	assert.Equal(t, 0, engine.FreedMinutes(nil))
}

func TestEstimateEngine_Rebalance(t *testing.T) {
	engine := services.NewEstimateEngine()

	t.Run("later siblings shrink, earlier are untouched", func(t *testing.T) {
		earlier := newOrderAt(t, 2, 20, baseTime.Add(-time.Minute))
		removed := newOrderAt(t, 4, 10, baseTime)
		sameTime := newOrderAt(t, 1, 12, baseTime)
		later := newOrderAt(t, 1, 3, baseTime.Add(time.Minute))

		plan, err := engine.Rebalance(removed)
		require.NoError(t, err)

		changed := plan.Apply([]*order.Order{earlier, removed, sameTime, later})

		assert.Equal(t, 5, plan.Minutes)
		assert.Len(t, changed, 2)
		assert.Equal(t, 20, earlier.EstimateMinutes())
		assert.Equal(t, 10, removed.EstimateMinutes())
		assert.Equal(t, 7, sameTime.EstimateMinutes())
		assert.Equal(t, 1, later.EstimateMinutes())
	})

	t.Run("orders in transit are not rebalanced", func(t *testing.T) {
		removed := newOrderAt(t, 4, 10, baseTime)
		staffID := kernel.NewUUID()
		inTransit := newOrderAt(t, 1, 30, baseTime.Add(time.Minute))
		require.NoError(t, inTransit.Accept(staffID))
		require.NoError(t, inTransit.Depart(staffID))
		assigned := newOrderAt(t, 1, 30, baseTime.Add(time.Minute))
		require.NoError(t, assigned.Accept(staffID))

		plan, err := engine.Rebalance(removed)
		require.NoError(t, err)

		assert.False(t, plan.Covers(inTransit))
		assert.True(t, plan.Covers(assigned))

		plan.Apply([]*order.Order{inTransit, assigned})

		assert.Equal(t, 30, inTransit.EstimateMinutes())
		assert.Equal(t, 25, assigned.EstimateMinutes())
	})

	t.Run("invalid order", func(t *testing.T) {
		_, err := engine.Rebalance(nil)

		require.ErrorIs(t, err, order.ErrOrderIsNotConstructed)
	})
}
