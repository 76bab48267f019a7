package commands_test

import (
	"testing"
	"time"

	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func newActor(t *testing.T, role kernel.Role) kernel.Actor {
	t.Helper()
	actor, err := kernel.NewActor(kernel.NewUUID(), role)
	require.NoError(t, err)
	return actor
}

func newTestFood(t *testing.T, price int64, currency food.Currency) *food.Food {
	t.Helper()
	pickup, err := kernel.NewLocation(40.84116287658114, 72.32745981241342)
	require.NoError(t, err)
	f, err := food.NewFood(kernel.NewUUID(), "Plov", "", price, currency, pickup, []string{"food_images/plov.jpg"}, time.Now())
	require.NoError(t, err)
	return f
}

func newTestOrder(t *testing.T, userID kernel.UUID, foodID kernel.UUID, quantity int) *order.Order {
	t.Helper()
	destination, err := kernel.NewLocation(40.84411221242592, 72.33245510501874)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), userID, foodID, destination, quantity, 15, time.Now())
	require.NoError(t, err)
	o.ClearDomainEvents()
	return o
}
