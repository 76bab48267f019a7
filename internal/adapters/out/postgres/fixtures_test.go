package postgres_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

// recordingPublisher keeps every published event in memory.
type recordingPublisher struct {
	mu     sync.Mutex
	events []kernel.DomainEvent
}

func (p *recordingPublisher) Publish(_ context.Context, events ...kernel.DomainEvent) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.events = append(p.events, events...)
}

func (p *recordingPublisher) names() []string {
	p.mu.Lock()
	defer p.mu.Unlock()

	names := make([]string, 0, len(p.events))
	for _, e := range p.events {
		names = append(names, e.EventName())
	}
	return names
}

var testTime = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func newTestFood(t *testing.T) *food.Food {
	t.Helper()

	pickup, err := kernel.NewLocation(40.84116287658114, 72.32745981241342)
	require.NoError(t, err)
	f, err := food.NewFood(kernel.NewUUID(), "Plov", "", 30000, food.Som, pickup,
		[]string{"food_images/plov.jpg"}, testTime)
	require.NoError(t, err)
	return f
}

func newTestOrder(t *testing.T, foodID kernel.UUID) *order.Order {
	t.Helper()
	return newTestOrderAt(t, foodID, 5, testTime)
}

func newTestOrderAt(t *testing.T, foodID kernel.UUID, estimate int, createdAt time.Time) *order.Order {
	t.Helper()

	destination, err := kernel.NewLocation(40.84411221242592, 72.33245510501874)
	require.NoError(t, err)
	o, err := order.NewOrder(kernel.NewUUID(), kernel.NewUUID(), foodID, destination, 2, estimate, createdAt)
	require.NoError(t, err)
	return o
}
