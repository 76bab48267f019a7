package commands_test

import (
	"context"

	"fastfood/internal/core/application/usecases/commands"
	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/services"
	"fastfood/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Delete(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *MockOrderRepository) SumAwaitingPickupQuantity(ctx context.Context) (int, error) {
	args := m.Called(ctx)
	return args.Int(0), args.Error(1)
}

func (m *MockOrderRepository) ShortenEstimates(ctx context.Context, plan services.RebalancePlan) (int64, error) {
	args := m.Called(ctx, plan)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockOrderRepository) CountByFood(ctx context.Context, foodID kernel.UUID) (int64, error) {
	args := m.Called(ctx, foodID)
	return args.Get(0).(int64), args.Error(1)
}

type MockFoodRepository struct{ mock.Mock }

func (m *MockFoodRepository) Add(ctx context.Context, f *food.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFoodRepository) Update(ctx context.Context, f *food.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFoodRepository) Delete(ctx context.Context, f *food.Food) error {
	args := m.Called(ctx, f)
	return args.Error(0)
}

func (m *MockFoodRepository) Get(ctx context.Context, id kernel.UUID) (*food.Food, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*food.Food), args.Error(1)
}

type MockRatingRepository struct{ mock.Mock }

func (m *MockRatingRepository) Add(ctx context.Context, r *food.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) Update(ctx context.Context, r *food.Rating) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockRatingRepository) FindByFoodAndUser(
	ctx context.Context,
	foodID kernel.UUID,
	userID kernel.UUID,
) (*food.Rating, error) {
	args := m.Called(ctx, foodID, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*food.Rating), args.Error(1)
}

func (m *MockRatingRepository) DeleteByFood(ctx context.Context, foodID kernel.UUID) error {
	args := m.Called(ctx, foodID)
	return args.Error(0)
}

type MockDeliveryRecordRepository struct{ mock.Mock }

func (m *MockDeliveryRecordRepository) Add(ctx context.Context, r *delivery.Record) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockDeliveryRecordRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Record, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*delivery.Record), args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) FoodRepository() ports.FoodRepository {
	args := m.Called()
	return args.Get(0).(ports.FoodRepository)
}

func (m *MockUoW) RatingRepository() ports.RatingRepository {
	args := m.Called()
	return args.Get(0).(ports.RatingRepository)
}

func (m *MockUoW) DeliveryRecordRepository() ports.DeliveryRecordRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRecordRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockFoodUoWFactory struct{ mock.Mock }

func (m *MockFoodUoWFactory) Create() commands.FoodUoW {
	args := m.Called()
	return args.Get(0).(commands.FoodUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockMediaStore struct{ mock.Mock }

func (m *MockMediaStore) Release(ctx context.Context, refs []string) error {
	args := m.Called(ctx, refs)
	return args.Error(0)
}
