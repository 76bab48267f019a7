package commands

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/services"
)

// CreateOrderResult is what the caller learns about a freshly placed order.
type CreateOrderResult struct {
	OrderID         kernel.UUID
	EstimateMinutes int
}

// CreateOrderCommandHandler places a Pending order. The estimate accounts for
// the kitchen load queued at the moment of the insert and the distance from
// the food's pickup point to the destination.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	engine     services.EstimateEngine
	now        func() time.Time
}

func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory, engine services.EstimateEngine) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
		now:        time.Now,
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (CreateOrderResult, error) {
	if err := cmd.Validate(); err != nil {
		return CreateOrderResult{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	foodRepo := uow.FoodRepository()
	orderRepo := uow.OrderRepository()

	f, err := foodRepo.Get(ctx, cmd.FoodID())
	if err != nil {
		return CreateOrderResult{}, err
	}

	pending, err := orderRepo.SumAwaitingPickupQuantity(ctx)
	if err != nil {
		return CreateOrderResult{}, err
	}

	estimate, err := h.engine.Estimate(f.Pickup(), cmd.Destination(), cmd.Quantity(), pending)
	if err != nil {
		return CreateOrderResult{}, err
	}

	o, err := order.NewOrder(
		cmd.OrderID(),
		cmd.Actor().ID(),
		f.ID(),
		cmd.Destination(),
		cmd.Quantity(),
		estimate,
		h.now(),
	)
	if err != nil {
		return CreateOrderResult{}, err
	}

	if err = orderRepo.Add(ctx, o); err != nil {
		return CreateOrderResult{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return CreateOrderResult{}, err
	}

	return CreateOrderResult{OrderID: o.ID(), EstimateMinutes: o.EstimateMinutes()}, nil
}
