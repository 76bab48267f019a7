package commands

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/services"
)

// DeliverOrderCommandHandler completes an InTransit order: it appends the
// delivery record and removes the order from the pending set in one
// transaction. If the guarded delete matches no row the record is rolled back
// together with it.
type DeliverOrderCommandHandler struct {
	uowFactory UoWFactory
	recorder   *services.RevenueRecorder
	now        func() time.Time
}

func NewDeliverOrderCommandHandler(uowFactory UoWFactory, recorder *services.RevenueRecorder) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{
		uowFactory: uowFactory,
		recorder:   recorder,
		now:        time.Now,
	}
}

func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) (*delivery.Record, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	foodRepo := uow.FoodRepository()
	recordRepo := uow.DeliveryRecordRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return nil, err
	}

	if err = o.Deliver(cmd.Actor().ID()); err != nil {
		return nil, err
	}

	f, err := foodRepo.Get(ctx, o.FoodID())
	if err != nil {
		return nil, err
	}

	record, err := h.recorder.Record(kernel.NewUUID(), o, f, h.now())
	if err != nil {
		return nil, err
	}

	if err = recordRepo.Add(ctx, record); err != nil {
		return nil, err
	}

	if err = orderRepo.Delete(ctx, o); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return record, nil
}
