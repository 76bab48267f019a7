package commands

import (
	"context"
	"errors"

	"fastfood/internal/core/domain/services"
	"fastfood/internal/pkg/errs"
)

// CancelOrderCommandHandler removes a Pending order at its owner's request and
// gives the freed preparation time back to every order queued after it.
type CancelOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	engine     services.EstimateEngine
}

func NewCancelOrderCommandHandler(uowFactory OrderUoWFactory, engine services.EstimateEngine) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		engine:     engine,
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if err = o.Cancel(cmd.Actor().ID()); err != nil {
		return err
	}

	plan, err := h.engine.Rebalance(o)
	if err != nil {
		return err
	}

	// A version mismatch means the order was accepted or cancelled after it
	// was loaded, so it is no longer pending.
	if err = orderRepo.Delete(ctx, o); err != nil {
		if errors.Is(err, errs.ErrConflict) {
			return errs.NewObjectNotFoundErrorWithCause("pending order", o.ID().String(), err)
		}
		return err
	}

	if _, err = orderRepo.ShortenEstimates(ctx, plan); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
