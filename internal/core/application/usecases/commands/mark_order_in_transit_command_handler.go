package commands

import (
	"context"
)

// MarkOrderInTransitCommandHandler moves an Assigned order to InTransit. Only
// the staff member who accepted the order may do so.
type MarkOrderInTransitCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewMarkOrderInTransitCommandHandler(uowFactory OrderUoWFactory) MarkOrderInTransitCommandHandler {
	return MarkOrderInTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h MarkOrderInTransitCommandHandler) Handle(ctx context.Context, cmd MarkOrderInTransitCommand) error {
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

	if err = o.Depart(cmd.Actor().ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
