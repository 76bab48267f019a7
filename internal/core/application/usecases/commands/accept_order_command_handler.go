package commands

import (
	"context"
)

// AcceptOrderCommandHandler assigns a Pending order to the acting staff member.
//
// Two staff members may load the same Pending order at once. Both pass the
// in-memory guard, but the repository update is conditioned on the version
// they read, so exactly one commits and the other gets a Conflict error.
//
// Example:
//
//	cmd, _ := NewAcceptOrderCommand(staff, orderID)
//	err := handler.Handle(ctx, cmd)
//	switch errs.KindOf(err) {
//	case errs.KindConflict:
//	    // someone else accepted it first
//	case errs.KindNotFound:
//	    // delivered or cancelled meanwhile
//	}
type AcceptOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewAcceptOrderCommandHandler(uowFactory OrderUoWFactory) AcceptOrderCommandHandler {
	return AcceptOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h AcceptOrderCommandHandler) Handle(ctx context.Context, cmd AcceptOrderCommand) error {
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

	if err = o.Accept(cmd.Actor().ID()); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
