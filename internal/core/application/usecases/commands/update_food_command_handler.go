package commands

import (
	"context"
)

type UpdateFoodCommandHandler struct {
	uowFactory FoodUoWFactory
}

func NewUpdateFoodCommandHandler(uowFactory FoodUoWFactory) UpdateFoodCommandHandler {
	return UpdateFoodCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle edits the food under its version guard. A concurrent rating bumps the
// version too, so the caller may see a Conflict error and retry.
func (h UpdateFoodCommandHandler) Handle(ctx context.Context, cmd UpdateFoodCommand) error {
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

	foodRepo := uow.FoodRepository()

	f, err := foodRepo.Get(ctx, cmd.FoodID())
	if err != nil {
		return err
	}

	d := cmd.Details()
	if err = f.Edit(d.Name, d.Description, d.Price, d.Currency, d.Pickup); err != nil {
		return err
	}

	if err = foodRepo.Update(ctx, f); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
