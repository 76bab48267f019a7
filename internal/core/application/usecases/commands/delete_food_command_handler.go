package commands

import (
	"context"
	"fmt"

	"fastfood/internal/core/ports"
	"fastfood/internal/pkg/errs"
)

// DeleteFoodCommandHandler removes a food together with its ratings. A food
// that still has pending orders cannot be deleted. Delivery records keep
// referring to the food after it is gone.
//
// The media files are released only after the transaction commits, so a
// rolled back deletion never loses them. A failed release leaves orphaned
// files and is reported as a storage error.
type DeleteFoodCommandHandler struct {
	uowFactory FoodUoWFactory
	media      ports.MediaStore
}

func NewDeleteFoodCommandHandler(uowFactory FoodUoWFactory, media ports.MediaStore) DeleteFoodCommandHandler {
	return DeleteFoodCommandHandler{
		uowFactory: uowFactory,
		media:      media,
	}
}

func (h DeleteFoodCommandHandler) Handle(ctx context.Context, cmd DeleteFoodCommand) error {
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

	pending, err := uow.OrderRepository().CountByFood(ctx, f.ID())
	if err != nil {
		return err
	}
	if pending > 0 {
		return errs.NewConflictErrorWithCause("food", fmt.Errorf("food %s has %d pending orders", f.ID(), pending))
	}

	if err = uow.RatingRepository().DeleteByFood(ctx, f.ID()); err != nil {
		return err
	}

	if err = foodRepo.Delete(ctx, f); err != nil {
		return err
	}

	if err = uow.Commit(ctx); err != nil {
		return err
	}

	if refs := f.Media(); len(refs) > 0 {
		if err = h.media.Release(ctx, refs); err != nil {
			return errs.NewStorageError("release food media", err)
		}
	}

	return nil
}
