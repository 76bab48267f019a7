package commands

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/food"
)

type CreateFoodCommandHandler struct {
	uowFactory FoodUoWFactory
	now        func() time.Time
}

func NewCreateFoodCommandHandler(uowFactory FoodUoWFactory) CreateFoodCommandHandler {
	return CreateFoodCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

func (h CreateFoodCommandHandler) Handle(ctx context.Context, cmd CreateFoodCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	d := cmd.Details()
	f, err := food.NewFood(cmd.FoodID(), d.Name, d.Description, d.Price, d.Currency, d.Pickup, cmd.Media(), h.now())
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err = uow.FoodRepository().Add(ctx, f); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
