package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrDeleteFoodCommandIsNotConstructed = errors.New(
	"DeleteFoodCommand must be created via NewDeleteFoodCommand constructor",
)

type DeleteFoodCommand struct { //nolint:recvcheck //using for validation
	foodID kernel.UUID

	guard guard.ConstructorGuard
}

func NewDeleteFoodCommand(actor kernel.Actor, foodID kernel.UUID) (DeleteFoodCommand, error) {
	if err := errors.Join(actor.RequireStaff("delete food"), foodID.Validate()); err != nil {
		return DeleteFoodCommand{}, err
	}

	return DeleteFoodCommand{
		foodID: foodID,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c DeleteFoodCommand) Validate() error {
	return c.guard.Validate(ErrDeleteFoodCommandIsNotConstructed)
}

func (c DeleteFoodCommand) FoodID() kernel.UUID {
	return c.foodID
}
