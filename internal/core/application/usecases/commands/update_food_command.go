package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrUpdateFoodCommandIsNotConstructed = errors.New(
	"UpdateFoodCommand must be created via NewUpdateFoodCommand constructor",
)

// UpdateFoodCommand replaces the details of a food. Its rating and media are kept.
type UpdateFoodCommand struct { //nolint:recvcheck //using for validation
	foodID  kernel.UUID
	details FoodDetails

	guard guard.ConstructorGuard
}

func NewUpdateFoodCommand(actor kernel.Actor, foodID kernel.UUID, details FoodDetails) (UpdateFoodCommand, error) {
	if err := errors.Join(
		actor.RequireStaff("update food"),
		foodID.Validate(),
		details.validate(),
	); err != nil {
		return UpdateFoodCommand{}, err
	}

	return UpdateFoodCommand{
		foodID:  foodID,
		details: details,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c UpdateFoodCommand) Validate() error {
	return c.guard.Validate(ErrUpdateFoodCommandIsNotConstructed)
}

func (c UpdateFoodCommand) FoodID() kernel.UUID {
	return c.foodID
}

func (c UpdateFoodCommand) Details() FoodDetails {
	return c.details
}
