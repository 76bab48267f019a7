package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrRateFoodCommandIsNotConstructed = errors.New(
	"RateFoodCommand must be created via NewRateFoodCommand constructor",
)

// RateFoodCommand records the acting user's rate of a food, replacing an
// earlier rate by the same user.
type RateFoodCommand struct { //nolint:recvcheck //using for validation
	actor  kernel.Actor
	foodID kernel.UUID
	value  int

	guard guard.ConstructorGuard
}

func NewRateFoodCommand(actor kernel.Actor, foodID kernel.UUID, value int) (RateFoodCommand, error) {
	var valueErr error
	if value < food.MinRate || value > food.MaxRate {
		valueErr = errs.NewValueIsOutOfRangeError("rate", value, food.MinRate, food.MaxRate)
	}

	if err := errors.Join(actor.Validate(), foodID.Validate(), valueErr); err != nil {
		return RateFoodCommand{}, err
	}

	return RateFoodCommand{
		actor:  actor,
		foodID: foodID,
		value:  value,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (c RateFoodCommand) Validate() error {
	return c.guard.Validate(ErrRateFoodCommandIsNotConstructed)
}

func (c RateFoodCommand) Actor() kernel.Actor {
	return c.actor
}

func (c RateFoodCommand) FoodID() kernel.UUID {
	return c.foodID
}

func (c RateFoodCommand) Value() int {
	return c.value
}
