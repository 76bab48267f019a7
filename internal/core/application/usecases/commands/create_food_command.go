package commands

import (
	"errors"
	"fmt"
	"strings"

	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrCreateFoodCommandIsNotConstructed = errors.New(
	"CreateFoodCommand must be created via NewCreateFoodCommand constructor",
)

// FoodDetails are the editable attributes of a food.
type FoodDetails struct {
	Name        string
	Description string
	Price       int64
	Currency    food.Currency
	Pickup      kernel.Location
}

func (d FoodDetails) validate() error {
	var nameErr, priceErr error
	if strings.TrimSpace(d.Name) == "" {
		nameErr = errs.NewValueIsRequiredError("name")
	}
	if d.Price < 0 {
		priceErr = errs.NewValueIsInvalidErrorWithCause("price is invalid", fmt.Errorf("%d is negative", d.Price))
	}
	return errors.Join(nameErr, priceErr, d.Currency.Validate(), d.Pickup.Validate())
}

// CreateFoodCommand adds a food to the menu. Media references point to files
// already placed in the media store.
type CreateFoodCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	foodID  kernel.UUID
	details FoodDetails
	media   []string

	guard guard.ConstructorGuard
}

func NewCreateFoodCommand(
	actor kernel.Actor,
	foodID kernel.UUID,
	details FoodDetails,
	media []string,
) (CreateFoodCommand, error) {
	cmd := CreateFoodCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		actor.RequireStaff("create food"),
		foodID.Validate(),
		details.validate(),
	); err != nil {
		return CreateFoodCommand{}, err
	}

	cmd.actor = actor
	cmd.foodID = foodID
	cmd.details = details
	cmd.media = append([]string(nil), media...)
	return cmd, nil
}

func (c CreateFoodCommand) Validate() error {
	return c.guard.Validate(ErrCreateFoodCommandIsNotConstructed)
}

func (c CreateFoodCommand) FoodID() kernel.UUID {
	return c.foodID
}

func (c CreateFoodCommand) Details() FoodDetails {
	return c.details
}

func (c CreateFoodCommand) Media() []string {
	return append([]string(nil), c.media...)
}
