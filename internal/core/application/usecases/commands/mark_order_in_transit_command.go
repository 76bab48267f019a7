package commands

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrMarkOrderInTransitCommandIsNotConstructed = errors.New(
	"MarkOrderInTransitCommand must be created via NewMarkOrderInTransitCommand constructor",
)

// MarkOrderInTransitCommand reports that the assigned staff member left with the order.
type MarkOrderInTransitCommand struct { //nolint:recvcheck //using for validation
	actor   kernel.Actor
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

func NewMarkOrderInTransitCommand(actor kernel.Actor, orderID kernel.UUID) (MarkOrderInTransitCommand, error) {
	cmd := MarkOrderInTransitCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setActor(actor),
		cmd.setOrderID(orderID),
	); err != nil {
		return MarkOrderInTransitCommand{}, err
	}

	return cmd, nil
}

func (c MarkOrderInTransitCommand) Validate() error {
	return c.guard.Validate(ErrMarkOrderInTransitCommandIsNotConstructed)
}

func (c MarkOrderInTransitCommand) Actor() kernel.Actor {
	return c.actor
}

func (c MarkOrderInTransitCommand) OrderID() kernel.UUID {
	return c.orderID
}

func (c *MarkOrderInTransitCommand) setActor(actor kernel.Actor) error {
	if err := actor.RequireStaff("mark order in transit"); err != nil {
		return err
	}
	c.actor = actor
	return nil
}

func (c *MarkOrderInTransitCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}
