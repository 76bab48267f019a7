package queries

import (
	"errors"
	"fmt"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrGetOrdersQueryIsNotConstructed = errors.New("GetOrdersQuery must be created via NewGetOrdersQuery constructor")

// OrderScope selects which part of the pending set a caller sees.
type OrderScope int

const (
	// ScopeMine lists the orders the actor placed.
	ScopeMine OrderScope = iota + 1

	// ScopeUnassigned lists Pending orders nobody accepted yet. Staff only.
	ScopeUnassigned

	// ScopeAssignedToMe lists the orders the acting staff member works on.
	ScopeAssignedToMe
)

func (s OrderScope) String() string {
	switch s {
	case ScopeMine:
		return "mine"
	case ScopeUnassigned:
		return "unassigned"
	case ScopeAssignedToMe:
		return "assigned to me"
	default:
		return "unknown"
	}
}

type GetOrdersQuery struct {
	actor kernel.Actor
	scope OrderScope
	guard guard.ConstructorGuard
}

func NewGetOrdersQuery(actor kernel.Actor, scope OrderScope) (GetOrdersQuery, error) {
	if err := actor.Validate(); err != nil {
		return GetOrdersQuery{}, err
	}

	switch scope {
	case ScopeMine:
	case ScopeUnassigned, ScopeAssignedToMe:
		if err := actor.RequireStaff("list " + scope.String() + " orders"); err != nil {
			return GetOrdersQuery{}, err
		}
	default:
		return GetOrdersQuery{}, errs.NewValueIsInvalidErrorWithCause("scope", fmt.Errorf("%d is not a known scope", scope))
	}

	return GetOrdersQuery{
		actor: actor,
		scope: scope,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOrdersQuery) Actor() kernel.Actor {
	return q.actor
}

func (q GetOrdersQuery) Scope() OrderScope {
	return q.scope
}

func (q GetOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOrdersQueryIsNotConstructed)
}

// OrderView is an order of the pending set as shown to callers.
type OrderView struct {
	ID              kernel.UUID
	UserID          kernel.UUID
	FoodID          kernel.UUID
	StaffID         *kernel.UUID
	Destination     kernel.Location
	Quantity        int
	EstimateMinutes int
	Status          order.Status
	CreatedAt       time.Time
}

// Deadline is when the order is expected at its destination.
func (v OrderView) Deadline() time.Time {
	return v.CreatedAt.Add(time.Duration(v.EstimateMinutes) * time.Minute)
}
