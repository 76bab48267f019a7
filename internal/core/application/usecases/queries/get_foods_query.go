package queries

import (
	"errors"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrGetFoodsQueryIsNotConstructed = errors.New("GetFoodsQuery must be created via NewGetFoodsQuery constructor")

// GetFoodsQuery lists the menu. It is open to every caller.
type GetFoodsQuery struct {
	guard guard.ConstructorGuard
}

func NewGetFoodsQuery() GetFoodsQuery {
	return GetFoodsQuery{guard: guard.NewConstructorGuard()}
}

func (q GetFoodsQuery) Validate() error {
	return q.guard.Validate(ErrGetFoodsQueryIsNotConstructed)
}

// FoodView is a menu item as shown to callers.
type FoodView struct {
	ID            kernel.UUID
	Name          string
	Description   string
	Price         int64
	Currency      string
	Pickup        kernel.Location
	AverageRating float64
	RatedUsers    int
	Media         []string
	CreatedAt     time.Time
}
