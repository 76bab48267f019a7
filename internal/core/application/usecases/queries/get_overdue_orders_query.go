package queries

import (
	"errors"
	"time"

	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrGetOverdueOrdersQueryIsNotConstructed = errors.New(
	"GetOverdueOrdersQuery must be created via NewGetOverdueOrdersQuery constructor",
)

// GetOverdueOrdersQuery finds pending orders whose estimate ran out before now.
type GetOverdueOrdersQuery struct {
	now   time.Time
	guard guard.ConstructorGuard
}

func NewGetOverdueOrdersQuery(now time.Time) (GetOverdueOrdersQuery, error) {
	if now.IsZero() {
		return GetOverdueOrdersQuery{}, errs.NewValueIsRequiredError("now")
	}

	return GetOverdueOrdersQuery{
		now:   now.UTC(),
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (q GetOverdueOrdersQuery) Now() time.Time {
	return q.now
}

func (q GetOverdueOrdersQuery) Validate() error {
	return q.guard.Validate(ErrGetOverdueOrdersQueryIsNotConstructed)
}
