package food

import (
	"errors"
	"fmt"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

const (
	MinRate = 1
	MaxRate = 5
)

var ErrRatingIsNotConstructed = errors.New("Rating must be created via Food.Rate or RestoreRating")

// Score is the running average of all ratings given to a food.
// Average is 0 while Count is 0.
type Score struct {
	Average float64
	Count   int
}

func (s Score) validate() error {
	if s.Count < 0 {
		return errs.NewValueIsOutOfRangeError("rated users", s.Count, 0, "unbounded")
	}
	if s.Average < 0 || s.Average > MaxRate {
		return errs.NewValueIsOutOfRangeError("average rating", s.Average, 0, MaxRate)
	}
	if s.Count == 0 && s.Average != 0 {
		return errs.NewValueIsInvalidErrorWithCause("average rating", fmt.Errorf("%v without rated users", s.Average))
	}
	return nil
}

// Rating is one user's rate of one food.
type Rating struct {
	id     kernel.UUID
	foodID kernel.UUID
	userID kernel.UUID
	value  int
	isNew  bool

	isConstructed bool
}

func RestoreRating(id, foodID, userID kernel.UUID, value int) (*Rating, error) {
	r := &Rating{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setFoodID(foodID),
		r.setUserID(userID),
		validateRate(value),
	); err != nil {
		return nil, err
	}
	r.value = value
	return r, nil
}

func (r *Rating) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRatingIsNotConstructed
	}
	return nil
}

func (r *Rating) ID() kernel.UUID {
	return r.id
}

func (r *Rating) FoodID() kernel.UUID {
	return r.foodID
}

func (r *Rating) UserID() kernel.UUID {
	return r.userID
}

func (r *Rating) Value() int {
	return r.value
}

// IsNew reports whether the rating was created by the last Food.Rate call and
// has to be inserted rather than updated.
func (r *Rating) IsNew() bool {
	return r.isNew
}

func (r *Rating) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Rating) setFoodID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("food", err)
	}
	r.foodID = id
	return nil
}

func (r *Rating) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	r.userID = id
	return nil
}

func validateRate(value int) error {
	if value < MinRate || value > MaxRate {
		return errs.NewValueIsOutOfRangeError("rate", value, MinRate, MaxRate)
	}
	return nil
}
