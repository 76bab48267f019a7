// Package delivery provides the delivery Record: the append-only revenue
// ledger entry created when a staff member hands an order over.
package delivery

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

var ErrRecordIsNotConstructed = errors.New("Record must be created via NewRecord constructor")

// Record keeps what was sold, by whom and for how much in local currency.
// The food reference is kept for reporting only; the food may be deleted later.
type Record struct {
	id          kernel.UUID
	staffID     kernel.UUID
	foodID      kernel.UUID
	quantity    int
	totalIncome int64
	deliveredAt time.Time

	isConstructed bool
}

func NewRecord(
	id kernel.UUID,
	staffID kernel.UUID,
	foodID kernel.UUID,
	quantity int,
	totalIncome int64,
	deliveredAt time.Time,
) (*Record, error) {
	r := &Record{isConstructed: true}

	if err := errors.Join(
		r.setID(id),
		r.setStaffID(staffID),
		r.setFoodID(foodID),
		r.setQuantity(quantity),
		r.setTotalIncome(totalIncome),
		r.setDeliveredAt(deliveredAt),
	); err != nil {
		return nil, err
	}
	return r, nil
}

// RestoreRecord rebuilds a record loaded from persistence.
func RestoreRecord(
	id kernel.UUID,
	staffID kernel.UUID,
	foodID kernel.UUID,
	quantity int,
	totalIncome int64,
	deliveredAt time.Time,
) (*Record, error) {
	return NewRecord(id, staffID, foodID, quantity, totalIncome, deliveredAt)
}

func (r *Record) Validate() error {
	if r == nil || !r.isConstructed {
		return ErrRecordIsNotConstructed
	}
	return nil
}

func (r *Record) ID() kernel.UUID {
	return r.id
}

// StaffID is the staff member responsible for the delivery.
func (r *Record) StaffID() kernel.UUID {
	return r.staffID
}

func (r *Record) FoodID() kernel.UUID {
	return r.foodID
}

func (r *Record) Quantity() int {
	return r.quantity
}

// TotalIncome is the income in local currency.
func (r *Record) TotalIncome() int64 {
	return r.totalIncome
}

func (r *Record) DeliveredAt() time.Time {
	return r.deliveredAt
}

func (r *Record) String() string {
	return fmt.Sprintf("%s: %s", r.foodID, FormatIncome(r.totalIncome))
}

// FormatIncome renders an amount of local currency grouped by thousands,
// for example 4063800 as "4 063 800 so'm".
func FormatIncome(amount int64) string {
	digits := strconv.FormatInt(amount, 10)
	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign, digits = "-", digits[1:]
	}

	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte(' ')
		}
		b.WriteRune(d)
	}
	return sign + b.String() + " so'm"
}

func (r *Record) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	r.id = id
	return nil
}

func (r *Record) setStaffID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("staff", err)
	}
	r.staffID = id
	return nil
}

func (r *Record) setFoodID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("food", err)
	}
	r.foodID = id
	return nil
}

func (r *Record) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	r.quantity = quantity
	return nil
}

func (r *Record) setTotalIncome(income int64) error {
	if income < 0 {
		return errs.NewValueIsInvalidErrorWithCause("total income is invalid", fmt.Errorf("%d is negative", income))
	}
	r.totalIncome = income
	return nil
}

func (r *Record) setDeliveredAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("delivered at")
	}
	r.deliveredAt = at.UTC().Truncate(time.Microsecond)
	return nil
}
