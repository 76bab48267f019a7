package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// RatePrecision is the number of decimal places kept for exchange rates.
const RatePrecision = 4

// ExchangeRates maps a foreign currency to the number of local currency units
// one unit buys. The local currency is never listed; it converts at 1.
type ExchangeRates map[food.Currency]decimal.Decimal

// DefaultExchangeRates returns the rates used when configuration does not
// override them.
func DefaultExchangeRates() ExchangeRates {
	return ExchangeRates{
		food.USD: decimal.RequireFromString("12348.14"),
		food.RUB: decimal.RequireFromString("135.46"),
	}
}

// ParseExchangeRate parses a positive decimal such as "12348.14". Digits past
// RatePrecision are truncated.
func ParseExchangeRate(s string) (decimal.Decimal, error) {
	rate, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause("exchange rate", err)
	}
	if !rate.IsPositive() {
		return decimal.Decimal{}, errs.NewValueIsInvalidErrorWithCause("exchange rate", fmt.Errorf("%s is not positive", s))
	}
	return rate.Truncate(RatePrecision), nil
}

// RevenueRecorder converts a delivered order into a delivery.Record priced in
// local currency.
type RevenueRecorder struct {
	rates ExchangeRates
}

// NewRevenueRecorder copies rates, validating that every foreign currency has
// a positive rate.
func NewRevenueRecorder(rates ExchangeRates) (*RevenueRecorder, error) {
	copied := make(ExchangeRates, len(rates))
	for _, c := range []food.Currency{food.USD, food.RUB} {
		rate, ok := rates[c]
		if !ok {
			return nil, errs.NewValueIsRequiredError(fmt.Sprintf("exchange rate for %s", c))
		}
		if !rate.IsPositive() {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"exchange rate", fmt.Errorf("%s rate %s is not positive", c, rate))
		}
		copied[c] = rate.Truncate(RatePrecision)
	}

	return &RevenueRecorder{rates: copied}, nil
}

// Rate returns the local currency value of one unit of c.
func (r *RevenueRecorder) Rate(c food.Currency) (decimal.Decimal, error) {
	if err := c.Validate(); err != nil {
		return decimal.Decimal{}, err
	}
	if c.IsLocal() {
		return decimal.NewFromInt(1), nil
	}
	return r.rates[c], nil
}

// Income returns price × quantity × rate in local currency, truncated toward zero.
func (r *RevenueRecorder) Income(f *food.Food, quantity int) (int64, error) {
	if err := f.Validate(); err != nil {
		return 0, err
	}
	rate, err := r.Rate(f.Currency())
	if err != nil {
		return 0, err
	}

	income := decimal.NewFromInt(f.Price()).
		Mul(decimal.NewFromInt(int64(quantity))).
		Mul(rate).
		Truncate(0)
	return income.IntPart(), nil
}

// Record builds the ledger entry for o, delivered by the order's staff member at at.
func (r *RevenueRecorder) Record(id kernel.UUID, o *order.Order, f *food.Food, at time.Time) (*delivery.Record, error) {
	if err := errors.Join(o.Validate(), f.Validate()); err != nil {
		return nil, err
	}
	if !o.FoodID().IsEqual(f.ID()) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"food", fmt.Errorf("order %s references food %s, got %s", o.ID(), o.FoodID(), f.ID()))
	}
	if o.Staff() == nil {
		return nil, errs.NewValueIsRequiredError("staff")
	}

	income, err := r.Income(f, o.Quantity())
	if err != nil {
		return nil, err
	}

	return delivery.NewRecord(id, *o.Staff(), f.ID(), o.Quantity(), income, at)
}
