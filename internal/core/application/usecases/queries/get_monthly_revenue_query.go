package queries

import (
	"errors"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/guard"
)

var ErrGetMonthlyRevenueQueryIsNotConstructed = errors.New(
	"GetMonthlyRevenueQuery must be created via NewGetMonthlyRevenueQuery constructor",
)

// GetMonthlyRevenueQuery totals the sales of a month per staff member. It is
// an operational query with no actor; the revenue report job runs it.
type GetMonthlyRevenueQuery struct {
	period Period
	guard  guard.ConstructorGuard
}

func NewGetMonthlyRevenueQuery(period Period) (GetMonthlyRevenueQuery, error) {
	if _, err := NewPeriod(period.Year, int(period.Month)); err != nil {
		return GetMonthlyRevenueQuery{}, err
	}

	return GetMonthlyRevenueQuery{
		period: period,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

func (q GetMonthlyRevenueQuery) Period() Period {
	return q.period
}

func (q GetMonthlyRevenueQuery) Validate() error {
	return q.guard.Validate(ErrGetMonthlyRevenueQueryIsNotConstructed)
}

type StaffRevenue struct {
	StaffID     kernel.UUID
	Deliveries  int
	Quantity    int
	TotalIncome int64
}

type MonthlyRevenue struct {
	Period      Period
	ByStaff     []StaffRevenue
	Deliveries  int
	TotalIncome int64
}
