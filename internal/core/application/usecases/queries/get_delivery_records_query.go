package queries

import (
	"errors"
	"fmt"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
	"fastfood/internal/pkg/guard"
)

var ErrGetDeliveryRecordsQueryIsNotConstructed = errors.New(
	"GetDeliveryRecordsQuery must be created via NewGetDeliveryRecordsQuery constructor",
)

const (
	MinReportYear = 2000
	MaxReportYear = 9999
)

// Period is one calendar month in UTC.
type Period struct {
	Year  int
	Month time.Month
}

func NewPeriod(year int, month int) (Period, error) {
	if year < MinReportYear || year > MaxReportYear {
		return Period{}, errs.NewValueIsOutOfRangeError("year", year, MinReportYear, MaxReportYear)
	}
	if month < 1 || month > 12 {
		return Period{}, errs.NewValueIsOutOfRangeError("month", month, 1, 12)
	}
	return Period{Year: year, Month: time.Month(month)}, nil
}

// PeriodOf returns the month t falls in.
func PeriodOf(t time.Time) Period {
	t = t.UTC()
	return Period{Year: t.Year(), Month: t.Month()}
}

func (p Period) Start() time.Time {
	return time.Date(p.Year, p.Month, 1, 0, 0, 0, 0, time.UTC)
}

// End is the first instant after the period.
func (p Period) End() time.Time {
	return p.Start().AddDate(0, 1, 0)
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, int(p.Month))
}

// GetDeliveryRecordsQuery lists the sales of one month. Staff members see only
// their own records; administrators see everybody's or filter by staff member.
type GetDeliveryRecordsQuery struct {
	period  Period
	staffID *kernel.UUID
	guard   guard.ConstructorGuard
}

func NewGetDeliveryRecordsQuery(actor kernel.Actor, period Period, staffID *kernel.UUID) (GetDeliveryRecordsQuery, error) {
	if err := actor.RequireStaff("list delivery records"); err != nil {
		return GetDeliveryRecordsQuery{}, err
	}
	if _, err := NewPeriod(period.Year, int(period.Month)); err != nil {
		return GetDeliveryRecordsQuery{}, err
	}

	if !actor.IsAdmin() {
		if staffID != nil && !staffID.IsEqual(actor.ID()) {
			return GetDeliveryRecordsQuery{}, errs.NewForbiddenErrorWithCause(
				"list delivery records",
				fmt.Errorf("staff %s may only list own records", actor.ID()),
			)
		}
		own := actor.ID()
		staffID = &own
	}

	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return GetDeliveryRecordsQuery{}, err
		}
	}

	return GetDeliveryRecordsQuery{
		period:  period,
		staffID: staffID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (q GetDeliveryRecordsQuery) Period() Period {
	return q.period
}

// StaffID is nil when records of every staff member are listed.
func (q GetDeliveryRecordsQuery) StaffID() *kernel.UUID {
	return q.staffID
}

func (q GetDeliveryRecordsQuery) Validate() error {
	return q.guard.Validate(ErrGetDeliveryRecordsQueryIsNotConstructed)
}

type DeliveryRecordView struct {
	ID          kernel.UUID
	StaffID     kernel.UUID
	FoodID      kernel.UUID
	Quantity    int
	TotalIncome int64
	DeliveredAt time.Time
}

// DeliveryReport is the answer to GetDeliveryRecordsQuery.
type DeliveryReport struct {
	Period      Period
	Records     []DeliveryRecordView
	TotalIncome int64
}
