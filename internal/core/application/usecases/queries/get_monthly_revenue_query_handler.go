package queries

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetMonthlyRevenueQueryHandler struct {
	db *gorm.DB
}

func NewGetMonthlyRevenueQueryHandler(db *gorm.DB) GetMonthlyRevenueQueryHandler {
	return GetMonthlyRevenueQueryHandler{db: db}
}

type staffRevenueRow struct {
	StaffID     uuid.UUID
	Deliveries  int
	Quantity    int
	TotalIncome int64
}

// Handle groups the records of the period by staff member, highest income first.
func (h GetMonthlyRevenueQueryHandler) Handle(ctx context.Context, query GetMonthlyRevenueQuery) (MonthlyRevenue, error) {
	if err := query.Validate(); err != nil {
		return MonthlyRevenue{}, err
	}

	var rows []staffRevenueRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			staff_id,
			COUNT(*) AS deliveries,
			COALESCE(SUM(quantity), 0) AS quantity,
			CAST(COALESCE(SUM(total_income), 0) AS BIGINT) AS total_income
		FROM delivery_records
		WHERE delivered_at >= ? AND delivered_at < ?
		GROUP BY staff_id
		ORDER BY total_income DESC, staff_id
	`, query.Period().Start(), query.Period().End()).Scan(&rows).Error
	if err != nil {
		return MonthlyRevenue{}, errs.NewStorageError("sum delivery records", err)
	}

	revenue := MonthlyRevenue{
		Period:  query.Period(),
		ByStaff: make([]StaffRevenue, 0, len(rows)),
	}
	for _, row := range rows {
		staffID, idErr := kernel.UUIDFromBytes(row.StaffID[:])
		if idErr != nil {
			return MonthlyRevenue{}, idErr
		}

		revenue.ByStaff = append(revenue.ByStaff, StaffRevenue{
			StaffID:     staffID,
			Deliveries:  row.Deliveries,
			Quantity:    row.Quantity,
			TotalIncome: row.TotalIncome,
		})
		revenue.Deliveries += row.Deliveries
		revenue.TotalIncome += row.TotalIncome
	}

	return revenue, nil
}
