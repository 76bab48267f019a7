package queries

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type GetDeliveryRecordsQueryHandler struct {
	db *gorm.DB
}

func NewGetDeliveryRecordsQueryHandler(db *gorm.DB) GetDeliveryRecordsQueryHandler {
	return GetDeliveryRecordsQueryHandler{db: db}
}

type recordRow struct {
	ID          uuid.UUID
	StaffID     uuid.UUID
	FoodID      uuid.UUID
	Quantity    int
	TotalIncome int64
	DeliveredAt time.Time
}

// Handle lists the records of the period in delivery order and sums their income.
func (h GetDeliveryRecordsQueryHandler) Handle(ctx context.Context, query GetDeliveryRecordsQuery) (DeliveryReport, error) {
	if err := query.Validate(); err != nil {
		return DeliveryReport{}, err
	}

	stmt := h.db.WithContext(ctx).
		Table("delivery_records").
		Select("id, staff_id, food_id, quantity, total_income, delivered_at").
		Where("delivered_at >= ? AND delivered_at < ?", query.Period().Start(), query.Period().End())
	if staffID := query.StaffID(); staffID != nil {
		stmt = stmt.Where("staff_id = ?", staffID.Bytes())
	}

	var rows []recordRow
	if err := stmt.Order("delivered_at, id").Scan(&rows).Error; err != nil {
		return DeliveryReport{}, errs.NewStorageError("select delivery records", err)
	}

	report := DeliveryReport{
		Period:  query.Period(),
		Records: make([]DeliveryRecordView, 0, len(rows)),
	}
	for _, row := range rows {
		view, err := toDeliveryRecordView(row)
		if err != nil {
			return DeliveryReport{}, err
		}
		report.Records = append(report.Records, view)
		report.TotalIncome += view.TotalIncome
	}

	return report, nil
}

func toDeliveryRecordView(row recordRow) (DeliveryRecordView, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return DeliveryRecordView{}, err
	}

	staffID, err := kernel.UUIDFromBytes(row.StaffID[:])
	if err != nil {
		return DeliveryRecordView{}, err
	}

	foodID, err := kernel.UUIDFromBytes(row.FoodID[:])
	if err != nil {
		return DeliveryRecordView{}, err
	}

	return DeliveryRecordView{
		ID:          id,
		StaffID:     staffID,
		FoodID:      foodID,
		Quantity:    row.Quantity,
		TotalIncome: row.TotalIncome,
		DeliveredAt: row.DeliveredAt,
	}, nil
}
