package queries

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderColumns = `
	id,
	user_id,
	food_id,
	staff_id,
	destination_latitude,
	destination_longitude,
	quantity,
	estimate_minutes,
	status,
	created_at
`

type GetOrdersQueryHandler struct {
	db *gorm.DB
}

func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

type orderRow struct {
	ID                   uuid.UUID
	UserID               uuid.UUID
	FoodID               uuid.UUID
	StaffID              *uuid.UUID
	DestinationLatitude  float64
	DestinationLongitude float64
	Quantity             int
	EstimateMinutes      int
	Status               int
	CreatedAt            time.Time
}

// Handle lists the orders in the query scope, oldest first.
func (h GetOrdersQueryHandler) Handle(ctx context.Context, query GetOrdersQuery) ([]OrderView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	actorID := query.Actor().ID().Bytes()
	var (
		filter string
		args   []any
	)
	switch query.Scope() {
	case ScopeUnassigned:
		filter, args = "status = ? AND staff_id IS NULL", []any{int(order.Pending)}
	case ScopeAssignedToMe:
		filter, args = "staff_id = ?", []any{actorID}
	default:
		filter, args = "user_id = ?", []any{actorID}
	}

	var rows []orderRow
	err := h.db.WithContext(ctx).
		Raw("SELECT "+orderColumns+" FROM orders WHERE "+filter+" ORDER BY created_at, id", args...).
		Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStorageError("select orders", err)
	}

	return toOrderViews(rows)
}

func toOrderViews(rows []orderRow) ([]OrderView, error) {
	views := make([]OrderView, 0, len(rows))
	for _, row := range rows {
		view, err := toOrderView(row)
		if err != nil {
			return nil, err
		}
		views = append(views, view)
	}
	return views, nil
}

func toOrderView(row orderRow) (OrderView, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return OrderView{}, err
	}

	userID, err := kernel.UUIDFromBytes(row.UserID[:])
	if err != nil {
		return OrderView{}, err
	}

	foodID, err := kernel.UUIDFromBytes(row.FoodID[:])
	if err != nil {
		return OrderView{}, err
	}

	var staffID *kernel.UUID
	if row.StaffID != nil {
		sID, staffErr := kernel.UUIDFromBytes((*row.StaffID)[:])
		if staffErr != nil {
			return OrderView{}, staffErr
		}
		staffID = &sID
	}

	destination, err := kernel.NewLocation(row.DestinationLatitude, row.DestinationLongitude)
	if err != nil {
		return OrderView{}, err
	}

	status := order.Status(row.Status)
	if err = status.Validate(); err != nil {
		return OrderView{}, err
	}

	return OrderView{
		ID:              id,
		UserID:          userID,
		FoodID:          foodID,
		StaffID:         staffID,
		Destination:     destination,
		Quantity:        row.Quantity,
		EstimateMinutes: row.EstimateMinutes,
		Status:          status,
		CreatedAt:       row.CreatedAt,
	}, nil
}
