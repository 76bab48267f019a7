package queries

import (
	"context"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type GetFoodsQueryHandler struct {
	db *gorm.DB
}

func NewGetFoodsQueryHandler(db *gorm.DB) GetFoodsQueryHandler {
	return GetFoodsQueryHandler{db: db}
}

type foodRow struct {
	ID              uuid.UUID
	Name            string
	Description     string
	Price           int64
	Currency        string
	PickupLatitude  float64
	PickupLongitude float64
	AverageRating   float64
	RatedUsers      int
	Media           datatypes.JSONSlice[string]
	CreatedAt       time.Time
}

// Handle returns every food, oldest first.
func (h GetFoodsQueryHandler) Handle(ctx context.Context, query GetFoodsQuery) ([]FoodView, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []foodRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			name,
			description,
			price,
			currency,
			pickup_latitude,
			pickup_longitude,
			average_rating,
			rated_users,
			media,
			created_at
		FROM foods
		ORDER BY created_at, id
	`).Scan(&rows).Error
	if err != nil {
		return nil, errs.NewStorageError("select foods", err)
	}

	foods := make([]FoodView, 0, len(rows))
	for _, row := range rows {
		id, idErr := kernel.UUIDFromBytes(row.ID[:])
		if idErr != nil {
			return nil, idErr
		}

		pickup, locErr := kernel.NewLocation(row.PickupLatitude, row.PickupLongitude)
		if locErr != nil {
			return nil, locErr
		}

		media := []string(row.Media)
		if media == nil {
			media = []string{}
		}

		foods = append(foods, FoodView{
			ID:            id,
			Name:          row.Name,
			Description:   row.Description,
			Price:         row.Price,
			Currency:      row.Currency,
			Pickup:        pickup,
			AverageRating: row.AverageRating,
			RatedUsers:    row.RatedUsers,
			Media:         media,
			CreatedAt:     row.CreatedAt,
		})
	}

	return foods, nil
}
