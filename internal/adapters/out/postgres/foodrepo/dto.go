package foodrepo

import (
	"time"

	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type FoodDTO struct {
	ID            uuid.UUID                   `gorm:"type:uuid;primaryKey"`
	Name          string                      `gorm:"size:150;not null"`
	Description   string                      `gorm:"size:1000;not null;default:''"`
	Price         int64                       `gorm:"not null"`
	Currency      string                      `gorm:"size:8;not null"`
	Pickup        LocationDTO                 `gorm:"embedded;embeddedPrefix:pickup_"`
	AverageRating float64                     `gorm:"not null;default:0"`
	RatedUsers    int                         `gorm:"not null;default:0"`
	Media         datatypes.JSONSlice[string] `gorm:"not null"`
	CreatedAt     time.Time                   `gorm:"not null;index"`
	Version       int                         `gorm:"not null;default:1"`
}

func (FoodDTO) TableName() string {
	return "foods"
}

type LocationDTO struct {
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

// RatingDTO is one user's rate of one food. The unique index makes a second
// rating of the same pair fail at insert time.
type RatingDTO struct {
	ID     uuid.UUID `gorm:"type:uuid;primaryKey"`
	FoodID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_food_user"`
	UserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_ratings_food_user"`
	Value  int       `gorm:"not null"`
}

func (RatingDTO) TableName() string {
	return "ratings"
}

func fromDomain(f *food.Food) FoodDTO {
	media := f.Media()
	if media == nil {
		media = []string{}
	}

	return FoodDTO{
		ID:          f.ID().Bytes(),
		Name:        f.Name(),
		Description: f.Description(),
		Price:       f.Price(),
		Currency:    f.Currency().String(),
		Pickup: LocationDTO{
			Latitude:  f.Pickup().Latitude(),
			Longitude: f.Pickup().Longitude(),
		},
		AverageRating: f.Score().Average,
		RatedUsers:    f.Score().Count,
		Media:         datatypes.NewJSONSlice(media),
		CreatedAt:     f.CreatedAt(),
		Version:       f.Version(),
	}
}

func toDomain(dto FoodDTO) (*food.Food, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	currency, err := food.ParseCurrency(dto.Currency)
	if err != nil {
		return nil, err
	}

	pickup, err := kernel.NewLocation(dto.Pickup.Latitude, dto.Pickup.Longitude)
	if err != nil {
		return nil, err
	}

	return food.RestoreFood(
		id,
		dto.Name,
		dto.Description,
		dto.Price,
		currency,
		pickup,
		food.Score{Average: dto.AverageRating, Count: dto.RatedUsers},
		[]string(dto.Media),
		dto.CreatedAt,
		dto.Version,
	)
}

func ratingFromDomain(r *food.Rating) RatingDTO {
	return RatingDTO{
		ID:     r.ID().Bytes(),
		FoodID: r.FoodID().Bytes(),
		UserID: r.UserID().Bytes(),
		Value:  r.Value(),
	}
}

func ratingToDomain(dto RatingDTO) (*food.Rating, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	return food.RestoreRating(id, foodID, userID, dto.Value)
}
