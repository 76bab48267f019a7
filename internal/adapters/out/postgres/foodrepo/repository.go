package foodrepo

import (
	"context"
	"errors"
	"fmt"

	"fastfood/internal/adapters/out/postgres/dberr"
	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

type GormFoodRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

func NewGormFoodRepository(db *gorm.DB, tracker aggregateTracker) *GormFoodRepository {
	return &GormFoodRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormFoodRepository) Add(ctx context.Context, aggregate *food.Food) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Wrap(err, "food", "insert")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes every mutable column when the stored version still matches.
func (r *GormFoodRepository) Update(ctx context.Context, aggregate *food.Food) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&FoodDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"name":             dto.Name,
			"description":      dto.Description,
			"price":            dto.Price,
			"currency":         dto.Currency,
			"pickup_latitude":  dto.Pickup.Latitude,
			"pickup_longitude": dto.Pickup.Longitude,
			"average_rating":   dto.AverageRating,
			"rated_users":      dto.RatedUsers,
			"media":            dto.Media,
			"version":          dto.Version + 1,
		})
	if result.Error != nil {
		return dberr.Wrap(result.Error, "food", "update")
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("food",
			fmt.Errorf("food %s changed since version %d", aggregate.ID(), dto.Version))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormFoodRepository) Delete(ctx context.Context, aggregate *food.Food) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.Version()).
		Delete(&FoodDTO{})
	if result.Error != nil {
		return dberr.Wrap(result.Error, "food", "delete")
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("food",
			fmt.Errorf("food %s changed since version %d", aggregate.ID(), aggregate.Version()))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormFoodRepository) Get(ctx context.Context, id kernel.UUID) (*food.Food, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto FoodDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("food", id.String())
		}
		return nil, dberr.Wrap(err, "food", "select")
	}

	return toDomain(dto)
}

type GormRatingRepository struct {
	db *gorm.DB
}

func NewGormRatingRepository(db *gorm.DB) *GormRatingRepository {
	return &GormRatingRepository{db: db}
}

// Add inserts a first rating. A concurrent first rating by the same user
// trips the unique index and comes back as a Conflict.
func (r *GormRatingRepository) Add(ctx context.Context, rating *food.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	dto := ratingFromDomain(rating)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Wrap(err, "rating", "insert")
	}
	return nil
}

func (r *GormRatingRepository) Update(ctx context.Context, rating *food.Rating) error {
	if err := rating.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&RatingDTO{}).
		Where("id = ?", rating.ID().Bytes()).
		Update("value", rating.Value())
	if result.Error != nil {
		return dberr.Wrap(result.Error, "rating", "update")
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("rating", rating.ID().String())
	}
	return nil
}

func (r *GormRatingRepository) FindByFoodAndUser(
	ctx context.Context,
	foodID kernel.UUID,
	userID kernel.UUID,
) (*food.Rating, error) {
	var dto RatingDTO
	err := r.db.WithContext(ctx).
		Where("food_id = ? AND user_id = ?", foodID.Bytes(), userID.Bytes()).
		First(&dto).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("rating", foodID.String()+"/"+userID.String())
		}
		return nil, dberr.Wrap(err, "rating", "select")
	}

	return ratingToDomain(dto)
}

func (r *GormRatingRepository) DeleteByFood(ctx context.Context, foodID kernel.UUID) error {
	err := r.db.WithContext(ctx).
		Where("food_id = ?", foodID.Bytes()).
		Delete(&RatingDTO{}).Error
	return dberr.Wrap(err, "ratings", "delete")
}
