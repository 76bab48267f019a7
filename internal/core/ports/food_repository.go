package ports

import (
	"context"

	"fastfood/internal/core/domain/model/food"
	"fastfood/internal/core/domain/model/kernel"
)

// FoodRepository persists foods. Update is conditioned on the version the food
// was loaded with and returns a Conflict error when it moved on.
type FoodRepository interface {
	Add(ctx context.Context, aggregate *food.Food) error
	Update(ctx context.Context, aggregate *food.Food) error
	Delete(ctx context.Context, aggregate *food.Food) error
	Get(ctx context.Context, id kernel.UUID) (*food.Food, error)
}

// RatingRepository persists individual ratings. A (food, user) pair is unique;
// inserting a second rating for it returns a Conflict error.
type RatingRepository interface {
	Add(ctx context.Context, rating *food.Rating) error
	Update(ctx context.Context, rating *food.Rating) error

	// FindByFoodAndUser returns the user's rating of the food, or a NotFound
	// error when the user has not rated it yet.
	FindByFoodAndUser(ctx context.Context, foodID kernel.UUID, userID kernel.UUID) (*food.Rating, error)

	DeleteByFood(ctx context.Context, foodID kernel.UUID) error
}
