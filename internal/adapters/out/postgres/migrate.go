package postgres

import (
	"fastfood/internal/adapters/out/postgres/deliveryrepo"
	"fastfood/internal/adapters/out/postgres/foodrepo"
	"fastfood/internal/adapters/out/postgres/orderrepo"

	"gorm.io/gorm"
)

// Migrate creates or updates every table the adapters write to.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&foodrepo.FoodDTO{},
		&foodrepo.RatingDTO{},
		&orderrepo.OrderDTO{},
		&deliveryrepo.RecordDTO{},
	)
}
