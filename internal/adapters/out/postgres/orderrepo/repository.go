package orderrepo

import (
	"context"
	"errors"
	"fmt"

	"fastfood/internal/adapters/out/postgres/dberr"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"
	"fastfood/internal/core/domain/services"
	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Wrap(err, "order", "insert")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes status and staff assignment when the stored version still
// matches the loaded one.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"status":   dto.Status,
			"staff_id": dto.StaffID,
			"version":  dto.Version + 1,
		})
	if result.Error != nil {
		return dberr.Wrap(result.Error, "order", "update")
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("order",
			fmt.Errorf("order %s changed since version %d", aggregate.ID(), dto.Version))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Delete removes the order when the stored version still matches the loaded one.
func (r *GormOrderRepository) Delete(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Where("id = ? AND version = ?", aggregate.ID().Bytes(), aggregate.Version()).
		Delete(&OrderDTO{})
	if result.Error != nil {
		return dberr.Wrap(result.Error, "order", "delete")
	}

	if result.RowsAffected == 0 {
		return errs.NewConflictErrorWithCause("order",
			fmt.Errorf("order %s changed since version %d", aggregate.ID(), aggregate.Version()))
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, dberr.Wrap(err, "order", "select")
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) SumAwaitingPickupQuantity(ctx context.Context) (int, error) {
	var total int
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status IN ?", awaitingPickup()).
		Select("COALESCE(SUM(quantity), 0)").
		Scan(&total).Error
	if err != nil {
		return 0, dberr.Wrap(err, "orders", "sum quantity of")
	}
	return total, nil
}

// ShortenEstimates decrements the estimates in the database itself, so two
// cancellations committing concurrently both take effect.
func (r *GormOrderRepository) ShortenEstimates(ctx context.Context, plan services.RebalancePlan) (int64, error) {
	if plan.Minutes <= 0 {
		return 0, nil
	}

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("status IN ?", awaitingPickup()).
		Where("id <> ?", plan.Exclude.Bytes()).
		Where("created_at >= ?", plan.Since).
		Where("estimate_minutes > ?", order.MinEstimateMinutes).
		Update("estimate_minutes", gorm.Expr(
			"CASE WHEN estimate_minutes - ? < ? THEN ? ELSE estimate_minutes - ? END",
			plan.Minutes, order.MinEstimateMinutes, order.MinEstimateMinutes, plan.Minutes,
		))
	if result.Error != nil {
		return 0, dberr.Wrap(result.Error, "orders", "rebalance")
	}
	return result.RowsAffected, nil
}

func (r *GormOrderRepository) CountByFood(ctx context.Context, foodID kernel.UUID) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("food_id = ?", foodID.Bytes()).
		Count(&count).Error
	if err != nil {
		return 0, dberr.Wrap(err, "orders", "count")
	}
	return count, nil
}

func awaitingPickup() []int {
	return []int{int(order.Pending), int(order.Assigned)}
}
