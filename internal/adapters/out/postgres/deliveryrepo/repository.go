package deliveryrepo

import (
	"context"
	"errors"

	"fastfood/internal/adapters/out/postgres/dberr"
	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormRecordRepository struct {
	db *gorm.DB
}

func NewGormRecordRepository(db *gorm.DB) *GormRecordRepository {
	return &GormRecordRepository{db: db}
}

func (r *GormRecordRepository) Add(ctx context.Context, record *delivery.Record) error {
	if err := record.Validate(); err != nil {
		return err
	}

	dto := fromDomain(record)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return dberr.Wrap(err, "delivery record", "insert")
	}
	return nil
}

func (r *GormRecordRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Record, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto RecordDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("delivery record", id.String())
		}
		return nil, dberr.Wrap(err, "delivery record", "select")
	}

	return toDomain(dto)
}
