package deliveryrepo

import (
	"time"

	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

// RecordDTO has no foreign key to foods: records outlive the food they sold.
type RecordDTO struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey"`
	StaffID     uuid.UUID `gorm:"type:uuid;not null;index"`
	FoodID      uuid.UUID `gorm:"type:uuid;not null;index"`
	Quantity    int       `gorm:"not null"`
	TotalIncome int64     `gorm:"not null"`
	DeliveredAt time.Time `gorm:"not null;index"`
}

func (RecordDTO) TableName() string {
	return "delivery_records"
}

func fromDomain(r *delivery.Record) RecordDTO {
	return RecordDTO{
		ID:          r.ID().Bytes(),
		StaffID:     r.StaffID().Bytes(),
		FoodID:      r.FoodID().Bytes(),
		Quantity:    r.Quantity(),
		TotalIncome: r.TotalIncome(),
		DeliveredAt: r.DeliveredAt(),
	}
}

func toDomain(dto RecordDTO) (*delivery.Record, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	staffID, err := kernel.UUIDFromBytes(dto.StaffID[:])
	if err != nil {
		return nil, err
	}

	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return nil, err
	}

	return delivery.RestoreRecord(id, staffID, foodID, dto.Quantity, dto.TotalIncome, dto.DeliveredAt)
}
