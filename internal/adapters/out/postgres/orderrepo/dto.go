package orderrepo

import (
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is a row of the pending set. Delivered and cancelled orders are deleted.
type OrderDTO struct {
	ID              uuid.UUID   `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID   `gorm:"type:uuid;not null;index"`
	FoodID          uuid.UUID   `gorm:"type:uuid;not null;index"`
	StaffID         *uuid.UUID  `gorm:"type:uuid;index"`
	Destination     LocationDTO `gorm:"embedded;embeddedPrefix:destination_"`
	Quantity        int         `gorm:"not null"`
	EstimateMinutes int         `gorm:"not null"`
	Status          int         `gorm:"not null;index"`
	CreatedAt       time.Time   `gorm:"not null;index"`
	Version         int         `gorm:"not null;default:1"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type LocationDTO struct {
	Latitude  float64 `gorm:"not null"`
	Longitude float64 `gorm:"not null"`
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:      o.ID().Bytes(),
		UserID:  o.UserID().Bytes(),
		FoodID:  o.FoodID().Bytes(),
		StaffID: staffFromDomain(o.Staff()),
		Destination: LocationDTO{
			Latitude:  o.Destination().Latitude(),
			Longitude: o.Destination().Longitude(),
		},
		Quantity:        o.Quantity(),
		EstimateMinutes: o.EstimateMinutes(),
		Status:          int(o.Status()),
		CreatedAt:       o.CreatedAt(),
		Version:         o.Version(),
	}
}

func staffFromDomain(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	foodID, err := kernel.UUIDFromBytes(dto.FoodID[:])
	if err != nil {
		return nil, err
	}

	var staffID *kernel.UUID
	if dto.StaffID != nil {
		sID, staffErr := kernel.UUIDFromBytes((*dto.StaffID)[:])
		if staffErr != nil {
			return nil, staffErr
		}
		staffID = &sID
	}

	destination, err := kernel.NewLocation(dto.Destination.Latitude, dto.Destination.Longitude)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		userID,
		foodID,
		destination,
		dto.Quantity,
		dto.EstimateMinutes,
		order.Status(dto.Status),
		staffID,
		dto.CreatedAt,
		dto.Version,
	)
}
