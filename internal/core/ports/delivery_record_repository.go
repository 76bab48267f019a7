package ports

import (
	"context"

	"fastfood/internal/core/domain/model/delivery"
	"fastfood/internal/core/domain/model/kernel"
)

// DeliveryRecordRepository is the append-only revenue ledger.
type DeliveryRecordRepository interface {
	Add(ctx context.Context, record *delivery.Record) error
	Get(ctx context.Context, id kernel.UUID) (*delivery.Record, error)
}
