package ports

import (
	"context"
)

// UnitOfWorkFactory creates a new UnitOfWork for each command.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork is the transaction boundary of one command. Repositories obtained
// from it after Begin run inside the transaction. Domain events of the
// aggregates they write are published after Commit succeeds.
type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error

	OrderRepository() OrderRepository
	FoodRepository() FoodRepository
	RatingRepository() RatingRepository
	DeliveryRecordRepository() DeliveryRecordRepository
}
