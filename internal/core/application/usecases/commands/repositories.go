// Package commands contains the business operations that change state: order
// lifecycle transitions, ratings and food management.
// Every command is validated by its constructor; every handler runs in its own
// unit of work and commits exactly once.
package commands

import (
	"context"

	"fastfood/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler asks only for the repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	FoodRepoFactory interface {
		FoodRepository() ports.FoodRepository
	}

	RatingRepoFactory interface {
		RatingRepository() ports.RatingRepository
	}

	DeliveryRecordRepoFactory interface {
		DeliveryRecordRepository() ports.DeliveryRecordRepository
	}

	// OrderUoW serves the order lifecycle commands that read foods but only
	// write orders.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
		FoodRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// FoodUoW serves food management and rating. Orders are read to refuse
	// deleting a food that is still being ordered.
	FoodUoW interface {
		TxManager
		FoodRepoFactory
		RatingRepoFactory
		OrderRepoFactory
	}

	FoodUoWFactory interface {
		Create() FoodUoW
	}

	// UoW spans every repository. DeliverOrder uses it to append the delivery
	// record and remove the order atomically.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   recordRepo := uow.DeliveryRecordRepository()
	//   orderRepo := uow.OrderRepository()
	//   // ... perform operations
	//
	//   err = uow.Commit(ctx)
	UoW interface {
		TxManager
		OrderRepoFactory
		FoodRepoFactory
		DeliveryRecordRepoFactory
	}

	UoWFactory interface {
		Create() UoW
	}
)
