package ports

import (
	"context"

	"fastfood/internal/core/domain/model/kernel"
)

// MediaStore owns the files behind food media references.
type MediaStore interface {
	// Release deletes the files behind refs. Missing files are not an error.
	Release(ctx context.Context, refs []string) error
}

// EventPublisher delivers domain events once the transaction that recorded
// them has committed. Delivery is best effort: failures are logged by the
// publisher and never undo the committed change.
type EventPublisher interface {
	Publish(ctx context.Context, events ...kernel.DomainEvent)
}
