package kernel

import "time"

// DomainEvent is a fact recorded by an aggregate. Aggregates collect events
// while they change; the unit of work hands them to the event publisher once
// the surrounding transaction has committed.
type DomainEvent interface {
	EventName() string
	AggregateID() UUID
	OccurredAt() time.Time
	Payload() map[string]any
}
