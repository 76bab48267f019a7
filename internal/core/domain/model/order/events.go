package order

import (
	"time"

	"fastfood/internal/core/domain/model/kernel"
)

const (
	EventCreated   = "order.created"
	EventAccepted  = "order.accepted"
	EventInTransit = "order.in_transit"
	EventDelivered = "order.delivered"
	EventCancelled = "order.cancelled"
)

// Event is a lifecycle fact about one order.
type Event struct {
	name       string
	orderID    kernel.UUID
	occurredAt time.Time
	payload    map[string]any
}

func (e Event) EventName() string {
	return e.name
}

func (e Event) AggregateID() kernel.UUID {
	return e.orderID
}

func (e Event) OccurredAt() time.Time {
	return e.occurredAt
}

func (e Event) Payload() map[string]any {
	out := make(map[string]any, len(e.payload))
	for k, v := range e.payload {
		out[k] = v
	}
	return out
}

func (o *Order) raise(name string, at time.Time, payload map[string]any) {
	if payload == nil {
		payload = map[string]any{}
	}
	payload["order_id"] = o.id.String()
	payload["user_id"] = o.userID.String()
	payload["food_id"] = o.foodID.String()
	if o.staffID != nil {
		payload["staff_id"] = o.staffID.String()
	}

	o.events = append(o.events, Event{
		name:       name,
		orderID:    o.id,
		occurredAt: at.UTC(),
		payload:    payload,
	})
}
