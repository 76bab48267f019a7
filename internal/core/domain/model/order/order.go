package order

import (
	"errors"
	"fmt"
	"time"

	"fastfood/internal/core/domain/model/kernel"
	"fastfood/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// MinEstimateMinutes is the smallest estimate an order can carry. It means
// "almost ready"; rebalancing never drives an estimate below it.
const MinEstimateMinutes = 1

// Order is a user's request for a quantity of one food, delivered to a
// destination. It is the aggregate root of the order lifecycle and lives in
// the pending set until it is delivered or cancelled.
//
// Order follows these invariants:
//   - Must have valid identifiers for itself, its owning user and its food
//   - Quantity is positive and the estimate is at least MinEstimateMinutes
//   - A staff member is assigned exactly when the status is Assigned or InTransit
//   - Status transitions follow the rules of Status
//
// Every successful transition records a domain Event; see DomainEvents.
type Order struct {
	id     kernel.UUID
	userID kernel.UUID
	foodID kernel.UUID

	// staffID is the accepting staff member (nil while Pending)
	staffID *kernel.UUID

	destination kernel.Location
	quantity    int

	// estimateMinutes is the expected time to delivery computed at creation and
	// shortened when earlier queued load is cancelled
	estimateMinutes int

	status    Status
	createdAt time.Time

	// version increases on every lifecycle transition and guards concurrent writes
	version int

	events []kernel.DomainEvent

	isConstructed bool
}

// NewOrder creates a Pending order. createdAt is normalized to UTC with
// microsecond precision so it compares equal after a database round trip.
//
// Example:
//
//	o, err := order.NewOrder(kernel.NewUUID(), actor.ID(), foodID, destination, 2, estimate, time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id kernel.UUID,
	userID kernel.UUID,
	foodID kernel.UUID,
	destination kernel.Location,
	quantity int,
	estimateMinutes int,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setFoodID(foodID),
		o.setDestination(destination),
		o.setQuantity(quantity),
		o.setEstimateMinutes(estimateMinutes),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.raise(EventCreated, o.createdAt, map[string]any{
		"quantity":         o.quantity,
		"estimate_minutes": o.estimateMinutes,
	})
	return o, nil
}

// RestoreOrder rebuilds an order loaded from persistence. No event is recorded.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	foodID kernel.UUID,
	destination kernel.Location,
	quantity int,
	estimateMinutes int,
	status Status,
	staffID *kernel.UUID,
	createdAt time.Time,
	version int,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setUserID(userID),
		o.setFoodID(foodID),
		o.setDestination(destination),
		o.setQuantity(quantity),
		o.setEstimateMinutes(estimateMinutes),
		o.setCreatedAt(createdAt),
		o.setStatus(status, staffID),
		o.setVersion(version),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID {
	return o.id
}

func (o *Order) UserID() kernel.UUID {
	return o.userID
}

func (o *Order) FoodID() kernel.UUID {
	return o.foodID
}

// Staff returns the assigned staff member, or nil while the order is Pending.
func (o *Order) Staff() *kernel.UUID {
	return o.staffID
}

func (o *Order) Destination() kernel.Location {
	return o.destination
}

func (o *Order) Quantity() int {
	return o.quantity
}

func (o *Order) EstimateMinutes() int {
	return o.estimateMinutes
}

func (o *Order) Status() Status {
	return o.status
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// Version is the optimistic concurrency token the order was loaded with.
func (o *Order) Version() int {
	return o.version
}

// Overdue reports whether the estimate has elapsed at now.
func (o *Order) Overdue(now time.Time) bool {
	deadline := o.createdAt.Add(time.Duration(o.estimateMinutes) * time.Minute)
	return now.After(deadline)
}

// Accept assigns the order to staffID.
//
// Guard: the order is Pending and has no staff member. Any other state means
// another staff member won the race, reported as a Conflict error.
func (o *Order) Accept(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	if o.staffID != nil {
		return errs.NewConflictErrorWithCause("order", fmt.Errorf("order %s is already accepted", o.id))
	}

	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.staffID = &staffID
	o.raise(EventAccepted, time.Now(), nil)
	return nil
}

// Depart marks the order as picked up and on the way.
//
// Guard: the order is Assigned to staffID.
func (o *Order) Depart(staffID kernel.UUID) error {
	if err := o.requireStaff(staffID); err != nil {
		return err
	}

	newStatus, err := o.status.Depart()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.raise(EventInTransit, time.Now(), nil)
	return nil
}

// Deliver checks that staffID may hand the order over and records the
// delivery. The caller removes the order from the pending set in the same
// transaction that stores the delivery record.
//
// Guard: the order is InTransit with staffID.
func (o *Order) Deliver(staffID kernel.UUID) error {
	if err := o.requireStaff(staffID); err != nil {
		return err
	}

	if err := o.status.ValidateDeliver(); err != nil {
		return err
	}

	o.raise(EventDelivered, time.Now(), map[string]any{"quantity": o.quantity})
	return nil
}

// Cancel checks that userID may withdraw the order and records the
// cancellation. Only the owner may cancel, and only while the order is Pending.
func (o *Order) Cancel(userID kernel.UUID) error {
	if err := userID.Validate(); err != nil {
		return err
	}

	if !o.userID.IsEqual(userID) {
		return errs.NewForbiddenErrorWithCause("cancel order", fmt.Errorf("order %s belongs to another user", o.id))
	}

	if err := o.status.ValidateCancel(); err != nil {
		return errs.NewObjectNotFoundErrorWithCause("pending order", o.id.String(), err)
	}

	o.raise(EventCancelled, time.Now(), map[string]any{"quantity": o.quantity})
	return nil
}

// ShortenEstimate reduces the estimate by minutes, never below MinEstimateMinutes.
// It reports whether the estimate changed.
func (o *Order) ShortenEstimate(minutes int) bool {
	if minutes <= 0 {
		return false
	}

	shortened := max(MinEstimateMinutes, o.estimateMinutes-minutes)
	if shortened == o.estimateMinutes {
		return false
	}
	o.estimateMinutes = shortened
	return true
}

// DomainEvents returns the events recorded since the order was built or last cleared.
func (o *Order) DomainEvents() []kernel.DomainEvent {
	out := make([]kernel.DomainEvent, len(o.events))
	copy(out, o.events)
	return out
}

// ClearDomainEvents drops recorded events once they have been published.
func (o *Order) ClearDomainEvents() {
	o.events = nil
}

func (o *Order) requireStaff(staffID kernel.UUID) error {
	if err := staffID.Validate(); err != nil {
		return err
	}

	if o.staffID == nil || !o.staffID.IsEqual(staffID) {
		return errs.NewConflictErrorWithCause("order", fmt.Errorf("order %s is not assigned to %s", o.id, staffID))
	}
	return nil
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("user", err)
	}
	o.userID = id
	return nil
}

func (o *Order) setFoodID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("food", err)
	}
	o.foodID = id
	return nil
}

func (o *Order) setDestination(destination kernel.Location) error {
	if err := destination.Validate(); err != nil {
		return err
	}
	o.destination = destination
	return nil
}

func (o *Order) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity is invalid", fmt.Errorf("%d is not greater than 0", quantity))
	}
	o.quantity = quantity
	return nil
}

func (o *Order) setEstimateMinutes(minutes int) error {
	if minutes < MinEstimateMinutes {
		return errs.NewValueIsInvalidErrorWithCause(
			"estimate is invalid",
			fmt.Errorf("%d is less than %d", minutes, MinEstimateMinutes),
		)
	}
	o.estimateMinutes = minutes
	return nil
}

func (o *Order) setCreatedAt(createdAt time.Time) error {
	if createdAt.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = createdAt.UTC().Truncate(time.Microsecond)
	return nil
}

func (o *Order) setStatus(status Status, staffID *kernel.UUID) error {
	if err := status.Validate(); err != nil {
		return err
	}
	if err := status.ValidateCanHaveStaff(staffID != nil); err != nil {
		return err
	}
	if staffID != nil {
		if err := staffID.Validate(); err != nil {
			return err
		}
		id := *staffID
		o.staffID = &id
	}
	o.status = status
	return nil
}

func (o *Order) setVersion(version int) error {
	if version < 1 {
		return errs.NewValueIsOutOfRangeError("version", version, 1, "unbounded")
	}
	o.version = version
	return nil
}
