package order

import (
	"fmt"

	"fastfood/internal/pkg/errs"
)

// Status represents the lifecycle state of an order while it is still held in
// the pending set. Delivered and cancelled orders are removed from the set, so
// they have no Status value.
//
// State transitions:
//
//	Pending ──accept──> Assigned ──depart──> InTransit ──deliver──> (removed, record created)
//	   │
//	   └──cancel──> (removed)
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order waits for a staff member to accept it.
	Pending

	// Assigned means a staff member accepted the order; it is still being prepared.
	Assigned

	// InTransit means the assigned staff member picked the order up and is on the way.
	InTransit
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Pending:   "Pending",
		Assigned:  "Assigned",
		InTransit: "InTransit",
	}
}

// Validate checks that the Status is one of Pending, Assigned or InTransit.
// It is used when restoring orders from persistence.
func (s Status) Validate() error {
	if s != Pending && s != Assigned && s != InTransit {
		return errs.NewValueIsInvalidErrorWithCause("status is invalid", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// AwaitsPickup reports whether the order still occupies kitchen capacity:
// it has not left with a staff member yet.
func (s Status) AwaitsPickup() bool {
	return s == Pending || s == Assigned
}

// ValidateCanHaveStaff checks the consistency between status and staff
// assignment: Pending orders have no staff, Assigned and InTransit orders do.
func (s Status) ValidateCanHaveStaff(staff bool) error {
	if staff && s == Pending {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have a staff member", s.String()),
		)
	}

	if !staff && (s == Assigned || s == InTransit) {
		return errs.NewValueIsInvalidErrorWithCause(
			"status is invalid",
			fmt.Errorf("%s is not a valid status to have no staff member", s.String()),
		)
	}

	return nil
}

// Accept transitions Pending -> Assigned. Any other status means somebody else
// already moved the order on, which is reported as a conflict.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return Unknown, errs.NewConflictErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}
	return Assigned, nil
}

// Depart transitions Assigned -> InTransit.
func (s Status) Depart() (Status, error) {
	if s != Assigned {
		return Unknown, errs.NewConflictErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to depart", s.String()),
		)
	}
	return InTransit, nil
}

// ValidateDeliver checks that an order in this status may be delivered.
func (s Status) ValidateDeliver() error {
	if s != InTransit {
		return errs.NewConflictErrorWithCause(
			"order status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}
	return nil
}

// ValidateCancel checks that an order in this status may be cancelled by its owner.
func (s Status) ValidateCancel() error {
	if s != Pending {
		return fmt.Errorf("%s is not a valid status to cancel", s.String())
	}
	return nil
}
