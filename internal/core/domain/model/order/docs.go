// Package order provides the Order aggregate of the fastfood core and its
// lifecycle state machine.
//
// The package includes:
//   - Order: the aggregate root holding quantity, destination, estimate and assignment
//   - Status: Pending -> Assigned -> InTransit, with cancellation only from Pending
//   - Event: lifecycle facts recorded by Order for publication after commit
//
// Key business rules:
//   - Only Pending orders with no staff member can be accepted
//   - Only the assigned staff member moves an order to InTransit and delivers it
//   - Only the owning user cancels, and only while the order is Pending
//   - Estimates never fall below MinEstimateMinutes
package order
