// Package kernel provides the shared domain primitives of the fastfood core.
//
// The package includes:
//   - UUID: identifier value object for every entity and actor
//   - Location: a validated latitude/longitude with great-circle Distance
//   - Actor and Role: the identity an operation runs on behalf of
//   - DomainEvent: the contract for facts recorded by aggregates
//
// All value objects are immutable and use guard.ConstructorGuard, so a zero
// value never passes validation.
package kernel
