// Package services provides domain services of the fastfood core: logic that
// spans more than one aggregate or does not belong to a single one.
//
// The package includes:
//   - EstimateEngine: delivery estimates and their rebalancing after a cancellation
//   - RevenueRecorder: turns a delivered order into a delivery.Record in local currency
//
// Both services are pure. Loading the pending set and persisting the results is
// left to the command handlers and their unit of work.
package services
