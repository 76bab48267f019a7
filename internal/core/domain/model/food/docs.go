// Package food provides the Food aggregate: a menu item with a price, a pickup
// point, attached media references and a running average rating.
//
// Ratings are kept as separate Rating entities, one per user and food. The
// aggregate owns the arithmetic of the running average so the average and the
// rated-users counter always move together.
package food
