// Package services provides domain services that compute results spanning more
// than one aggregate of the pizza ordering system.
//
// The package includes:
//   - OrderPricer: derives an order total from its lines and the live catalog prices
//
// Totals are never stored. They are computed on every read, so a price change
// is reflected immediately in every order that references the pizza.
package services
