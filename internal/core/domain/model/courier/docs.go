// Package courier models delivery couriers and their contact data.
//
// Couriers are referenced by orders. Deleting a courier that still has orders
// is rejected by the store, not by this package.
package courier
