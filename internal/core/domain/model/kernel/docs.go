// Package kernel provides the shared value objects of the pizza ordering domain.
//
// The package includes:
//   - ID: a positive, store-assigned numeric identifier of customers, couriers,
//     pizzas and orders
//   - Money: an amount in minor currency units, used for pizza prices and order totals
//   - UUID: an identifier for domain events published through the outbox
//
// Values are immutable and safe for concurrent use.
package kernel
