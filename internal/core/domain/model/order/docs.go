// Package order provides the Order aggregate root, its line items and the
// change events raised when either is written.
//
// The package includes:
//   - Order: who ordered, who delivers and when; never a stored total
//   - Item: a pizza and a quantity between 1 and 20 within an order
//   - Event: an outbox record of a committed order or item change
//
// Key business rules:
//   - Order ids and creation times are assigned by the server
//   - Items may repeat the same (order, pizza) pair; each line is priced on its own
//   - Items never outlive their order; deletion of an order removes its items first
package order
