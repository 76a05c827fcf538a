// Package ports defines the contracts between the application core and the
// infrastructure that stores and publishes its data.
package ports

import (
	"context"

	"pizza/internal/core/domain/model/courier"
	"pizza/internal/core/domain/model/customer"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/pizza"
)

// PizzaRepository is the catalog lookup used to resolve pizza references and
// prices.
type PizzaRepository interface {
	// Add persists a new pizza and returns it with the store-assigned id.
	Add(ctx context.Context, p *pizza.Pizza) (*pizza.Pizza, error)

	// Update overwrites name and price of an existing pizza.
	// Returns errs.ObjectNotFoundError when no row matches.
	Update(ctx context.Context, p *pizza.Pizza) error

	// Get returns the pizza or errs.ObjectNotFoundError.
	Get(ctx context.Context, id kernel.ID) (*pizza.Pizza, error)

	// GetAll returns every pizza ordered by id.
	GetAll(ctx context.Context) ([]*pizza.Pizza, error)

	// Delete removes the pizza. A pizza still referenced by order items is
	// rejected with errs.ConstraintViolationError.
	Delete(ctx context.Context, id kernel.ID) error
}

// CustomerRepository stores customers.
type CustomerRepository interface {
	Add(ctx context.Context, c *customer.Customer) (*customer.Customer, error)
	Update(ctx context.Context, c *customer.Customer) error
	Get(ctx context.Context, id kernel.ID) (*customer.Customer, error)
	GetAll(ctx context.Context) ([]*customer.Customer, error)
	// Delete fails with errs.ConstraintViolationError while orders reference the customer.
	Delete(ctx context.Context, id kernel.ID) error
}

// CourierRepository stores couriers.
type CourierRepository interface {
	Add(ctx context.Context, c *courier.Courier) (*courier.Courier, error)
	Update(ctx context.Context, c *courier.Courier) error
	Get(ctx context.Context, id kernel.ID) (*courier.Courier, error)
	GetAll(ctx context.Context) ([]*courier.Courier, error)
	// Delete fails with errs.ConstraintViolationError while orders reference the courier.
	Delete(ctx context.Context, id kernel.ID) error
}
