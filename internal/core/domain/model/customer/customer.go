// Package customer models the people orders are delivered to.
package customer

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrCustomerIsNotConstructed = errors.New("Customer must be created via NewCustomer or RestoreCustomer constructor")

// Customer places orders and receives deliveries at its address.
type Customer struct {
	id      kernel.ID
	name    string
	address string
	guard   guard.ConstructorGuard
}

// NewCustomer creates a customer that has not been persisted yet.
func NewCustomer(name, address string) (*Customer, error) {
	c := &Customer{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setName(name),
		c.setAddress(address),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCustomer rebuilds a persisted customer.
func RestoreCustomer(id kernel.ID, name, address string) (*Customer, error) {
	c, err := NewCustomer(name, address)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

func (c *Customer) Validate() error {
	if c == nil {
		return ErrCustomerIsNotConstructed
	}
	return c.guard.Validate(ErrCustomerIsNotConstructed)
}

func (c *Customer) ID() kernel.ID {
	return c.id
}

func (c *Customer) Name() string {
	return c.name
}

func (c *Customer) Address() string {
	return c.address
}

func (c *Customer) Rename(name string) error {
	return c.setName(name)
}

func (c *Customer) Relocate(address string) error {
	return c.setAddress(address)
}

func (c *Customer) setName(name string) error {
	v, err := kernel.NewText("name", name)
	if err != nil {
		return err
	}
	c.name = v
	return nil
}

func (c *Customer) setAddress(address string) error {
	v, err := kernel.NewText("address", address)
	if err != nil {
		return err
	}
	c.address = v
	return nil
}
