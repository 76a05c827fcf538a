package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
)

// CreateOrderCommand represents a request to place a new order for a customer,
// to be delivered by a courier. Neither reference is checked here; the store's
// foreign keys reject unknown ids.
//
// Example:
//
//	cmd, err := NewCreateOrderCommand(customerID, courierID)
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	created, err := handler.Handle(ctx, cmd)
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	courierID  kernel.ID

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand validates both ids and reports every invalid one.
func NewCreateOrderCommand(customerID, courierID int64) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setCustomerID(customerID),
		cmd.setCourierID(courierID),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c CreateOrderCommand) CourierID() kernel.ID {
	return c.courierID
}

func (c *CreateOrderCommand) setCustomerID(raw int64) error {
	id, err := kernel.NewID("customerId", raw)
	if err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setCourierID(raw int64) error {
	id, err := kernel.NewID("courierId", raw)
	if err != nil {
		return err
	}

	c.courierID = id
	return nil
}
