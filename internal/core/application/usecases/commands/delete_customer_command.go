package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrDeleteCustomerCommandIsNotConstructed = errors.New(
	"DeleteCustomerCommand must be created via NewDeleteCustomerCommand constructor",
)

type DeleteCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteCustomerCommand(customerID int64) (DeleteCustomerCommand, error) {
	id, err := kernel.NewID("customerId", customerID)
	if err != nil {
		return DeleteCustomerCommand{}, err
	}

	return DeleteCustomerCommand{customerID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCustomerCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCustomerCommandIsNotConstructed)
}

func (c DeleteCustomerCommand) CustomerID() kernel.ID {
	return c.customerID
}
