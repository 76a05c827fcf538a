package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrUpdateCustomerCommandIsNotConstructed = errors.New(
	"UpdateCustomerCommand must be created via NewUpdateCustomerCommand constructor",
)

// UpdateCustomerCommand carries the supplied subset of a customer's fields.
type UpdateCustomerCommand struct { //nolint:recvcheck //using for validation
	customerID kernel.ID
	name       *string
	address    *string

	guard guard.ConstructorGuard
}

func NewUpdateCustomerCommand(customerID int64, name, address *string) (UpdateCustomerCommand, error) {
	cmd := UpdateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	id, idErr := kernel.NewID("customerId", customerID)
	cmd.customerID = id

	var nameErr, addressErr error
	cmd.name, nameErr = optionalText("name", name)
	cmd.address, addressErr = optionalText("address", address)

	if err := errors.Join(idErr, nameErr, addressErr); err != nil {
		return UpdateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCustomerCommandIsNotConstructed)
}

func (c UpdateCustomerCommand) CustomerID() kernel.ID {
	return c.customerID
}

func (c UpdateCustomerCommand) Name() (string, bool) {
	return deref(c.name)
}

func (c UpdateCustomerCommand) Address() (string, bool) {
	return deref(c.address)
}

// optionalText validates value when it is present.
func optionalText(paramName string, value *string) (*string, error) {
	if value == nil {
		return nil, nil //nolint:nilnil // absent field
	}

	v, err := kernel.NewText(paramName, *value)
	if err != nil {
		return nil, err
	}

	return &v, nil
}

func deref(value *string) (string, bool) {
	if value == nil {
		return "", false
	}
	return *value, true
}
