package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrCreateCustomerCommandIsNotConstructed = errors.New(
	"CreateCustomerCommand must be created via NewCreateCustomerCommand constructor",
)

type CreateCustomerCommand struct { //nolint:recvcheck //using for validation
	name    string
	address string

	guard guard.ConstructorGuard
}

func NewCreateCustomerCommand(name, address string) (CreateCustomerCommand, error) {
	cmd := CreateCustomerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setAddress(address),
	); err != nil {
		return CreateCustomerCommand{}, err
	}

	return cmd, nil
}

func (c CreateCustomerCommand) Validate() error {
	return c.guard.Validate(ErrCreateCustomerCommandIsNotConstructed)
}

func (c CreateCustomerCommand) Name() string {
	return c.name
}

func (c CreateCustomerCommand) Address() string {
	return c.address
}

func (c *CreateCustomerCommand) setName(name string) error {
	v, err := kernel.NewText("name", name)
	if err != nil {
		return err
	}

	c.name = v
	return nil
}

func (c *CreateCustomerCommand) setAddress(address string) error {
	v, err := kernel.NewText("address", address)
	if err != nil {
		return err
	}

	c.address = v
	return nil
}
