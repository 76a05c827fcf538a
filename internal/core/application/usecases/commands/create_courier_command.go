package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

var ErrCreateCourierCommandIsNotConstructed = errors.New(
	"CreateCourierCommand must be created via NewCreateCourierCommand constructor",
)

// CreateCourierCommand represents a request to register a courier.
// The phone format is checked by the courier aggregate itself.
//
// Example:
//
//	cmd, err := NewCreateCourierCommand("Anna", "+36301234567")
//	if err != nil {
//	    return fmt.Errorf("invalid courier data: %w", err)
//	}
type CreateCourierCommand struct { //nolint:recvcheck //using for validation
	name  string
	phone string

	guard guard.ConstructorGuard
}

func NewCreateCourierCommand(name, phone string) (CreateCourierCommand, error) {
	cmd := CreateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPhone(phone),
	); err != nil {
		return CreateCourierCommand{}, err
	}

	return cmd, nil
}

func (c CreateCourierCommand) Validate() error {
	return c.guard.Validate(ErrCreateCourierCommandIsNotConstructed)
}

func (c CreateCourierCommand) Name() string {
	return c.name
}

func (c CreateCourierCommand) Phone() string {
	return c.phone
}

func (c *CreateCourierCommand) setName(name string) error {
	v, err := kernel.NewText("name", name)
	if err != nil {
		return err
	}

	c.name = v
	return nil
}

func (c *CreateCourierCommand) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}

	c.phone = phone
	return nil
}
