package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/pizza"
	"pizza/internal/pkg/guard"
)

var ErrCreatePizzaCommandIsNotConstructed = errors.New(
	"CreatePizzaCommand must be created via NewCreatePizzaCommand constructor",
)

// CreatePizzaCommand adds a pizza to the catalog.
type CreatePizzaCommand struct { //nolint:recvcheck //using for validation
	name  string
	price kernel.Money

	guard guard.ConstructorGuard
}

func NewCreatePizzaCommand(name string, price int64) (CreatePizzaCommand, error) {
	cmd := CreatePizzaCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setName(name),
		cmd.setPrice(price),
	); err != nil {
		return CreatePizzaCommand{}, err
	}

	return cmd, nil
}

func (c CreatePizzaCommand) Validate() error {
	return c.guard.Validate(ErrCreatePizzaCommandIsNotConstructed)
}

func (c CreatePizzaCommand) Name() string {
	return c.name
}

func (c CreatePizzaCommand) Price() kernel.Money {
	return c.price
}

func (c *CreatePizzaCommand) setName(name string) error {
	v, err := kernel.NewText("name", name)
	if err != nil {
		return err
	}

	c.name = v
	return nil
}

func (c *CreatePizzaCommand) setPrice(price int64) error {
	v, err := kernel.NewMoney("price", price, pizza.MinPrice, pizza.MaxPrice)
	if err != nil {
		return err
	}

	c.price = v
	return nil
}
