package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrDeletePizzaCommandIsNotConstructed = errors.New(
	"DeletePizzaCommand must be created via NewDeletePizzaCommand constructor",
)

type DeletePizzaCommand struct { //nolint:recvcheck //using for validation
	pizzaID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeletePizzaCommand(pizzaID int64) (DeletePizzaCommand, error) {
	id, err := kernel.NewID("pizzaId", pizzaID)
	if err != nil {
		return DeletePizzaCommand{}, err
	}

	return DeletePizzaCommand{pizzaID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeletePizzaCommand) Validate() error {
	return c.guard.Validate(ErrDeletePizzaCommandIsNotConstructed)
}

func (c DeletePizzaCommand) PizzaID() kernel.ID {
	return c.pizzaID
}
