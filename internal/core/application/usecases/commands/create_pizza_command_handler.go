package commands

import (
	"context"

	"pizza/internal/core/domain/model/pizza"
)

type CreatePizzaCommandHandler struct {
	uowFactory PizzaUoWFactory
}

func NewCreatePizzaCommandHandler(uowFactory PizzaUoWFactory) CreatePizzaCommandHandler {
	return CreatePizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle stores the pizza and returns it with its assigned id.
func (h *CreatePizzaCommandHandler) Handle(ctx context.Context, cmd CreatePizzaCommand) (*pizza.Pizza, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newPizza, err := pizza.NewPizza(cmd.Name(), cmd.Price().Int64())
	if err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	created, err := uow.PizzaRepository().Add(ctx, newPizza)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
