package commands

import (
	"context"
)

type UpdatePizzaCommandHandler struct {
	uowFactory PizzaUoWFactory
}

func NewUpdatePizzaCommandHandler(uowFactory PizzaUoWFactory) UpdatePizzaCommandHandler {
	return UpdatePizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ObjectNotFoundError when the pizza does not exist.
// Orders referencing the pizza are repriced by the change.
func (h *UpdatePizzaCommandHandler) Handle(ctx context.Context, cmd UpdatePizzaCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	repo := uow.PizzaRepository()
	p, err := repo.Get(ctx, cmd.PizzaID())
	if err != nil {
		return err
	}

	if name, ok := cmd.Name(); ok {
		if err = p.Rename(name); err != nil {
			return err
		}
	}

	if price, ok := cmd.Price(); ok {
		if err = p.ChangePrice(price); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, p); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
