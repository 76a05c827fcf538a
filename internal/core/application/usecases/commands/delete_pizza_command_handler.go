package commands

import (
	"context"
)

// DeletePizzaCommandHandler removes a pizza from the catalog. While order
// items still reference it the store refuses and errs.ConstraintViolationError
// is returned.
type DeletePizzaCommandHandler struct {
	uowFactory PizzaUoWFactory
}

func NewDeletePizzaCommandHandler(uowFactory PizzaUoWFactory) DeletePizzaCommandHandler {
	return DeletePizzaCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeletePizzaCommandHandler) Handle(ctx context.Context, cmd DeletePizzaCommand) error {
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

	if err := uow.PizzaRepository().Delete(ctx, cmd.PizzaID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
