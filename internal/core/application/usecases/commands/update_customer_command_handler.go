package commands

import (
	"context"
)

type UpdateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewUpdateCustomerCommandHandler(uowFactory CustomerUoWFactory) UpdateCustomerCommandHandler {
	return UpdateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateCustomerCommandHandler) Handle(ctx context.Context, cmd UpdateCustomerCommand) error {
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

	repo := uow.CustomerRepository()
	c, err := repo.Get(ctx, cmd.CustomerID())
	if err != nil {
		return err
	}

	if name, ok := cmd.Name(); ok {
		if err = c.Rename(name); err != nil {
			return err
		}
	}

	if address, ok := cmd.Address(); ok {
		if err = c.Relocate(address); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
