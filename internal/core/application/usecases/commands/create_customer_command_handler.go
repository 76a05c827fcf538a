package commands

import (
	"context"

	"pizza/internal/core/domain/model/customer"
)

type CreateCustomerCommandHandler struct {
	uowFactory CustomerUoWFactory
}

func NewCreateCustomerCommandHandler(uowFactory CustomerUoWFactory) CreateCustomerCommandHandler {
	return CreateCustomerCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *CreateCustomerCommandHandler) Handle(
	ctx context.Context,
	cmd CreateCustomerCommand,
) (*customer.Customer, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newCustomer, err := customer.NewCustomer(cmd.Name(), cmd.Address())
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

	created, err := uow.CustomerRepository().Add(ctx, newCustomer)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
