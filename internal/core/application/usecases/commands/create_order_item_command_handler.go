package commands

import (
	"context"

	"pizza/internal/core/domain/model/order"
)

// CreateOrderItemCommandHandler appends a line to an order after checking that
// both the pizza and the order exist. Adding a pizza that is already on the
// order creates a second line rather than merging quantities.
type CreateOrderItemCommandHandler struct {
	uowFactory CompositionUoWFactory
}

func NewCreateOrderItemCommandHandler(uowFactory CompositionUoWFactory) CreateOrderItemCommandHandler {
	return CreateOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns errs.ReferenceNotFoundError of kind "pizza" or "order" when a
// reference is missing; nothing is written in that case.
func (h *CreateOrderItemCommandHandler) Handle(ctx context.Context, cmd CreateOrderItemCommand) (*order.Item, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return nil, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.PizzaRepository().Get(ctx, cmd.PizzaID()); err != nil {
		return nil, asReference("pizza", cmd.PizzaID().Int64(), err)
	}

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return nil, asReference("order", cmd.OrderID().Int64(), err)
	}

	item, err := order.NewItem(cmd.OrderID(), cmd.PizzaID(), cmd.Quantity())
	if err != nil {
		return nil, err
	}

	if err = uow.OrderItemRepository().Add(ctx, item); err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return item, nil
}
