package commands

import (
	"context"
	"fmt"

	"pizza/internal/core/domain/model/order"
	"pizza/internal/pkg/errs"
)

// DeleteOrderItemCommandHandler removes every line of a pizza from an order.
// The pizza itself is not looked up: a line may outlive interest in the
// catalog entry, and the line check covers it.
type DeleteOrderItemCommandHandler struct {
	uowFactory CompositionUoWFactory
}

func NewDeleteOrderItemCommandHandler(uowFactory CompositionUoWFactory) DeleteOrderItemCommandHandler {
	return DeleteOrderItemCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteOrderItemCommandHandler) Handle(ctx context.Context, cmd DeleteOrderItemCommand) error {
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

	if _, err := uow.OrderRepository().Get(ctx, cmd.OrderID()); err != nil {
		return asReference("order", cmd.OrderID().Int64(), err)
	}

	itemRepo := uow.OrderItemRepository()
	items, err := itemRepo.GetAllForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	if _, ok := order.FindItem(items, cmd.OrderID(), cmd.PizzaID()); !ok {
		return errs.NewReferenceNotFoundError("item", fmt.Sprintf("%s/%s", cmd.OrderID(), cmd.PizzaID()))
	}

	if err = itemRepo.Delete(ctx, cmd.OrderID(), cmd.PizzaID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
