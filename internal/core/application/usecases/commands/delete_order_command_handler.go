package commands

import (
	"context"
)

// DeleteOrderCommandHandler deletes an order and its lines in one transaction.
// Lines go first so no line outlives its order. A missing order is detected
// from the order delete affecting no rows; the transaction is then rolled back,
// which also restores any lines removed in the first step.
type DeleteOrderCommandHandler struct {
	uowFactory CompositionUoWFactory
}

func NewDeleteOrderCommandHandler(uowFactory CompositionUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
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

	if _, err := uow.OrderItemRepository().DeleteAllForOrder(ctx, cmd.OrderID()); err != nil {
		return err
	}

	if err := uow.OrderRepository().Delete(ctx, cmd.OrderID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
