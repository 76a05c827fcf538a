package commands

import (
	"context"
	"fmt"

	"pizza/internal/core/domain/model/order"
	"pizza/internal/pkg/errs"
)

// UpdateOrderItemQuantityCommandHandler changes the quantity of an existing line.
// When the pair has several lines they are replaced by a single line with the
// new quantity, inside one transaction.
type UpdateOrderItemQuantityCommandHandler struct {
	uowFactory CompositionUoWFactory
}

func NewUpdateOrderItemQuantityCommandHandler(
	uowFactory CompositionUoWFactory,
) UpdateOrderItemQuantityCommandHandler {
	return UpdateOrderItemQuantityCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle checks the order, then the pizza, then that the pair is on the order.
// Each failure is an errs.ReferenceNotFoundError and leaves the store untouched.
func (h *UpdateOrderItemQuantityCommandHandler) Handle(ctx context.Context, cmd UpdateOrderItemQuantityCommand) error {
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

	if _, err := uow.PizzaRepository().Get(ctx, cmd.PizzaID()); err != nil {
		return asReference("pizza", cmd.PizzaID().Int64(), err)
	}

	itemRepo := uow.OrderItemRepository()
	items, err := itemRepo.GetAllForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	item, ok := order.FindItem(items, cmd.OrderID(), cmd.PizzaID())
	if !ok {
		return errs.NewReferenceNotFoundError("item", fmt.Sprintf("%s/%s", cmd.OrderID(), cmd.PizzaID()))
	}

	if err = item.ChangeQuantity(cmd.Quantity()); err != nil {
		return err
	}

	if err = itemRepo.Replace(ctx, item); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
