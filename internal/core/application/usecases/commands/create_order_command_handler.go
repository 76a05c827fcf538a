package commands

import (
	"context"
	"time"

	"pizza/internal/core/domain/model/order"
)

// CreateOrderCommandHandler places orders. The creation time is taken from the
// handler's clock, never from the caller.
//
// Example:
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	cmd, _ := NewCreateOrderCommand(1, 2)
//
//	created, err := handler.Handle(ctx, cmd)
//	if errors.Is(err, errs.ErrConstraintViolation) {
//	    // unknown customer or courier
//	}
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	now        func() time.Time
}

// NewCreateOrderCommandHandler creates a handler for order creation operations.
// Requires an OrderUoWFactory for transactional persistence.
func NewCreateOrderCommandHandler(uowFactory OrderUoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		now:        time.Now,
	}
}

// Handle persists a new order and returns it with its assigned id.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) (*order.Order, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newOrder, err := order.NewOrder(cmd.CustomerID(), cmd.CourierID(), h.now())
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

	created, err := uow.OrderRepository().Add(ctx, newOrder)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
