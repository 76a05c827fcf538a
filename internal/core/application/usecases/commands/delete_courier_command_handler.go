package commands

import (
	"context"
)

// DeleteCourierCommandHandler fails with errs.ConstraintViolationError while
// orders are still assigned to the courier.
type DeleteCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewDeleteCourierCommandHandler(uowFactory CourierUoWFactory) DeleteCourierCommandHandler {
	return DeleteCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *DeleteCourierCommandHandler) Handle(ctx context.Context, cmd DeleteCourierCommand) error {
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

	if err := uow.CourierRepository().Delete(ctx, cmd.CourierID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
