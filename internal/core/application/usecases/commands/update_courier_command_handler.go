package commands

import (
	"context"
)

type UpdateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewUpdateCourierCommandHandler(uowFactory CourierUoWFactory) UpdateCourierCommandHandler {
	return UpdateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

func (h *UpdateCourierCommandHandler) Handle(ctx context.Context, cmd UpdateCourierCommand) error {
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

	repo := uow.CourierRepository()
	c, err := repo.Get(ctx, cmd.CourierID())
	if err != nil {
		return err
	}

	if name, ok := cmd.Name(); ok {
		if err = c.Rename(name); err != nil {
			return err
		}
	}

	if phone, ok := cmd.Phone(); ok {
		if err = c.ChangePhone(phone); err != nil {
			return err
		}
	}

	if err = repo.Update(ctx, c); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
