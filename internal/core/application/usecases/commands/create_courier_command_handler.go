package commands

import (
	"context"

	"pizza/internal/core/domain/model/courier"
)

// CreateCourierCommandHandler registers couriers.
//
// Example:
//
//	handler := NewCreateCourierCommandHandler(uowFactory)
//	cmd, _ := NewCreateCourierCommand("Anna", "+36301234567")
//
//	created, err := handler.Handle(ctx, cmd)
//	if err != nil {
//	    log.Printf("Failed to create courier: %v", err)
//	}
type CreateCourierCommandHandler struct {
	uowFactory CourierUoWFactory
}

func NewCreateCourierCommandHandler(uowFactory CourierUoWFactory) CreateCourierCommandHandler {
	return CreateCourierCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle returns the courier as stored, with its id.
func (h *CreateCourierCommandHandler) Handle(ctx context.Context, cmd CreateCourierCommand) (*courier.Courier, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	newCourier, err := courier.NewCourier(cmd.Name(), cmd.Phone())
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

	created, err := uow.CourierRepository().Add(ctx, newCourier)
	if err != nil {
		return nil, err
	}

	if err = uow.Commit(ctx); err != nil {
		return nil, err
	}

	return created, nil
}
