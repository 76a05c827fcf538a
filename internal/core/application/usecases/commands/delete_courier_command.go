package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

var ErrDeleteCourierCommandIsNotConstructed = errors.New(
	"DeleteCourierCommand must be created via NewDeleteCourierCommand constructor",
)

type DeleteCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.ID

	guard guard.ConstructorGuard
}

func NewDeleteCourierCommand(courierID int64) (DeleteCourierCommand, error) {
	id, err := kernel.NewID("courierId", courierID)
	if err != nil {
		return DeleteCourierCommand{}, err
	}

	return DeleteCourierCommand{courierID: id, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteCourierCommand) Validate() error {
	return c.guard.Validate(ErrDeleteCourierCommandIsNotConstructed)
}

func (c DeleteCourierCommand) CourierID() kernel.ID {
	return c.courierID
}
