package commands

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

var ErrUpdateCourierCommandIsNotConstructed = errors.New(
	"UpdateCourierCommand must be created via NewUpdateCourierCommand constructor",
)

type UpdateCourierCommand struct { //nolint:recvcheck //using for validation
	courierID kernel.ID
	name      *string
	phone     *string

	guard guard.ConstructorGuard
}

func NewUpdateCourierCommand(courierID int64, name, phone *string) (UpdateCourierCommand, error) {
	cmd := UpdateCourierCommand{
		guard: guard.NewConstructorGuard(),
	}

	id, idErr := kernel.NewID("courierId", courierID)
	cmd.courierID = id

	var nameErr, phoneErr error
	cmd.name, nameErr = optionalText("name", name)
	if phone != nil && *phone == "" {
		phoneErr = errs.NewValueIsRequiredError("phone")
	}
	cmd.phone = phone

	if err := errors.Join(idErr, nameErr, phoneErr); err != nil {
		return UpdateCourierCommand{}, err
	}

	return cmd, nil
}

func (c UpdateCourierCommand) Validate() error {
	return c.guard.Validate(ErrUpdateCourierCommandIsNotConstructed)
}

func (c UpdateCourierCommand) CourierID() kernel.ID {
	return c.courierID
}

func (c UpdateCourierCommand) Name() (string, bool) {
	return deref(c.name)
}

func (c UpdateCourierCommand) Phone() (string, bool) {
	return deref(c.phone)
}
