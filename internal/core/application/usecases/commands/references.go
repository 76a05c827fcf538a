package commands

import (
	"errors"

	"pizza/internal/pkg/errs"
)

// asReference turns a missing-object error of a lookup into a reference error
// naming what the caller pointed at. Other errors are returned unchanged.
func asReference(kind string, id any, err error) error {
	if errors.Is(err, errs.ErrObjectNotFound) {
		return errs.NewReferenceNotFoundErrorWithCause(kind, id, err)
	}
	return err
}
