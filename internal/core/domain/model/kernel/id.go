package kernel

import (
	"strconv"

	"pizza/internal/pkg/errs"
)

// ID identifies a persisted customer, courier, pizza or order. Identifiers are
// assigned by the store on insert, so the zero value means "not yet persisted".
type ID int64

// NewID validates a raw identifier received from a caller.
func NewID(paramName string, raw int64) (ID, error) {
	id := ID(raw)
	if err := id.validate(paramName); err != nil {
		return 0, err
	}
	return id, nil
}

// Validate reports an error unless the identifier is positive.
func (id ID) Validate() error {
	return id.validate("id")
}

func (id ID) validate(paramName string) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError(paramName + " must be a positive integer")
	}
	return nil
}

// Int64 returns the raw identifier.
func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) String() string {
	return strconv.FormatInt(int64(id), 10)
}
