package courier

import (
	"errors"
	"regexp"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

// e164 matches international phone numbers: a plus sign and up to 15 digits.
var e164 = regexp.MustCompile(`^\+[1-9]\d{1,14}$`)

var (
	// ErrCourierIsNotConstructed is returned when using an improperly initialized Courier.
	ErrCourierIsNotConstructed = errors.New("Courier must be created via NewCourier or RestoreCourier constructor")
	// ErrPhoneIsInvalid is returned for phone numbers not in E.164 format.
	ErrPhoneIsInvalid = errs.NewValueIsInvalidError("phone must be in E.164 format, e.g. +36301234567")
)

// Courier delivers orders. Orders reference a courier by id; the courier itself
// holds only contact data.
//
// Business rules:
//   - name must be at least three characters
//   - phone must be an E.164 number
//
// Example usage:
//
//	c, err := courier.NewCourier("Anna", "+36301234567")
//	if err != nil {
//	    // Handle validation error
//	}
type Courier struct {
	id    kernel.ID
	name  string
	phone string
	guard guard.ConstructorGuard
}

// NewCourier creates a courier that has not been persisted yet. All invalid
// fields are reported together.
func NewCourier(name, phone string) (*Courier, error) {
	c := &Courier{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		c.setName(name),
		c.setPhone(phone),
	); err != nil {
		return nil, err
	}

	return c, nil
}

// RestoreCourier reconstructs a Courier from persistent storage.
func RestoreCourier(id kernel.ID, name, phone string) (*Courier, error) {
	c, err := NewCourier(name, phone)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}
	c.id = id
	return c, nil
}

// Validate ensures the courier was created through a constructor.
func (c *Courier) Validate() error {
	if c == nil {
		return ErrCourierIsNotConstructed
	}
	return c.guard.Validate(ErrCourierIsNotConstructed)
}

func (c *Courier) ID() kernel.ID {
	return c.id
}

func (c *Courier) Name() string {
	return c.name
}

func (c *Courier) Phone() string {
	return c.phone
}

func (c *Courier) Rename(name string) error {
	return c.setName(name)
}

func (c *Courier) ChangePhone(phone string) error {
	return c.setPhone(phone)
}

func (c *Courier) setName(name string) error {
	v, err := kernel.NewText("name", name)
	if err != nil {
		return err
	}
	c.name = v
	return nil
}

func (c *Courier) setPhone(phone string) error {
	if phone == "" {
		return errs.NewValueIsRequiredError("phone")
	}
	if !e164.MatchString(phone) {
		return ErrPhoneIsInvalid
	}
	c.phone = phone
	return nil
}
