package order

import (
	"errors"
	"time"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root for an order's line items. It records who ordered,
// who delivers and when the order was placed; it never stores a total.
//
// Order follows these invariants:
//   - customer and courier ids are positive (their existence is enforced by the store)
//   - the creation time is assigned by the server, never by the caller
//   - a persisted order has a store-assigned id
type Order struct {
	// id is zero until the store assigns one
	id kernel.ID

	customerID kernel.ID
	courierID  kernel.ID

	// createdAt is the server time the order was placed, in UTC
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an order placed at the given time. The id is assigned when
// the order is persisted.
//
// Example:
//
//	o, err := order.NewOrder(customerID, courierID, time.Now())
//	if err != nil {
//	    // Handle validation error
//	}
//	o, err = repo.Add(ctx, o) // o.ID() is now set
func NewOrder(customerID, courierID kernel.ID, createdAt time.Time) (*Order, error) {
	o := &Order{isConstructed: true}

	if err := errors.Join(
		o.setCustomerID(customerID),
		o.setCourierID(courierID),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder rebuilds a persisted order.
func RestoreOrder(id, customerID, courierID kernel.ID, createdAt time.Time) (*Order, error) {
	o, err := NewOrder(customerID, courierID, createdAt)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}
	o.id = id
	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

func (o *Order) ID() kernel.ID {
	return o.id
}

func (o *Order) CustomerID() kernel.ID {
	return o.customerID
}

func (o *Order) CourierID() kernel.ID {
	return o.courierID
}

func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

func (o *Order) setCustomerID(id kernel.ID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("customerId must be a positive integer")
	}
	o.customerID = id
	return nil
}

func (o *Order) setCourierID(id kernel.ID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("courierId must be a positive integer")
	}
	o.courierID = id
	return nil
}

func (o *Order) setCreatedAt(t time.Time) error {
	if t.IsZero() {
		return errs.NewValueIsRequiredError("createdAt")
	}
	o.createdAt = t.UTC()
	return nil
}
