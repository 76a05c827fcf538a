package order

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"
)

const (
	// MinQuantity and MaxQuantity bound the number of pizzas on one line.
	MinQuantity = 1
	MaxQuantity = 20
)

var ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")

// Item is one priced line of an order: a pizza and how many of it.
//
// The (order, pizza) pair is not unique: adding the same pizza twice produces
// two lines. Totals fold over every line, so duplicates are priced correctly.
type Item struct {
	orderID  kernel.ID
	pizzaID  kernel.ID
	quantity int

	isConstructed bool
}

// NewItem validates and creates an order line. It does not check that the order
// or pizza exist; that is the caller's job before writing.
func NewItem(orderID, pizzaID kernel.ID, quantity int) (*Item, error) {
	item := &Item{isConstructed: true}

	if err := errors.Join(
		item.setOrderID(orderID),
		item.setPizzaID(pizzaID),
		item.setQuantity(quantity),
	); err != nil {
		return nil, err
	}

	return item, nil
}

func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}
	return nil
}

func (i *Item) OrderID() kernel.ID {
	return i.orderID
}

func (i *Item) PizzaID() kernel.ID {
	return i.pizzaID
}

func (i *Item) Quantity() int {
	return i.quantity
}

// Matches reports whether the line belongs to the given order and pizza.
func (i *Item) Matches(orderID, pizzaID kernel.ID) bool {
	return i.orderID == orderID && i.pizzaID == pizzaID
}

// ChangeQuantity replaces the quantity of the line.
func (i *Item) ChangeQuantity(quantity int) error {
	return i.setQuantity(quantity)
}

// FindItem returns the first line of items for the given pizza.
func FindItem(items []*Item, orderID, pizzaID kernel.ID) (*Item, bool) {
	for _, item := range items {
		if item.Matches(orderID, pizzaID) {
			return item, true
		}
	}
	return nil, false
}

func (i *Item) setOrderID(id kernel.ID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("orderId must be a positive integer")
	}
	i.orderID = id
	return nil
}

func (i *Item) setPizzaID(id kernel.ID) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("pizzaId must be a positive integer")
	}
	i.pizzaID = id
	return nil
}

func (i *Item) setQuantity(quantity int) error {
	if quantity < MinQuantity || quantity > MaxQuantity {
		return errs.NewValueIsOutOfRangeError("quantity", quantity, MinQuantity, MaxQuantity)
	}
	i.quantity = quantity
	return nil
}
