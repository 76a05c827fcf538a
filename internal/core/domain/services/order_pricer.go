package services

import (
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
)

// OrderPricer computes order totals from order lines and the current unit
// price of each pizza.
//
// Business rules:
//   - every line contributes unit price times quantity
//   - duplicate lines for the same pizza are each counted
//   - a line whose pizza has no price contributes nothing
//   - an order without lines totals zero
//
// Example usage:
//
//	pricer := services.NewOrderPricer()
//	total, err := pricer.Total(items, map[kernel.ID]kernel.Money{1: 1200, 2: 900})
//	if err != nil {
//	    // An item was not created via its constructor, or the sum overflowed
//	}
type OrderPricer struct{}

// NewOrderPricer creates a new OrderPricer instance.
func NewOrderPricer() OrderPricer {
	return OrderPricer{}
}

// Total folds the items into a single amount using prices keyed by pizza id.
// It fails with kernel.ErrMoneyOverflow instead of returning a wrapped sum.
func (OrderPricer) Total(items []*order.Item, prices map[kernel.ID]kernel.Money) (kernel.Money, error) {
	var total kernel.Money
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return 0, err
		}
		price, ok := prices[item.PizzaID()]
		if !ok {
			continue
		}
		line, err := price.Times(item.Quantity())
		if err != nil {
			return 0, err
		}
		if total, err = total.Add(line); err != nil {
			return 0, err
		}
	}
	return total, nil
}

// PizzaIDs returns the distinct pizza ids referenced by items, in first-seen order.
func (OrderPricer) PizzaIDs(items []*order.Item) []kernel.ID {
	seen := make(map[kernel.ID]struct{}, len(items))
	ids := make([]kernel.ID, 0, len(items))
	for _, item := range items {
		if _, ok := seen[item.PizzaID()]; ok {
			continue
		}
		seen[item.PizzaID()] = struct{}{}
		ids = append(ids, item.PizzaID())
	}
	return ids
}
