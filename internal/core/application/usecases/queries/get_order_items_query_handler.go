package queries

import (
	"context"

	"gorm.io/gorm"
)

type GetOrderItemsQueryHandler struct {
	reader orderReader
}

func NewGetOrderItemsQueryHandler(db *gorm.DB) GetOrderItemsQueryHandler {
	return GetOrderItemsQueryHandler{reader: newOrderReader(db)}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist and an
// empty slice for an order without lines.
func (h GetOrderItemsQueryHandler) Handle(
	ctx context.Context,
	query GetOrderItemsQuery,
) ([]GetOrderItemsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	if _, err := h.reader.order(ctx, query.OrderID()); err != nil {
		return nil, err
	}

	items, err := h.reader.items(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	result := make([]GetOrderItemsQueryResponse, 0, len(items))
	for _, item := range items {
		result = append(result, GetOrderItemsQueryResponse{
			OrderID:  item.OrderID(),
			PizzaID:  item.PizzaID(),
			Quantity: item.Quantity(),
		})
	}

	return result, nil
}
