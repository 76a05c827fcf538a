package queries

import (
	"context"

	"gorm.io/gorm"
)

// GetOrderQueryHandler reads a single order and prices it.
type GetOrderQueryHandler struct {
	reader orderReader
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{reader: newOrderReader(db)}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
// Items whose pizza is gone from the catalog add nothing to the total. The
// order row and its total are read from the same snapshot.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetOrderQueryResponse{}, err
	}

	var response GetOrderQueryResponse
	err := h.reader.snapshot(ctx, func(reader orderReader) error {
		row, err := reader.order(ctx, query.OrderID())
		if err != nil {
			return err
		}

		total, err := reader.total(ctx, query.OrderID())
		if err != nil {
			return err
		}

		response = row.response(total)
		return nil
	})
	if err != nil {
		return GetOrderQueryResponse{}, err
	}

	return response, nil
}
