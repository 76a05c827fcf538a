package queries

import (
	"context"

	"pizza/internal/core/domain/model/kernel"

	"golang.org/x/sync/errgroup"
	"gorm.io/gorm"
)

// ListOrdersQueryHandler prices every order. Totals are computed concurrently,
// at most concurrency at a time; each goroutine writes only its own slot of
// the result. The first failure cancels the remaining reads.
type ListOrdersQueryHandler struct {
	reader      orderReader
	concurrency int
}

func NewListOrdersQueryHandler(db *gorm.DB, concurrency int) ListOrdersQueryHandler {
	if concurrency <= 0 {
		concurrency = DefaultListOrdersConcurrency
	}
	return ListOrdersQueryHandler{reader: newOrderReader(db), concurrency: concurrency}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.reader.orders(ctx)
	if err != nil {
		return nil, err
	}

	result := make([]GetOrderQueryResponse, len(rows))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(h.concurrency)
	for i, row := range rows {
		g.Go(func() error {
			total, totalErr := h.reader.total(gctx, kernel.ID(row.ID))
			if totalErr != nil {
				return totalErr
			}
			result[i] = row.response(total)
			return nil
		})
	}

	if err = g.Wait(); err != nil {
		return nil, err
	}

	return result, nil
}
