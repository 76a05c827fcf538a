// Package queries contains read operations for retrieving system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Queries return read models built with raw SQL; they never go through a unit
// of work.
package queries

import (
	"context"
	"database/sql"
	"time"

	"pizza/internal/adapters/out/postgres/pgerrs"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/domain/services"
	"pizza/internal/pkg/errs"

	"gorm.io/gorm"
)

type orderRow struct {
	ID         int64
	CustomerID int64
	CourierID  int64
	CreatedAt  time.Time
}

type priceRow struct {
	ID    int64
	Price int64
}

// orderReader loads orders and derives their totals from the current catalog.
type orderReader struct {
	db     *gorm.DB
	pricer services.OrderPricer
}

func newOrderReader(db *gorm.DB) orderReader {
	return orderReader{db: db, pricer: services.NewOrderPricer()}
}

// snapshot runs fn against a reader bound to one read-only REPEATABLE READ
// transaction, so every statement fn issues sees the same committed state.
func (r orderReader) snapshot(ctx context.Context, fn func(orderReader) error) error {
	var readErr error
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		readErr = fn(orderReader{db: tx, pricer: r.pricer})
		return readErr
	}, &sql.TxOptions{ReadOnly: true, Isolation: sql.LevelRepeatableRead})
	if readErr != nil {
		return readErr
	}
	if err != nil {
		return pgerrs.Translate(err)
	}

	return nil
}

func (r orderReader) order(ctx context.Context, id kernel.ID) (orderRow, error) {
	var rows []orderRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, courier_id, created_at
		FROM orders
		WHERE id = ?
	`, id.Int64()).Scan(&rows).Error
	if err != nil {
		return orderRow{}, pgerrs.Translate(err)
	}

	if len(rows) == 0 {
		return orderRow{}, errs.NewObjectNotFoundError("order", id.Int64())
	}

	return rows[0], nil
}

func (r orderReader) orders(ctx context.Context) ([]orderRow, error) {
	rows := make([]orderRow, 0)
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, customer_id, courier_id, created_at
		FROM orders
		ORDER BY id
	`).Scan(&rows).Error
	if err != nil {
		return nil, pgerrs.Translate(err)
	}

	return rows, nil
}

func (r orderReader) items(ctx context.Context, orderID kernel.ID) ([]*order.Item, error) {
	rows, err := r.db.WithContext(ctx).Raw(`
		SELECT pizza_id, quantity
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Int64()).Rows()
	if err != nil {
		return nil, pgerrs.Translate(err)
	}
	defer rows.Close()

	items := make([]*order.Item, 0)
	for rows.Next() {
		var pizzaID int64
		var quantity int
		if err = rows.Scan(&pizzaID, &quantity); err != nil {
			return nil, pgerrs.Translate(err)
		}

		item, itemErr := order.NewItem(orderID, kernel.ID(pizzaID), quantity)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, pgerrs.Translate(err)
	}

	return items, nil
}

// prices is the batched form of the catalog lookup (PizzaRepository.Get): one
// statement for all pizzas of an order. Ids without a catalog row are absent
// from the result.
func (r orderReader) prices(ctx context.Context, pizzaIDs []kernel.ID) (map[kernel.ID]kernel.Money, error) {
	prices := make(map[kernel.ID]kernel.Money, len(pizzaIDs))
	if len(pizzaIDs) == 0 {
		return prices, nil
	}

	ids := make([]int64, 0, len(pizzaIDs))
	for _, id := range pizzaIDs {
		ids = append(ids, id.Int64())
	}

	var rows []priceRow
	err := r.db.WithContext(ctx).Raw(`
		SELECT id, price
		FROM pizzas
		WHERE id IN ?
	`, ids).Scan(&rows).Error
	if err != nil {
		return nil, pgerrs.Translate(err)
	}

	for _, row := range rows {
		prices[kernel.ID(row.ID)] = kernel.Money(row.Price)
	}

	return prices, nil
}

// total sums quantity times current price over the order's items.
func (r orderReader) total(ctx context.Context, orderID kernel.ID) (kernel.Money, error) {
	items, err := r.items(ctx, orderID)
	if err != nil {
		return 0, err
	}

	prices, err := r.prices(ctx, r.pricer.PizzaIDs(items))
	if err != nil {
		return 0, err
	}

	return r.pricer.Total(items, prices)
}

func (row orderRow) response(total kernel.Money) GetOrderQueryResponse {
	return GetOrderQueryResponse{
		ID:         kernel.ID(row.ID),
		CustomerID: kernel.ID(row.CustomerID),
		CourierID:  kernel.ID(row.CourierID),
		CreatedAt:  row.CreatedAt,
		Total:      total,
	}
}
