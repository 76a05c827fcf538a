package queries

import (
	"context"
	"errors"

	"pizza/internal/adapters/out/postgres/pgerrs"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"

	"gorm.io/gorm"
)

var (
	ErrGetCustomerQueryIsNotConstructed = errors.New(
		"GetCustomerQuery must be created via NewGetCustomerQuery constructor",
	)
	ErrListCustomersQueryIsNotConstructed = errors.New(
		"ListCustomersQuery must be created via NewListCustomersQuery constructor",
	)
)

type CustomerQueryResponse struct {
	ID      kernel.ID
	Name    string
	Address string
}

type customerRow struct {
	ID      int64
	Name    string
	Address string
}

func (r customerRow) response() CustomerQueryResponse {
	return CustomerQueryResponse{ID: kernel.ID(r.ID), Name: r.Name, Address: r.Address}
}

type GetCustomerQuery struct {
	customerID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetCustomerQuery(customerID int64) (GetCustomerQuery, error) {
	id, err := kernel.NewID("customerId", customerID)
	if err != nil {
		return GetCustomerQuery{}, err
	}

	return GetCustomerQuery{customerID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCustomerQuery) Validate() error {
	return q.guard.Validate(ErrGetCustomerQueryIsNotConstructed)
}

func (q GetCustomerQuery) CustomerID() kernel.ID {
	return q.customerID
}

type GetCustomerQueryHandler struct {
	db *gorm.DB
}

func NewGetCustomerQueryHandler(db *gorm.DB) GetCustomerQueryHandler {
	return GetCustomerQueryHandler{db: db}
}

func (h GetCustomerQueryHandler) Handle(ctx context.Context, query GetCustomerQuery) (CustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CustomerQueryResponse{}, err
	}

	var rows []customerRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, address
		FROM customers
		WHERE id = ?
	`, query.CustomerID().Int64()).Scan(&rows).Error
	if err != nil {
		return CustomerQueryResponse{}, pgerrs.Translate(err)
	}

	if len(rows) == 0 {
		return CustomerQueryResponse{}, errs.NewObjectNotFoundError("customer", query.CustomerID().Int64())
	}

	return rows[0].response(), nil
}

// ListCustomersQuery returns every customer ordered by id.
type ListCustomersQuery struct {
	guard guard.ConstructorGuard
}

func NewListCustomersQuery() ListCustomersQuery {
	return ListCustomersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCustomersQuery) Validate() error {
	return q.guard.Validate(ErrListCustomersQueryIsNotConstructed)
}

type ListCustomersQueryHandler struct {
	db *gorm.DB
}

func NewListCustomersQueryHandler(db *gorm.DB) ListCustomersQueryHandler {
	return ListCustomersQueryHandler{db: db}
}

func (h ListCustomersQueryHandler) Handle(ctx context.Context, query ListCustomersQuery) ([]CustomerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []customerRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, address
		FROM customers
		ORDER BY id
	`).Scan(&rows).Error
	if err != nil {
		return nil, pgerrs.Translate(err)
	}

	result := make([]CustomerQueryResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.response())
	}

	return result, nil
}
