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
	ErrGetPizzaQueryIsNotConstructed = errors.New(
		"GetPizzaQuery must be created via NewGetPizzaQuery constructor",
	)
	ErrListPizzasQueryIsNotConstructed = errors.New(
		"ListPizzasQuery must be created via NewListPizzasQuery constructor",
	)
)

type PizzaQueryResponse struct {
	ID    kernel.ID
	Name  string
	Price kernel.Money
}

type pizzaRow struct {
	ID    int64
	Name  string
	Price int64
}

func (r pizzaRow) response() PizzaQueryResponse {
	return PizzaQueryResponse{ID: kernel.ID(r.ID), Name: r.Name, Price: kernel.Money(r.Price)}
}

type GetPizzaQuery struct {
	pizzaID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetPizzaQuery(pizzaID int64) (GetPizzaQuery, error) {
	id, err := kernel.NewID("pizzaId", pizzaID)
	if err != nil {
		return GetPizzaQuery{}, err
	}

	return GetPizzaQuery{pizzaID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetPizzaQuery) Validate() error {
	return q.guard.Validate(ErrGetPizzaQueryIsNotConstructed)
}

func (q GetPizzaQuery) PizzaID() kernel.ID {
	return q.pizzaID
}

type GetPizzaQueryHandler struct {
	db *gorm.DB
}

func NewGetPizzaQueryHandler(db *gorm.DB) GetPizzaQueryHandler {
	return GetPizzaQueryHandler{db: db}
}

func (h GetPizzaQueryHandler) Handle(ctx context.Context, query GetPizzaQuery) (PizzaQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return PizzaQueryResponse{}, err
	}

	var rows []pizzaRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price
		FROM pizzas
		WHERE id = ?
	`, query.PizzaID().Int64()).Scan(&rows).Error
	if err != nil {
		return PizzaQueryResponse{}, pgerrs.Translate(err)
	}

	if len(rows) == 0 {
		return PizzaQueryResponse{}, errs.NewObjectNotFoundError("pizza", query.PizzaID().Int64())
	}

	return rows[0].response(), nil
}

// ListPizzasQuery returns the whole catalog ordered by id.
type ListPizzasQuery struct {
	guard guard.ConstructorGuard
}

func NewListPizzasQuery() ListPizzasQuery {
	return ListPizzasQuery{guard: guard.NewConstructorGuard()}
}

func (q ListPizzasQuery) Validate() error {
	return q.guard.Validate(ErrListPizzasQueryIsNotConstructed)
}

type ListPizzasQueryHandler struct {
	db *gorm.DB
}

func NewListPizzasQueryHandler(db *gorm.DB) ListPizzasQueryHandler {
	return ListPizzasQueryHandler{db: db}
}

func (h ListPizzasQueryHandler) Handle(ctx context.Context, query ListPizzasQuery) ([]PizzaQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []pizzaRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, price
		FROM pizzas
		ORDER BY id
	`).Scan(&rows).Error
	if err != nil {
		return nil, pgerrs.Translate(err)
	}

	result := make([]PizzaQueryResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.response())
	}

	return result, nil
}
