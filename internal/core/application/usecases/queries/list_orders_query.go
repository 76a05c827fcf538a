package queries

import (
	"errors"

	"pizza/internal/pkg/guard"
)

// DefaultListOrdersConcurrency bounds how many order totals are computed at once.
const DefaultListOrdersConcurrency = 4

var ErrListOrdersQueryIsNotConstructed = errors.New(
	"ListOrdersQuery must be created via NewListOrdersQuery constructor",
)

// ListOrdersQuery fetches every order with its total, ordered by id.
type ListOrdersQuery struct {
	guard guard.ConstructorGuard
}

func NewListOrdersQuery() ListOrdersQuery {
	return ListOrdersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}
