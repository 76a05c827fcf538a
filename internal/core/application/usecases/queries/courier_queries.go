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
	ErrGetCourierQueryIsNotConstructed = errors.New(
		"GetCourierQuery must be created via NewGetCourierQuery constructor",
	)
	ErrListCouriersQueryIsNotConstructed = errors.New(
		"ListCouriersQuery must be created via NewListCouriersQuery constructor",
	)
)

type CourierQueryResponse struct {
	ID    kernel.ID
	Name  string
	Phone string
}

type courierRow struct {
	ID    int64
	Name  string
	Phone string
}

func (r courierRow) response() CourierQueryResponse {
	return CourierQueryResponse{ID: kernel.ID(r.ID), Name: r.Name, Phone: r.Phone}
}

type GetCourierQuery struct {
	courierID kernel.ID

	guard guard.ConstructorGuard
}

func NewGetCourierQuery(courierID int64) (GetCourierQuery, error) {
	id, err := kernel.NewID("courierId", courierID)
	if err != nil {
		return GetCourierQuery{}, err
	}

	return GetCourierQuery{courierID: id, guard: guard.NewConstructorGuard()}, nil
}

func (q GetCourierQuery) Validate() error {
	return q.guard.Validate(ErrGetCourierQueryIsNotConstructed)
}

func (q GetCourierQuery) CourierID() kernel.ID {
	return q.courierID
}

type GetCourierQueryHandler struct {
	db *gorm.DB
}

func NewGetCourierQueryHandler(db *gorm.DB) GetCourierQueryHandler {
	return GetCourierQueryHandler{db: db}
}

func (h GetCourierQueryHandler) Handle(ctx context.Context, query GetCourierQuery) (CourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return CourierQueryResponse{}, err
	}

	var rows []courierRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, phone
		FROM couriers
		WHERE id = ?
	`, query.CourierID().Int64()).Scan(&rows).Error
	if err != nil {
		return CourierQueryResponse{}, pgerrs.Translate(err)
	}

	if len(rows) == 0 {
		return CourierQueryResponse{}, errs.NewObjectNotFoundError("courier", query.CourierID().Int64())
	}

	return rows[0].response(), nil
}

// ListCouriersQuery returns every courier ordered by id.
type ListCouriersQuery struct {
	guard guard.ConstructorGuard
}

func NewListCouriersQuery() ListCouriersQuery {
	return ListCouriersQuery{guard: guard.NewConstructorGuard()}
}

func (q ListCouriersQuery) Validate() error {
	return q.guard.Validate(ErrListCouriersQueryIsNotConstructed)
}

type ListCouriersQueryHandler struct {
	db *gorm.DB
}

func NewListCouriersQueryHandler(db *gorm.DB) ListCouriersQueryHandler {
	return ListCouriersQueryHandler{db: db}
}

func (h ListCouriersQueryHandler) Handle(ctx context.Context, query ListCouriersQuery) ([]CourierQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var rows []courierRow
	err := h.db.WithContext(ctx).Raw(`
		SELECT id, name, phone
		FROM couriers
		ORDER BY id
	`).Scan(&rows).Error
	if err != nil {
		return nil, pgerrs.Translate(err)
	}

	result := make([]CourierQueryResponse, 0, len(rows))
	for _, row := range rows {
		result = append(result, row.response())
	}

	return result, nil
}
