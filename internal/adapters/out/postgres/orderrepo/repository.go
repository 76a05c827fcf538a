package orderrepo

import (
	"context"
	"errors"

	"pizza/internal/adapters/out/postgres/pgerrs"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/pkg/errs"

	"gorm.io/gorm"
)

type GormOrderRepository struct {
	db      *gorm.DB
	tracker eventTracker
}

type eventTracker interface {
	TrackEvent(event order.Event)
}

func NewGormOrderRepository(db *gorm.DB, tracker eventTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) (*order.Order, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, pgerrs.Translate(err)
	}

	created, err := toDomain(dto)
	if err != nil {
		return nil, err
	}

	r.tracker.TrackEvent(order.NewOrderCreatedEvent(created))
	return created, nil
}

func (r *GormOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.Int64())
		}
		return nil, pgerrs.Translate(err)
	}

	return toDomain(dto)
}

func (r *GormOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, pgerrs.Translate(err)
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// Delete removes the order row. The order's items must already be gone,
// otherwise the foreign key rejects the statement.
func (r *GormOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.Int64()).Delete(&OrderDTO{})
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("order", id.Int64())
	}

	r.tracker.TrackEvent(order.NewOrderDeletedEvent(id))
	return nil
}
