package orderitemrepo

import (
	"context"

	"pizza/internal/adapters/out/postgres/pgerrs"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"

	"gorm.io/gorm"
)

// GormOrderItemRepository implements ports.OrderItemRepository. It trusts its
// callers to have resolved the order and pizza; the foreign keys are the only
// check it relies on.
type GormOrderItemRepository struct {
	db      *gorm.DB
	tracker eventTracker
}

type eventTracker interface {
	TrackEvent(event order.Event)
}

func NewGormOrderItemRepository(db *gorm.DB, tracker eventTracker) *GormOrderItemRepository {
	return &GormOrderItemRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormOrderItemRepository) Add(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerrs.Translate(err)
	}

	r.tracker.TrackEvent(order.NewItemAddedEvent(item))
	return nil
}

func (r *GormOrderItemRepository) GetAllForOrder(ctx context.Context, orderID kernel.ID) ([]*order.Item, error) {
	var dtos []OrderItemDTO
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID.Int64()).
		Order("id").
		Find(&dtos).Error; err != nil {
		return nil, pgerrs.Translate(err)
	}

	items := make([]*order.Item, 0, len(dtos))
	for _, dto := range dtos {
		item, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return items, nil
}

// Replace collapses every line of the pair into a single line carrying the
// item's quantity. Both statements run on the repository's handle, so inside
// a unit of work they commit or roll back together.
func (r *GormOrderItemRepository) Replace(ctx context.Context, item *order.Item) error {
	if err := item.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.
		Where("order_id = ? AND pizza_id = ?", item.OrderID().Int64(), item.PizzaID().Int64()).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return pgerrs.Translate(err)
	}

	dto := fromDomain(item)
	if err := db.Create(&dto).Error; err != nil {
		return pgerrs.Translate(err)
	}

	r.tracker.TrackEvent(order.NewItemQuantityChangedEvent(item))
	return nil
}

func (r *GormOrderItemRepository) DeleteAllForOrder(ctx context.Context, orderID kernel.ID) (int64, error) {
	result := r.db.WithContext(ctx).Where("order_id = ?", orderID.Int64()).Delete(&OrderItemDTO{})
	if result.Error != nil {
		return 0, pgerrs.Translate(result.Error)
	}
	return result.RowsAffected, nil
}

func (r *GormOrderItemRepository) Delete(ctx context.Context, orderID, pizzaID kernel.ID) error {
	result := r.db.WithContext(ctx).
		Where("order_id = ? AND pizza_id = ?", orderID.Int64(), pizzaID.Int64()).
		Delete(&OrderItemDTO{})
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}

	if result.RowsAffected > 0 {
		r.tracker.TrackEvent(order.NewItemRemovedEvent(orderID, pizzaID))
	}
	return nil
}
