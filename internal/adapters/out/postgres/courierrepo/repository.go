package courierrepo

import (
	"context"
	"errors"

	"pizza/internal/adapters/out/postgres/pgerrs"
	"pizza/internal/core/domain/model/courier"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCourierRepository implements CourierRepository using GORM.
type GormCourierRepository struct {
	db *gorm.DB
}

// NewGormCourierRepository creates a new GORM courier repository.
func NewGormCourierRepository(db *gorm.DB) *GormCourierRepository {
	return &GormCourierRepository{db: db}
}

// Add saves a new courier and returns it with its assigned id.
func (r *GormCourierRepository) Add(ctx context.Context, aggregate *courier.Courier) (*courier.Courier, error) {
	if err := aggregate.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(aggregate)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, pgerrs.Translate(err)
	}

	return toDomain(dto)
}

// Update saves an existing courier to the database.
func (r *GormCourierRepository) Update(ctx context.Context, aggregate *courier.Courier) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).
		Model(&CourierDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "phone": dto.Phone})
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", dto.ID)
	}
	return nil
}

// Get retrieves a courier by ID.
func (r *GormCourierRepository) Get(ctx context.Context, id kernel.ID) (*courier.Courier, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CourierDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("courier", id.Int64())
		}
		return nil, pgerrs.Translate(err)
	}

	return toDomain(dto)
}

// GetAll retrieves every courier ordered by id.
func (r *GormCourierRepository) GetAll(ctx context.Context) ([]*courier.Courier, error) {
	var dtos []CourierDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, pgerrs.Translate(err)
	}

	couriers := make([]*courier.Courier, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		couriers = append(couriers, c)
	}

	return couriers, nil
}

// Delete removes a courier. Orders delivered by the courier block the delete
// with errs.ConstraintViolationError.
func (r *GormCourierRepository) Delete(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.Int64()).Delete(&CourierDTO{})
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("courier", id.Int64())
	}
	return nil
}
