package customerrepo

import (
	"context"
	"errors"

	"pizza/internal/adapters/out/postgres/pgerrs"
	"pizza/internal/core/domain/model/customer"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCustomerRepository implements ports.CustomerRepository using GORM.
type GormCustomerRepository struct {
	db *gorm.DB
}

func NewGormCustomerRepository(db *gorm.DB) *GormCustomerRepository {
	return &GormCustomerRepository{db: db}
}

func (r *GormCustomerRepository) Add(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(c)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, pgerrs.Translate(err)
	}

	return toDomain(dto)
}

func (r *GormCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	if err := c.Validate(); err != nil {
		return err
	}

	dto := fromDomain(c)
	result := r.db.WithContext(ctx).
		Model(&CustomerDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "address": dto.Address})
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", dto.ID)
	}
	return nil
}

func (r *GormCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CustomerDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("customer", id.Int64())
		}
		return nil, pgerrs.Translate(err)
	}

	return toDomain(dto)
}

func (r *GormCustomerRepository) GetAll(ctx context.Context) ([]*customer.Customer, error) {
	var dtos []CustomerDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, pgerrs.Translate(err)
	}

	customers := make([]*customer.Customer, 0, len(dtos))
	for _, dto := range dtos {
		c, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}

	return customers, nil
}

func (r *GormCustomerRepository) Delete(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.Int64()).Delete(&CustomerDTO{})
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("customer", id.Int64())
	}
	return nil
}
