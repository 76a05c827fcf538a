package pizzarepo

import (
	"context"
	"errors"

	"pizza/internal/adapters/out/postgres/pgerrs"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/pizza"
	"pizza/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPizzaRepository implements ports.PizzaRepository using GORM.
type GormPizzaRepository struct {
	db *gorm.DB
}

func NewGormPizzaRepository(db *gorm.DB) *GormPizzaRepository {
	return &GormPizzaRepository{db: db}
}

// Add inserts the pizza and returns it with the id assigned by the sequence.
func (r *GormPizzaRepository) Add(ctx context.Context, p *pizza.Pizza) (*pizza.Pizza, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}

	dto := fromDomain(p)
	dto.ID = 0
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return nil, pgerrs.Translate(err)
	}

	return toDomain(dto)
}

func (r *GormPizzaRepository) Update(ctx context.Context, p *pizza.Pizza) error {
	if err := p.Validate(); err != nil {
		return err
	}

	dto := fromDomain(p)
	result := r.db.WithContext(ctx).
		Model(&PizzaDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{"name": dto.Name, "price": dto.Price})
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pizza", dto.ID)
	}
	return nil
}

func (r *GormPizzaRepository) Get(ctx context.Context, id kernel.ID) (*pizza.Pizza, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PizzaDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Int64()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("pizza", id.Int64())
		}
		return nil, pgerrs.Translate(err)
	}

	return toDomain(dto)
}

func (r *GormPizzaRepository) GetAll(ctx context.Context) ([]*pizza.Pizza, error) {
	var dtos []PizzaDTO
	if err := r.db.WithContext(ctx).Order("id").Find(&dtos).Error; err != nil {
		return nil, pgerrs.Translate(err)
	}

	pizzas := make([]*pizza.Pizza, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		pizzas = append(pizzas, p)
	}

	return pizzas, nil
}

// Delete removes the pizza. Order items referencing it make the store reject
// the statement, which surfaces as errs.ConstraintViolationError.
func (r *GormPizzaRepository) Delete(ctx context.Context, id kernel.ID) error {
	result := r.db.WithContext(ctx).Where("id = ?", id.Int64()).Delete(&PizzaDTO{})
	if result.Error != nil {
		return pgerrs.Translate(result.Error)
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("pizza", id.Int64())
	}
	return nil
}
