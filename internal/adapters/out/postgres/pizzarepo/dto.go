package pizzarepo

import (
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/pizza"
)

type PizzaDTO struct {
	ID    int64 `gorm:"primaryKey;autoIncrement"`
	Name  string
	Price int64
}

func (PizzaDTO) TableName() string {
	return "pizzas"
}

func fromDomain(p *pizza.Pizza) PizzaDTO {
	return PizzaDTO{
		ID:    p.ID().Int64(),
		Name:  p.Name(),
		Price: p.Price().Int64(),
	}
}

func toDomain(dto PizzaDTO) (*pizza.Pizza, error) {
	return pizza.RestorePizza(kernel.ID(dto.ID), dto.Name, dto.Price)
}
