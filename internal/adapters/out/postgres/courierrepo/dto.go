package courierrepo

import (
	"pizza/internal/core/domain/model/courier"
	"pizza/internal/core/domain/model/kernel"
)

// CourierDTO is the GORM row of the couriers table.
type CourierDTO struct {
	ID    int64 `gorm:"primaryKey;autoIncrement"`
	Name  string
	Phone string
}

func (CourierDTO) TableName() string {
	return "couriers"
}

func fromDomain(c *courier.Courier) CourierDTO {
	return CourierDTO{
		ID:    c.ID().Int64(),
		Name:  c.Name(),
		Phone: c.Phone(),
	}
}

func toDomain(dto CourierDTO) (*courier.Courier, error) {
	return courier.RestoreCourier(kernel.ID(dto.ID), dto.Name, dto.Phone)
}
