package orderrepo

import (
	"time"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
)

type OrderDTO struct {
	ID         int64 `gorm:"primaryKey;autoIncrement"`
	CustomerID int64 `gorm:"index"`
	CourierID  int64 `gorm:"index"`
	CreatedAt  time.Time
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:         o.ID().Int64(),
		CustomerID: o.CustomerID().Int64(),
		CourierID:  o.CourierID().Int64(),
		CreatedAt:  o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	return order.RestoreOrder(
		kernel.ID(dto.ID),
		kernel.ID(dto.CustomerID),
		kernel.ID(dto.CourierID),
		dto.CreatedAt,
	)
}
