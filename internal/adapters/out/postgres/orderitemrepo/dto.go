package orderitemrepo

import (
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
)

// OrderItemDTO is one row of order_items. ID is a surrogate key; the
// (order, pizza) pair may repeat.
type OrderItemDTO struct {
	ID       int64 `gorm:"primaryKey;autoIncrement"`
	OrderID  int64
	PizzaID  int64
	Quantity int
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(item *order.Item) OrderItemDTO {
	return OrderItemDTO{
		OrderID:  item.OrderID().Int64(),
		PizzaID:  item.PizzaID().Int64(),
		Quantity: item.Quantity(),
	}
}

func toDomain(dto OrderItemDTO) (*order.Item, error) {
	return order.NewItem(kernel.ID(dto.OrderID), kernel.ID(dto.PizzaID), dto.Quantity)
}
