// Package servers provides primitives to interact with the openapi HTTP API.
package servers

import (
	"time"
)

// Courier defines model for Courier.
type Courier struct {
	Id    int64  `json:"id"`
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// CourierUpdate defines model for CourierUpdate.
type CourierUpdate struct {
	Name  *string `json:"name,omitempty"`
	Phone *string `json:"phone,omitempty"`
}

// Customer defines model for Customer.
type Customer struct {
	Address string `json:"address"`
	Id      int64  `json:"id"`
	Name    string `json:"name"`
}

// CustomerUpdate defines model for CustomerUpdate.
type CustomerUpdate struct {
	Address *string `json:"address,omitempty"`
	Name    *string `json:"name,omitempty"`
}

// Error defines model for Error.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// NewCourier defines model for NewCourier.
type NewCourier struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
}

// NewCustomer defines model for NewCustomer.
type NewCustomer struct {
	Address string `json:"address"`
	Name    string `json:"name"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	CourierId  int64 `json:"courierId"`
	CustomerId int64 `json:"customerId"`
}

// NewOrderItem defines model for NewOrderItem.
type NewOrderItem struct {
	PizzaId  int64 `json:"pizzaId"`
	Quantity int   `json:"quantity"`
}

// NewPizza defines model for NewPizza.
type NewPizza struct {
	Name  string `json:"name"`
	Price int64  `json:"price"`
}

// Order defines model for Order.
type Order struct {
	CourierId  int64     `json:"courierId"`
	CreatedAt  time.Time `json:"createdAt"`
	CustomerId int64     `json:"customerId"`
	Id         int64     `json:"id"`

	// Total Sum of quantity times current unit price over the order's items
	Total int64 `json:"total"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	OrderId  int64 `json:"orderId"`
	PizzaId  int64 `json:"pizzaId"`
	Quantity int   `json:"quantity"`
}

// OrderItemQuantity defines model for OrderItemQuantity.
type OrderItemQuantity struct {
	Quantity int `json:"quantity"`
}

// Pizza defines model for Pizza.
type Pizza struct {
	Id   int64  `json:"id"`
	Name string `json:"name"`

	// Price Unit price in minor currency units
	Price int64 `json:"price"`
}

// PizzaUpdate defines model for PizzaUpdate.
type PizzaUpdate struct {
	Name  *string `json:"name,omitempty"`
	Price *int64  `json:"price,omitempty"`
}

// CourierId defines model for CourierId.
type CourierId = int64

// CustomerId defines model for CustomerId.
type CustomerId = int64

// OrderId defines model for OrderId.
type OrderId = int64

// PizzaId defines model for PizzaId.
type PizzaId = int64

// CreateCourierJSONRequestBody defines body for CreateCourier for application/json ContentType.
type CreateCourierJSONRequestBody = NewCourier

// UpdateCourierJSONRequestBody defines body for UpdateCourier for application/json ContentType.
type UpdateCourierJSONRequestBody = CourierUpdate

// CreateCustomerJSONRequestBody defines body for CreateCustomer for application/json ContentType.
type CreateCustomerJSONRequestBody = NewCustomer

// UpdateCustomerJSONRequestBody defines body for UpdateCustomer for application/json ContentType.
type UpdateCustomerJSONRequestBody = CustomerUpdate

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// CreateOrderItemJSONRequestBody defines body for CreateOrderItem for application/json ContentType.
type CreateOrderItemJSONRequestBody = NewOrderItem

// UpdateOrderItemJSONRequestBody defines body for UpdateOrderItem for application/json ContentType.
type UpdateOrderItemJSONRequestBody = OrderItemQuantity

// CreatePizzaJSONRequestBody defines body for CreatePizza for application/json ContentType.
type CreatePizzaJSONRequestBody = NewPizza

// UpdatePizzaJSONRequestBody defines body for UpdatePizza for application/json ContentType.
type UpdatePizzaJSONRequestBody = PizzaUpdate
