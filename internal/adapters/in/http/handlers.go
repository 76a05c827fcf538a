package http

import (
	"context"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/application/usecases/queries"
	"pizza/internal/core/domain/model/courier"
	"pizza/internal/core/domain/model/customer"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/domain/model/pizza"
)

// Handler runs a use case that produces a result.
type Handler[In, Out any] interface {
	Handle(ctx context.Context, in In) (Out, error)
}

// ExecHandler runs a use case that produces only an error.
type ExecHandler[In any] interface {
	Handle(ctx context.Context, in In) error
}

// Handlers lists the use cases served over HTTP.
type Handlers struct {
	CreateOrder             Handler[commands.CreateOrderCommand, *order.Order]
	DeleteOrder             ExecHandler[commands.DeleteOrderCommand]
	CreateOrderItem         Handler[commands.CreateOrderItemCommand, *order.Item]
	UpdateOrderItemQuantity ExecHandler[commands.UpdateOrderItemQuantityCommand]
	DeleteOrderItem         ExecHandler[commands.DeleteOrderItemCommand]
	GetOrder                Handler[queries.GetOrderQuery, queries.GetOrderQueryResponse]
	ListOrders              Handler[queries.ListOrdersQuery, []queries.GetOrderQueryResponse]
	GetOrderItems           Handler[queries.GetOrderItemsQuery, []queries.GetOrderItemsQueryResponse]

	CreatePizza Handler[commands.CreatePizzaCommand, *pizza.Pizza]
	UpdatePizza ExecHandler[commands.UpdatePizzaCommand]
	DeletePizza ExecHandler[commands.DeletePizzaCommand]
	GetPizza    Handler[queries.GetPizzaQuery, queries.PizzaQueryResponse]
	ListPizzas  Handler[queries.ListPizzasQuery, []queries.PizzaQueryResponse]

	CreateCustomer Handler[commands.CreateCustomerCommand, *customer.Customer]
	UpdateCustomer ExecHandler[commands.UpdateCustomerCommand]
	DeleteCustomer ExecHandler[commands.DeleteCustomerCommand]
	GetCustomer    Handler[queries.GetCustomerQuery, queries.CustomerQueryResponse]
	ListCustomers  Handler[queries.ListCustomersQuery, []queries.CustomerQueryResponse]

	CreateCourier Handler[commands.CreateCourierCommand, *courier.Courier]
	UpdateCourier ExecHandler[commands.UpdateCourierCommand]
	DeleteCourier ExecHandler[commands.DeleteCourierCommand]
	GetCourier    Handler[queries.GetCourierQuery, queries.CourierQueryResponse]
	ListCouriers  Handler[queries.ListCouriersQuery, []queries.CourierQueryResponse]
}
