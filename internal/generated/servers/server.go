package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List couriers
	// (GET /api/v1/couriers)
	ListCouriers(ctx echo.Context) error

	// Register a courier
	// (POST /api/v1/couriers)
	CreateCourier(ctx echo.Context) error

	// Remove a courier without orders
	// (DELETE /api/v1/couriers/{courierId})
	DeleteCourier(ctx echo.Context, courierId CourierId) error

	// Get a courier
	// (GET /api/v1/couriers/{courierId})
	GetCourier(ctx echo.Context, courierId CourierId) error

	// Change the supplied fields of a courier
	// (PUT /api/v1/couriers/{courierId})
	UpdateCourier(ctx echo.Context, courierId CourierId) error

	// List customers
	// (GET /api/v1/customers)
	ListCustomers(ctx echo.Context) error

	// Register a customer
	// (POST /api/v1/customers)
	CreateCustomer(ctx echo.Context) error

	// Remove a customer without orders
	// (DELETE /api/v1/customers/{customerId})
	DeleteCustomer(ctx echo.Context, customerId CustomerId) error

	// Get a customer
	// (GET /api/v1/customers/{customerId})
	GetCustomer(ctx echo.Context, customerId CustomerId) error

	// Change the supplied fields of a customer
	// (PUT /api/v1/customers/{customerId})
	UpdateCustomer(ctx echo.Context, customerId CustomerId) error

	// List orders with their current totals
	// (GET /api/v1/orders)
	ListOrders(ctx echo.Context) error

	// Place an order
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error

	// Delete an order and all of its items
	// (DELETE /api/v1/orders/{orderId})
	DeleteOrder(ctx echo.Context, orderId OrderId) error

	// Get an order with its current total
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId OrderId) error

	// List the items of an order
	// (GET /api/v1/orders/{orderId}/items)
	ListOrderItems(ctx echo.Context, orderId OrderId) error

	// Add a pizza to an order
	// (POST /api/v1/orders/{orderId}/items)
	CreateOrderItem(ctx echo.Context, orderId OrderId) error

	// Remove a pizza from an order
	// (DELETE /api/v1/orders/{orderId}/items/{pizzaId})
	DeleteOrderItem(ctx echo.Context, orderId OrderId, pizzaId PizzaId) error

	// Set the quantity of a pizza on an order
	// (PUT /api/v1/orders/{orderId}/items/{pizzaId})
	UpdateOrderItem(ctx echo.Context, orderId OrderId, pizzaId PizzaId) error

	// List pizzas
	// (GET /api/v1/pizzas)
	ListPizzas(ctx echo.Context) error

	// Add a pizza to the catalog
	// (POST /api/v1/pizzas)
	CreatePizza(ctx echo.Context) error

	// Remove a pizza that no order item references
	// (DELETE /api/v1/pizzas/{pizzaId})
	DeletePizza(ctx echo.Context, pizzaId PizzaId) error

	// Get a pizza
	// (GET /api/v1/pizzas/{pizzaId})
	GetPizza(ctx echo.Context, pizzaId PizzaId) error

	// Change the supplied fields of a pizza
	// (PUT /api/v1/pizzas/{pizzaId})
	UpdatePizza(ctx echo.Context, pizzaId PizzaId) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// ListCouriers converts echo context to params.
func (w *ServerInterfaceWrapper) ListCouriers(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListCouriers(ctx)
	return err
}

// CreateCourier converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCourier(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateCourier(ctx)
	return err
}

// DeleteCourier converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteCourier(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "courierId" -------------
	var courierId CourierId

	err = runtime.BindStyledParameterWithOptions("simple", "courierId", ctx.Param("courierId"), &courierId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter courierId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteCourier(ctx, courierId)
	return err
}

// GetCourier converts echo context to params.
func (w *ServerInterfaceWrapper) GetCourier(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "courierId" -------------
	var courierId CourierId

	err = runtime.BindStyledParameterWithOptions("simple", "courierId", ctx.Param("courierId"), &courierId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter courierId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCourier(ctx, courierId)
	return err
}

// UpdateCourier converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCourier(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "courierId" -------------
	var courierId CourierId

	err = runtime.BindStyledParameterWithOptions("simple", "courierId", ctx.Param("courierId"), &courierId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter courierId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateCourier(ctx, courierId)
	return err
}

// ListCustomers converts echo context to params.
func (w *ServerInterfaceWrapper) ListCustomers(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListCustomers(ctx)
	return err
}

// CreateCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) CreateCustomer(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateCustomer(ctx)
	return err
}

// DeleteCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteCustomer(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "customerId" -------------
	var customerId CustomerId

	err = runtime.BindStyledParameterWithOptions("simple", "customerId", ctx.Param("customerId"), &customerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteCustomer(ctx, customerId)
	return err
}

// GetCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) GetCustomer(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "customerId" -------------
	var customerId CustomerId

	err = runtime.BindStyledParameterWithOptions("simple", "customerId", ctx.Param("customerId"), &customerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetCustomer(ctx, customerId)
	return err
}

// UpdateCustomer converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateCustomer(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "customerId" -------------
	var customerId CustomerId

	err = runtime.BindStyledParameterWithOptions("simple", "customerId", ctx.Param("customerId"), &customerId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter customerId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateCustomer(ctx, customerId)
	return err
}

// ListOrders converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrders(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrders(ctx)
	return err
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrder(ctx)
	return err
}

// DeleteOrder converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOrder(ctx, orderId)
	return err
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetOrder(ctx, orderId)
	return err
}

// ListOrderItems converts echo context to params.
func (w *ServerInterfaceWrapper) ListOrderItems(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListOrderItems(ctx, orderId)
	return err
}

// CreateOrderItem converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrderItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreateOrderItem(ctx, orderId)
	return err
}

// DeleteOrderItem converts echo context to params.
func (w *ServerInterfaceWrapper) DeleteOrderItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// ------------- Path parameter "pizzaId" -------------
	var pizzaId PizzaId

	err = runtime.BindStyledParameterWithOptions("simple", "pizzaId", ctx.Param("pizzaId"), &pizzaId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter pizzaId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeleteOrderItem(ctx, orderId, pizzaId)
	return err
}

// UpdateOrderItem converts echo context to params.
func (w *ServerInterfaceWrapper) UpdateOrderItem(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "orderId" -------------
	var orderId OrderId

	err = runtime.BindStyledParameterWithOptions("simple", "orderId", ctx.Param("orderId"), &orderId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter orderId: %s", err))
	}

	// ------------- Path parameter "pizzaId" -------------
	var pizzaId PizzaId

	err = runtime.BindStyledParameterWithOptions("simple", "pizzaId", ctx.Param("pizzaId"), &pizzaId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter pizzaId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdateOrderItem(ctx, orderId, pizzaId)
	return err
}

// ListPizzas converts echo context to params.
func (w *ServerInterfaceWrapper) ListPizzas(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.ListPizzas(ctx)
	return err
}

// CreatePizza converts echo context to params.
func (w *ServerInterfaceWrapper) CreatePizza(ctx echo.Context) error {
	var err error

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.CreatePizza(ctx)
	return err
}

// DeletePizza converts echo context to params.
func (w *ServerInterfaceWrapper) DeletePizza(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "pizzaId" -------------
	var pizzaId PizzaId

	err = runtime.BindStyledParameterWithOptions("simple", "pizzaId", ctx.Param("pizzaId"), &pizzaId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter pizzaId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.DeletePizza(ctx, pizzaId)
	return err
}

// GetPizza converts echo context to params.
func (w *ServerInterfaceWrapper) GetPizza(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "pizzaId" -------------
	var pizzaId PizzaId

	err = runtime.BindStyledParameterWithOptions("simple", "pizzaId", ctx.Param("pizzaId"), &pizzaId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter pizzaId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.GetPizza(ctx, pizzaId)
	return err
}

// UpdatePizza converts echo context to params.
func (w *ServerInterfaceWrapper) UpdatePizza(ctx echo.Context) error {
	var err error
	// ------------- Path parameter "pizzaId" -------------
	var pizzaId PizzaId

	err = runtime.BindStyledParameterWithOptions("simple", "pizzaId", ctx.Param("pizzaId"), &pizzaId, runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter pizzaId: %s", err))
	}

	// Invoke the callback with all the unmarshaled arguments
	err = w.Handler.UpdatePizza(ctx, pizzaId)
	return err
}

// EchoRouter is the subset of echo.Echo and echo.Group the handlers are registered on.
type EchoRouter interface {
	CONNECT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	HEAD(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	OPTIONS(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PATCH(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	TRACE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/couriers", wrapper.ListCouriers)
	router.POST(baseURL+"/api/v1/couriers", wrapper.CreateCourier)
	router.DELETE(baseURL+"/api/v1/couriers/:courierId", wrapper.DeleteCourier)
	router.GET(baseURL+"/api/v1/couriers/:courierId", wrapper.GetCourier)
	router.PUT(baseURL+"/api/v1/couriers/:courierId", wrapper.UpdateCourier)
	router.GET(baseURL+"/api/v1/customers", wrapper.ListCustomers)
	router.POST(baseURL+"/api/v1/customers", wrapper.CreateCustomer)
	router.DELETE(baseURL+"/api/v1/customers/:customerId", wrapper.DeleteCustomer)
	router.GET(baseURL+"/api/v1/customers/:customerId", wrapper.GetCustomer)
	router.PUT(baseURL+"/api/v1/customers/:customerId", wrapper.UpdateCustomer)
	router.GET(baseURL+"/api/v1/orders", wrapper.ListOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.DELETE(baseURL+"/api/v1/orders/:orderId", wrapper.DeleteOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId/items", wrapper.ListOrderItems)
	router.POST(baseURL+"/api/v1/orders/:orderId/items", wrapper.CreateOrderItem)
	router.DELETE(baseURL+"/api/v1/orders/:orderId/items/:pizzaId", wrapper.DeleteOrderItem)
	router.PUT(baseURL+"/api/v1/orders/:orderId/items/:pizzaId", wrapper.UpdateOrderItem)
	router.GET(baseURL+"/api/v1/pizzas", wrapper.ListPizzas)
	router.POST(baseURL+"/api/v1/pizzas", wrapper.CreatePizza)
	router.DELETE(baseURL+"/api/v1/pizzas/:pizzaId", wrapper.DeletePizza)
	router.GET(baseURL+"/api/v1/pizzas/:pizzaId", wrapper.GetPizza)
	router.PUT(baseURL+"/api/v1/pizzas/:pizzaId", wrapper.UpdatePizza)
}
