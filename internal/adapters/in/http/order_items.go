package http

import (
	"net/http"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/application/usecases/queries"
	"pizza/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListOrderItems handles GET /api/v1/orders/{orderId}/items.
func (s *Server) ListOrderItems(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetOrderItemsQuery(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	items, err := s.h.GetOrderItems.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.OrderItem, len(items))
	for i, item := range items {
		response[i] = servers.OrderItem{
			OrderId:  int64(item.OrderID),
			PizzaId:  int64(item.PizzaID),
			Quantity: item.Quantity,
		}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrderItem handles POST /api/v1/orders/{orderId}/items - adds a pizza to the order.
func (s *Server) CreateOrderItem(ctx echo.Context, orderId servers.OrderId) error {
	var body servers.NewOrderItem
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateOrderItemCommand(orderId, body.PizzaId, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	item, err := s.h.CreateOrderItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.OrderItem{
		OrderId:  int64(item.OrderID()),
		PizzaId:  int64(item.PizzaID()),
		Quantity: item.Quantity(),
	})
}

// UpdateOrderItem handles PUT /api/v1/orders/{orderId}/items/{pizzaId} - sets the quantity.
func (s *Server) UpdateOrderItem(ctx echo.Context, orderId servers.OrderId, pizzaId servers.PizzaId) error {
	var body servers.OrderItemQuantity
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateOrderItemQuantityCommand(orderId, pizzaId, body.Quantity)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.UpdateOrderItemQuantity.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteOrderItem handles DELETE /api/v1/orders/{orderId}/items/{pizzaId}.
func (s *Server) DeleteOrderItem(ctx echo.Context, orderId servers.OrderId, pizzaId servers.PizzaId) error {
	cmd, err := commands.NewDeleteOrderItemCommand(orderId, pizzaId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteOrderItem.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
