package http

import (
	"net/http"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/application/usecases/queries"
	"pizza/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListOrders handles GET /api/v1/orders - retrieves all orders with their totals.
func (s *Server) ListOrders(ctx echo.Context) error {
	orders, err := s.h.ListOrders.Handle(ctx.Request().Context(), queries.NewListOrdersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Order, len(orders))
	for i, o := range orders {
		response[i] = toOrder(o)
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places a new order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateOrderCommand(body.CustomerId, body.CourierId)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Order{
		Id:         int64(created.ID()),
		CustomerId: int64(created.CustomerID()),
		CourierId:  int64(created.CourierID()),
		CreatedAt:  created.CreatedAt(),
	})
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId servers.OrderId) error {
	query, err := queries.NewGetOrderQuery(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	o, err := s.h.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, toOrder(o))
}

// DeleteOrder handles DELETE /api/v1/orders/{orderId} - removes the order and its items.
func (s *Server) DeleteOrder(ctx echo.Context, orderId servers.OrderId) error {
	cmd, err := commands.NewDeleteOrderCommand(orderId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteOrder.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func toOrder(o queries.GetOrderQueryResponse) servers.Order {
	return servers.Order{
		Id:         int64(o.ID),
		CustomerId: int64(o.CustomerID),
		CourierId:  int64(o.CourierID),
		CreatedAt:  o.CreatedAt,
		Total:      int64(o.Total),
	}
}
