package http

import (
	"net/http"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/application/usecases/queries"
	"pizza/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListCouriers handles GET /api/v1/couriers - retrieves all couriers.
func (s *Server) ListCouriers(ctx echo.Context) error {
	couriers, err := s.h.ListCouriers.Handle(ctx.Request().Context(), queries.NewListCouriersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Courier, len(couriers))
	for i, c := range couriers {
		response[i] = servers.Courier{Id: int64(c.ID), Name: c.Name, Phone: c.Phone}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreateCourier handles POST /api/v1/couriers - creates a new courier.
func (s *Server) CreateCourier(ctx echo.Context) error {
	var newCourier servers.NewCourier
	if err := ctx.Bind(&newCourier); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateCourierCommand(newCourier.Name, newCourier.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateCourier.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Courier{
		Id:    int64(created.ID()),
		Name:  created.Name(),
		Phone: created.Phone(),
	})
}

func (s *Server) GetCourier(ctx echo.Context, courierId servers.CourierId) error {
	query, err := queries.NewGetCourierQuery(courierId)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.h.GetCourier.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Courier{Id: int64(c.ID), Name: c.Name, Phone: c.Phone})
}

func (s *Server) UpdateCourier(ctx echo.Context, courierId servers.CourierId) error {
	var body servers.CourierUpdate
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateCourierCommand(courierId, body.Name, body.Phone)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.UpdateCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (s *Server) DeleteCourier(ctx echo.Context, courierId servers.CourierId) error {
	cmd, err := commands.NewDeleteCourierCommand(courierId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteCourier.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
