package http

import (
	"net/http"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/application/usecases/queries"
	"pizza/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

// ListPizzas handles GET /api/v1/pizzas - retrieves the catalog.
func (s *Server) ListPizzas(ctx echo.Context) error {
	pizzas, err := s.h.ListPizzas.Handle(ctx.Request().Context(), queries.NewListPizzasQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Pizza, len(pizzas))
	for i, p := range pizzas {
		response[i] = servers.Pizza{Id: int64(p.ID), Name: p.Name, Price: int64(p.Price)}
	}
	return ctx.JSON(http.StatusOK, response)
}

// CreatePizza handles POST /api/v1/pizzas - adds a pizza to the catalog.
func (s *Server) CreatePizza(ctx echo.Context) error {
	var body servers.NewPizza
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreatePizzaCommand(body.Name, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreatePizza.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Pizza{
		Id:    int64(created.ID()),
		Name:  created.Name(),
		Price: int64(created.Price()),
	})
}

// GetPizza handles GET /api/v1/pizzas/{pizzaId}.
func (s *Server) GetPizza(ctx echo.Context, pizzaId servers.PizzaId) error {
	query, err := queries.NewGetPizzaQuery(pizzaId)
	if err != nil {
		return s.fail(ctx, err)
	}

	p, err := s.h.GetPizza.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Pizza{Id: int64(p.ID), Name: p.Name, Price: int64(p.Price)})
}

// UpdatePizza handles PUT /api/v1/pizzas/{pizzaId}. Absent fields keep their value.
func (s *Server) UpdatePizza(ctx echo.Context, pizzaId servers.PizzaId) error {
	var body servers.PizzaUpdate
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdatePizzaCommand(pizzaId, body.Name, body.Price)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.UpdatePizza.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeletePizza handles DELETE /api/v1/pizzas/{pizzaId}.
func (s *Server) DeletePizza(ctx echo.Context, pizzaId servers.PizzaId) error {
	cmd, err := commands.NewDeletePizzaCommand(pizzaId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeletePizza.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
