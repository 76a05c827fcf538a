package http

import (
	"net/http"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/application/usecases/queries"
	"pizza/internal/generated/servers"

	"github.com/labstack/echo/v4"
)

func (s *Server) ListCustomers(ctx echo.Context) error {
	customers, err := s.h.ListCustomers.Handle(ctx.Request().Context(), queries.NewListCustomersQuery())
	if err != nil {
		return s.fail(ctx, err)
	}

	response := make([]servers.Customer, len(customers))
	for i, c := range customers {
		response[i] = servers.Customer{Id: int64(c.ID), Name: c.Name, Address: c.Address}
	}
	return ctx.JSON(http.StatusOK, response)
}

func (s *Server) CreateCustomer(ctx echo.Context) error {
	var body servers.NewCustomer
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewCreateCustomerCommand(body.Name, body.Address)
	if err != nil {
		return s.fail(ctx, err)
	}

	created, err := s.h.CreateCustomer.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, servers.Customer{
		Id:      int64(created.ID()),
		Name:    created.Name(),
		Address: created.Address(),
	})
}

func (s *Server) GetCustomer(ctx echo.Context, customerId servers.CustomerId) error {
	query, err := queries.NewGetCustomerQuery(customerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	c, err := s.h.GetCustomer.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err)
	}
	return ctx.JSON(http.StatusOK, servers.Customer{Id: int64(c.ID), Name: c.Name, Address: c.Address})
}

func (s *Server) UpdateCustomer(ctx echo.Context, customerId servers.CustomerId) error {
	var body servers.CustomerUpdate
	if err := ctx.Bind(&body); err != nil {
		return invalidBody(ctx)
	}

	cmd, err := commands.NewUpdateCustomerCommand(customerId, body.Name, body.Address)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.UpdateCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// DeleteCustomer answers 409 while orders still reference the customer.
func (s *Server) DeleteCustomer(ctx echo.Context, customerId servers.CustomerId) error {
	cmd, err := commands.NewDeleteCustomerCommand(customerId)
	if err != nil {
		return s.fail(ctx, err)
	}

	if err := s.h.DeleteCustomer.Handle(ctx.Request().Context(), cmd); err != nil {
		return s.fail(ctx, err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
