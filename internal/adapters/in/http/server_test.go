package http_test

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	httpin "pizza/internal/adapters/in/http"
	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/application/usecases/queries"
	"pizza/internal/core/domain/model/courier"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/domain/model/pizza"
	"pizza/internal/generated/servers"
	"pizza/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestEcho(t *testing.T, h httpin.Handlers) *echo.Echo {
	t.Helper()

	logger := slog.New(slog.DiscardHandler)

	swagger, err := servers.GetSwagger()
	require.NoError(t, err)

	validator, err := httpin.NewRequestValidator(swagger)
	require.NoError(t, err)

	e := echo.New()
	e.HTTPErrorHandler = httpin.ErrorHandler(logger)
	e.Use(validator)
	require.NoError(t, httpin.RegisterSwaggerDocs(e, swagger))
	servers.RegisterHandlers(e, httpin.NewServer(h, logger))
	return e
}

func serve(e *echo.Echo, method, target, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) servers.Error {
	t.Helper()
	var body servers.Error
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func TestCreateOrderItem(t *testing.T) {
	t.Run("created", func(t *testing.T) {
		handler := &MockHandler[commands.CreateOrderItemCommand, *order.Item]{}
		e := newTestEcho(t, httpin.Handlers{CreateOrderItem: handler})

		cmd, err := commands.NewCreateOrderItemCommand(1, 10, 2)
		require.NoError(t, err)
		item, err := order.NewItem(1, 10, 2)
		require.NoError(t, err)
		handler.On("Handle", mock.Anything, cmd).Return(item, nil).Once()

		rec := serve(e, http.MethodPost, "/api/v1/orders/1/items", `{"pizzaId":10,"quantity":2}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got servers.OrderItem
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, servers.OrderItem{OrderId: 1, PizzaId: 10, Quantity: 2}, got)
		handler.AssertExpectations(t)
	})

	t.Run("missing pizza is 404", func(t *testing.T) {
		handler := &MockHandler[commands.CreateOrderItemCommand, *order.Item]{}
		e := newTestEcho(t, httpin.Handlers{CreateOrderItem: handler})

		handler.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewReferenceNotFoundErrorWithCause("pizza", kernel.ID(999),
				errs.NewObjectNotFoundError("pizza", kernel.ID(999)))).
			Once()

		rec := serve(e, http.MethodPost, "/api/v1/orders/1/items", `{"pizzaId":999,"quantity":1}`)

		require.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, servers.Error{Code: http.StatusNotFound, Message: "pizza 999 not found"}, decodeError(t, rec))
	})

	t.Run("quantity outside 1..20 never reaches the handler", func(t *testing.T) {
		handler := &MockHandler[commands.CreateOrderItemCommand, *order.Item]{}
		e := newTestEcho(t, httpin.Handlers{CreateOrderItem: handler})

		for _, body := range []string{`{"pizzaId":10,"quantity":0}`, `{"pizzaId":10,"quantity":21}`} {
			rec := serve(e, http.MethodPost, "/api/v1/orders/1/items", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
			assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
		}
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("malformed json", func(t *testing.T) {
		handler := &MockHandler[commands.CreateOrderItemCommand, *order.Item]{}
		e := newTestEcho(t, httpin.Handlers{CreateOrderItem: handler})

		rec := serve(e, http.MethodPost, "/api/v1/orders/1/items", `{"pizzaId":`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestUpdateOrderItem(t *testing.T) {
	handler := &MockExecHandler[commands.UpdateOrderItemQuantityCommand]{}
	e := newTestEcho(t, httpin.Handlers{UpdateOrderItemQuantity: handler})

	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderItemQuantityCommand) bool {
		return cmd.OrderID() == 1 && cmd.PizzaID() == 10 && cmd.Quantity() == 5
	})).Return(nil).Once()
	handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdateOrderItemQuantityCommand) bool {
		return cmd.PizzaID() == 11
	})).Return(errs.NewReferenceNotFoundError("item", "1/11")).Once()

	rec := serve(e, http.MethodPut, "/api/v1/orders/1/items/10", `{"quantity":5}`)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())

	rec = serve(e, http.MethodPut, "/api/v1/orders/1/items/11", `{"quantity":5}`)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "item 1/11 not found", decodeError(t, rec).Message)

	handler.AssertExpectations(t)
}

func TestDeleteOrderItem(t *testing.T) {
	handler := &MockExecHandler[commands.DeleteOrderItemCommand]{}
	e := newTestEcho(t, httpin.Handlers{DeleteOrderItem: handler})

	cmd, err := commands.NewDeleteOrderItemCommand(1, 10)
	require.NoError(t, err)
	handler.On("Handle", mock.Anything, cmd).Return(nil).Once()

	rec := serve(e, http.MethodDelete, "/api/v1/orders/1/items/10", "")

	assert.Equal(t, http.StatusNoContent, rec.Code)
	handler.AssertExpectations(t)
}

func TestListOrderItems(t *testing.T) {
	handler := &MockHandler[queries.GetOrderItemsQuery, []queries.GetOrderItemsQueryResponse]{}
	e := newTestEcho(t, httpin.Handlers{GetOrderItems: handler})

	query, err := queries.NewGetOrderItemsQuery(1)
	require.NoError(t, err)
	handler.On("Handle", mock.Anything, query).Return([]queries.GetOrderItemsQueryResponse{
		{OrderID: 1, PizzaID: 10, Quantity: 2},
		{OrderID: 1, PizzaID: 10, Quantity: 1},
	}, nil).Once()

	rec := serve(e, http.MethodGet, "/api/v1/orders/1/items", "")

	require.Equal(t, http.StatusOK, rec.Code)
	var got []servers.OrderItem
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Equal(t, []servers.OrderItem{
		{OrderId: 1, PizzaId: 10, Quantity: 2},
		{OrderId: 1, PizzaId: 10, Quantity: 1},
	}, got)
}

func TestOrders(t *testing.T) {
	createdAt := time.Date(2026, 10, 1, 12, 0, 0, 0, time.UTC)

	t.Run("create", func(t *testing.T) {
		handler := &MockHandler[commands.CreateOrderCommand, *order.Order]{}
		e := newTestEcho(t, httpin.Handlers{CreateOrder: handler})

		created, err := order.RestoreOrder(5, 1, 2, createdAt)
		require.NoError(t, err)
		handler.On("Handle", mock.Anything, mock.Anything).Return(created, nil).Once()

		rec := serve(e, http.MethodPost, "/api/v1/orders", `{"customerId":1,"courierId":2}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, servers.Order{Id: 5, CustomerId: 1, CourierId: 2, CreatedAt: createdAt}, got)
	})

	t.Run("unknown customer is a conflict", func(t *testing.T) {
		handler := &MockHandler[commands.CreateOrderCommand, *order.Order]{}
		e := newTestEcho(t, httpin.Handlers{CreateOrder: handler})

		handler.On("Handle", mock.Anything, mock.Anything).
			Return(nil, errs.NewConstraintViolationError("fk_orders_customer")).Once()

		rec := serve(e, http.MethodPost, "/api/v1/orders", `{"customerId":77,"courierId":2}`)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Contains(t, decodeError(t, rec).Message, "fk_orders_customer")
	})

	t.Run("get with total", func(t *testing.T) {
		handler := &MockHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]{}
		e := newTestEcho(t, httpin.Handlers{GetOrder: handler})

		handler.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrderQueryResponse{
			ID: 1, CustomerID: 1, CourierID: 2, CreatedAt: createdAt, Total: 3300,
		}, nil).Once()

		rec := serve(e, http.MethodGet, "/api/v1/orders/1", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, int64(3300), got.Total)
	})

	t.Run("storage failure is opaque", func(t *testing.T) {
		handler := &MockHandler[queries.GetOrderQuery, queries.GetOrderQueryResponse]{}
		e := newTestEcho(t, httpin.Handlers{GetOrder: handler})

		handler.On("Handle", mock.Anything, mock.Anything).
			Return(queries.GetOrderQueryResponse{}, errs.NewStorageUnavailableError(errors.New("dial tcp: refused"))).
			Once()

		rec := serve(e, http.MethodGet, "/api/v1/orders/1", "")

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		body := decodeError(t, rec)
		assert.Equal(t, "Internal server error", body.Message)
		assert.NotContains(t, rec.Body.String(), "dial tcp")
	})

	t.Run("list", func(t *testing.T) {
		handler := &MockHandler[queries.ListOrdersQuery, []queries.GetOrderQueryResponse]{}
		e := newTestEcho(t, httpin.Handlers{ListOrders: handler})

		handler.On("Handle", mock.Anything, mock.Anything).Return([]queries.GetOrderQueryResponse{
			{ID: 1, CustomerID: 1, CourierID: 2, CreatedAt: createdAt, Total: 3300},
			{ID: 2, CustomerID: 1, CourierID: 2, CreatedAt: createdAt},
		}, nil).Once()

		rec := serve(e, http.MethodGet, "/api/v1/orders", "")

		require.Equal(t, http.StatusOK, rec.Code)
		var got []servers.Order
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		require.Len(t, got, 2)
		assert.Equal(t, int64(3300), got[0].Total)
		assert.Zero(t, got[1].Total)
	})

	t.Run("delete missing order", func(t *testing.T) {
		handler := &MockExecHandler[commands.DeleteOrderCommand]{}
		e := newTestEcho(t, httpin.Handlers{DeleteOrder: handler})

		handler.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewObjectNotFoundError("order", kernel.ID(9))).Once()

		rec := serve(e, http.MethodDelete, "/api/v1/orders/9", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, "order 9 not found", decodeError(t, rec).Message)
	})
}

func TestPizzas(t *testing.T) {
	t.Run("create", func(t *testing.T) {
		handler := &MockHandler[commands.CreatePizzaCommand, *pizza.Pizza]{}
		e := newTestEcho(t, httpin.Handlers{CreatePizza: handler})

		created, err := pizza.RestorePizza(3, "Margherita", 1200)
		require.NoError(t, err)
		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreatePizzaCommand) bool {
			return cmd.Name() == "Margherita" && cmd.Price() == 1200
		})).Return(created, nil).Once()

		rec := serve(e, http.MethodPost, "/api/v1/pizzas", `{"name":"Margherita","price":1200}`)

		require.Equal(t, http.StatusCreated, rec.Code)
		var got servers.Pizza
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
		assert.Equal(t, servers.Pizza{Id: 3, Name: "Margherita", Price: 1200}, got)
	})

	t.Run("price above maximum is rejected", func(t *testing.T) {
		handler := &MockHandler[commands.CreatePizzaCommand, *pizza.Pizza]{}
		e := newTestEcho(t, httpin.Handlers{CreatePizza: handler})

		rec := serve(e, http.MethodPost, "/api/v1/pizzas", `{"name":"Huge","price":500000000000000000}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})

	t.Run("partial update", func(t *testing.T) {
		handler := &MockExecHandler[commands.UpdatePizzaCommand]{}
		e := newTestEcho(t, httpin.Handlers{UpdatePizza: handler})

		handler.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.UpdatePizzaCommand) bool {
			_, hasName := cmd.Name()
			price, hasPrice := cmd.Price()
			return cmd.PizzaID() == 3 && !hasName && hasPrice && price == 1500
		})).Return(nil).Once()

		rec := serve(e, http.MethodPut, "/api/v1/pizzas/3", `{"price":1500}`)

		assert.Equal(t, http.StatusNoContent, rec.Code)
		handler.AssertExpectations(t)
	})

	t.Run("delete referenced pizza is a conflict", func(t *testing.T) {
		handler := &MockExecHandler[commands.DeletePizzaCommand]{}
		e := newTestEcho(t, httpin.Handlers{DeletePizza: handler})

		handler.On("Handle", mock.Anything, mock.Anything).
			Return(errs.NewConstraintViolationError("fk_order_items_pizza")).Once()

		rec := serve(e, http.MethodDelete, "/api/v1/pizzas/3", "")

		assert.Equal(t, http.StatusConflict, rec.Code)
	})

	t.Run("get missing pizza", func(t *testing.T) {
		handler := &MockHandler[queries.GetPizzaQuery, queries.PizzaQueryResponse]{}
		e := newTestEcho(t, httpin.Handlers{GetPizza: handler})

		handler.On("Handle", mock.Anything, mock.Anything).
			Return(queries.PizzaQueryResponse{}, errs.NewObjectNotFoundError("pizza", kernel.ID(4))).Once()

		rec := serve(e, http.MethodGet, "/api/v1/pizzas/4", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestCouriers(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		handler := &MockHandler[queries.ListCouriersQuery, []queries.CourierQueryResponse]{}
		e := newTestEcho(t, httpin.Handlers{ListCouriers: handler})

		handler.On("Handle", mock.Anything, mock.Anything).Return([]queries.CourierQueryResponse{
			{ID: 1, Name: "Ann", Phone: "+15550100"},
		}, nil).Once()

		rec := serve(e, http.MethodGet, "/api/v1/couriers", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `[{"id":1,"name":"Ann","phone":"+15550100"}]`, rec.Body.String())
	})

	t.Run("phone must be E.164", func(t *testing.T) {
		handler := &MockHandler[commands.CreateCourierCommand, *courier.Courier]{}
		e := newTestEcho(t, httpin.Handlers{CreateCourier: handler})

		rec := serve(e, http.MethodPost, "/api/v1/couriers", `{"name":"Bob","phone":"555-0100"}`)

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
	})
}

func TestCustomerValidationErrorFromCommand(t *testing.T) {
	handler := &MockExecHandler[commands.UpdateCustomerCommand]{}
	e := newTestEcho(t, httpin.Handlers{UpdateCustomer: handler})

	rec := serve(e, http.MethodPut, "/api/v1/customers/1", `{"name":"   "}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeError(t, rec).Message, "name")
	handler.AssertNotCalled(t, "Handle", mock.Anything, mock.Anything)
}

func TestRoutingErrors(t *testing.T) {
	e := newTestEcho(t, httpin.Handlers{})

	t.Run("path parameter must be an integer", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/orders/abc", "")

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, http.StatusBadRequest, decodeError(t, rec).Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/v1/nothing", "")

		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.Equal(t, http.StatusNotFound, decodeError(t, rec).Code)
	})

	t.Run("openapi document", func(t *testing.T) {
		rec := serve(e, http.MethodGet, "/api/openapi.json", "")

		require.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "/api/v1/orders/{orderId}/items")
	})
}
