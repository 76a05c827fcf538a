package commands_test

import (
	"context"
	"time"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/domain/model/courier"
	"pizza/internal/core/domain/model/customer"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/domain/model/pizza"
	"pizza/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) (*order.Order, error) {
	args := m.Called(ctx, o)
	created, _ := args.Get(0).(*order.Order)
	return created, args.Error(1)
}
func (m *MockOrderRepository) Get(ctx context.Context, id kernel.ID) (*order.Order, error) {
	args := m.Called(ctx, id)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}
func (m *MockOrderRepository) GetAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	orders, _ := args.Get(0).([]*order.Order)
	return orders, args.Error(1)
}
func (m *MockOrderRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOrderItemRepository struct{ mock.Mock }

func (m *MockOrderItemRepository) Add(ctx context.Context, item *order.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockOrderItemRepository) GetAllForOrder(ctx context.Context, orderID kernel.ID) ([]*order.Item, error) {
	args := m.Called(ctx, orderID)
	items, _ := args.Get(0).([]*order.Item)
	return items, args.Error(1)
}
func (m *MockOrderItemRepository) Replace(ctx context.Context, item *order.Item) error {
	args := m.Called(ctx, item)
	return args.Error(0)
}
func (m *MockOrderItemRepository) DeleteAllForOrder(ctx context.Context, orderID kernel.ID) (int64, error) {
	args := m.Called(ctx, orderID)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockOrderItemRepository) Delete(ctx context.Context, orderID, pizzaID kernel.ID) error {
	args := m.Called(ctx, orderID, pizzaID)
	return args.Error(0)
}

type MockPizzaRepository struct{ mock.Mock }

func (m *MockPizzaRepository) Add(ctx context.Context, p *pizza.Pizza) (*pizza.Pizza, error) {
	args := m.Called(ctx, p)
	created, _ := args.Get(0).(*pizza.Pizza)
	return created, args.Error(1)
}
func (m *MockPizzaRepository) Update(ctx context.Context, p *pizza.Pizza) error {
	args := m.Called(ctx, p)
	return args.Error(0)
}
func (m *MockPizzaRepository) Get(ctx context.Context, id kernel.ID) (*pizza.Pizza, error) {
	args := m.Called(ctx, id)
	p, _ := args.Get(0).(*pizza.Pizza)
	return p, args.Error(1)
}
func (m *MockPizzaRepository) GetAll(_ context.Context) ([]*pizza.Pizza, error) {
	return nil, nil
}
func (m *MockPizzaRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCustomerRepository struct{ mock.Mock }

func (m *MockCustomerRepository) Add(ctx context.Context, c *customer.Customer) (*customer.Customer, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(*customer.Customer)
	return created, args.Error(1)
}
func (m *MockCustomerRepository) Update(ctx context.Context, c *customer.Customer) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCustomerRepository) Get(ctx context.Context, id kernel.ID) (*customer.Customer, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*customer.Customer)
	return c, args.Error(1)
}
func (m *MockCustomerRepository) GetAll(_ context.Context) ([]*customer.Customer, error) {
	return nil, nil
}
func (m *MockCustomerRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockCourierRepository struct{ mock.Mock }

func (m *MockCourierRepository) Add(ctx context.Context, c *courier.Courier) (*courier.Courier, error) {
	args := m.Called(ctx, c)
	created, _ := args.Get(0).(*courier.Courier)
	return created, args.Error(1)
}
func (m *MockCourierRepository) Update(ctx context.Context, c *courier.Courier) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}
func (m *MockCourierRepository) Get(ctx context.Context, id kernel.ID) (*courier.Courier, error) {
	args := m.Called(ctx, id)
	c, _ := args.Get(0).(*courier.Courier)
	return c, args.Error(1)
}
func (m *MockCourierRepository) GetAll(_ context.Context) ([]*courier.Courier, error) {
	return nil, nil
}
func (m *MockCourierRepository) Delete(ctx context.Context, id kernel.ID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockOutboxRepository struct{ mock.Mock }

func (m *MockOutboxRepository) GetUnpublished(ctx context.Context, limit int) ([]ports.OutboxMessage, error) {
	args := m.Called(ctx, limit)
	messages, _ := args.Get(0).([]ports.OutboxMessage)
	return messages, args.Error(1)
}
func (m *MockOutboxRepository) MarkPublished(ctx context.Context, ids []kernel.UUID, publishedAt time.Time) error {
	args := m.Called(ctx, ids, publishedAt)
	return args.Error(0)
}

type MockEventPublisher struct{ mock.Mock }

func (m *MockEventPublisher) Publish(ctx context.Context, msg ports.OutboxMessage) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}
func (m *MockEventPublisher) Close() error { return nil }

// MockUoW satisfies every unit of work interface of the package; each test
// only sets expectations for the accessors its handler uses.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}
func (m *MockUoW) OrderItemRepository() ports.OrderItemRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderItemRepository)
}
func (m *MockUoW) PizzaRepository() ports.PizzaRepository {
	args := m.Called()
	return args.Get(0).(ports.PizzaRepository)
}
func (m *MockUoW) CustomerRepository() ports.CustomerRepository {
	args := m.Called()
	return args.Get(0).(ports.CustomerRepository)
}
func (m *MockUoW) CourierRepository() ports.CourierRepository {
	args := m.Called()
	return args.Get(0).(ports.CourierRepository)
}
func (m *MockUoW) OutboxRepository() ports.OutboxRepository {
	args := m.Called()
	return args.Get(0).(ports.OutboxRepository)
}

// MockUoWFactory hands out a single MockUoW through every factory interface.
type MockUoWFactory struct {
	mock.Mock
	uow *MockUoW
}

func newFactory(uow *MockUoW) *MockUoWFactory {
	f := &MockUoWFactory{uow: uow}
	f.On("Create").Return(uow)
	return f
}

func (f *MockUoWFactory) create() *MockUoW {
	f.MethodCalled("Create")
	return f.uow
}

type (
	orderFactory       struct{ *MockUoWFactory }
	compositionFactory struct{ *MockUoWFactory }
	pizzaFactory       struct{ *MockUoWFactory }
	customerFactory    struct{ *MockUoWFactory }
	courierFactory     struct{ *MockUoWFactory }
	outboxFactory      struct{ *MockUoWFactory }
)

func (f orderFactory) Create() commands.OrderUoW             { return f.create() }
func (f compositionFactory) Create() commands.CompositionUoW { return f.create() }
func (f pizzaFactory) Create() commands.PizzaUoW             { return f.create() }
func (f customerFactory) Create() commands.CustomerUoW       { return f.create() }
func (f courierFactory) Create() commands.CourierUoW         { return f.create() }
func (f outboxFactory) Create() commands.OutboxUoW           { return f.create() }

func mustPizza(id int64, name string, price int64) *pizza.Pizza {
	p, err := pizza.RestorePizza(kernel.ID(id), name, price)
	if err != nil {
		panic(err)
	}
	return p
}

func mustOrder(id int64) *order.Order {
	o, err := order.RestoreOrder(kernel.ID(id), 1, 1, time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC))
	if err != nil {
		panic(err)
	}
	return o
}

func mustItem(orderID, pizzaID int64, quantity int) *order.Item {
	item, err := order.NewItem(kernel.ID(orderID), kernel.ID(pizzaID), quantity)
	if err != nil {
		panic(err)
	}
	return item
}
