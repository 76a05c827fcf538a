package cmd

import (
	"fmt"
	"log/slog"
	"strings"

	httpin "pizza/internal/adapters/in/http"
	"pizza/internal/adapters/out/kafka"
	"pizza/internal/adapters/out/postgres"
	"pizza/internal/adapters/out/rabbitmq"
	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/application/usecases/queries"
	"pizza/internal/core/ports"
	"pizza/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	cfg        Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger
}

func NewCompositionRoot(cfg Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		cfg:        cfg,
		gormDB:     gormDB,
		uowFactory: postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:     logger,
	}
}

// HTTPHandlers wires every use case served by the REST API.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateOrder:             c.CreateCreateOrderCommandHandler(),
		DeleteOrder:             c.CreateDeleteOrderCommandHandler(),
		CreateOrderItem:         c.CreateCreateOrderItemCommandHandler(),
		UpdateOrderItemQuantity: c.CreateUpdateOrderItemQuantityCommandHandler(),
		DeleteOrderItem:         c.CreateDeleteOrderItemCommandHandler(),
		GetOrder:                queries.NewGetOrderQueryHandler(c.gormDB),
		ListOrders:              queries.NewListOrdersQueryHandler(c.gormDB, queries.DefaultListOrdersConcurrency),
		GetOrderItems:           queries.NewGetOrderItemsQueryHandler(c.gormDB),

		CreatePizza: c.CreateCreatePizzaCommandHandler(),
		UpdatePizza: c.CreateUpdatePizzaCommandHandler(),
		DeletePizza: c.CreateDeletePizzaCommandHandler(),
		GetPizza:    queries.NewGetPizzaQueryHandler(c.gormDB),
		ListPizzas:  queries.NewListPizzasQueryHandler(c.gormDB),

		CreateCustomer: c.CreateCreateCustomerCommandHandler(),
		UpdateCustomer: c.CreateUpdateCustomerCommandHandler(),
		DeleteCustomer: c.CreateDeleteCustomerCommandHandler(),
		GetCustomer:    queries.NewGetCustomerQueryHandler(c.gormDB),
		ListCustomers:  queries.NewListCustomersQueryHandler(c.gormDB),

		CreateCourier: c.CreateCreateCourierCommandHandler(),
		UpdateCourier: c.CreateUpdateCourierCommandHandler(),
		DeleteCourier: c.CreateDeleteCourierCommandHandler(),
		GetCourier:    queries.NewGetCourierQueryHandler(c.gormDB),
		ListCouriers:  queries.NewListCouriersQueryHandler(c.gormDB),
	}
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() *commands.CreateOrderCommandHandler {
	h := commands.NewCreateOrderCommandHandler(c.orderUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderCommandHandler() *commands.DeleteOrderCommandHandler {
	h := commands.NewDeleteOrderCommandHandler(c.compositionUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateOrderItemCommandHandler() *commands.CreateOrderItemCommandHandler {
	h := commands.NewCreateOrderItemCommandHandler(c.compositionUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateOrderItemQuantityCommandHandler() *commands.UpdateOrderItemQuantityCommandHandler {
	h := commands.NewUpdateOrderItemQuantityCommandHandler(c.compositionUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteOrderItemCommandHandler() *commands.DeleteOrderItemCommandHandler {
	h := commands.NewDeleteOrderItemCommandHandler(c.compositionUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreatePizzaCommandHandler() *commands.CreatePizzaCommandHandler {
	h := commands.NewCreatePizzaCommandHandler(c.pizzaUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdatePizzaCommandHandler() *commands.UpdatePizzaCommandHandler {
	h := commands.NewUpdatePizzaCommandHandler(c.pizzaUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeletePizzaCommandHandler() *commands.DeletePizzaCommandHandler {
	h := commands.NewDeletePizzaCommandHandler(c.pizzaUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateCustomerCommandHandler() *commands.CreateCustomerCommandHandler {
	h := commands.NewCreateCustomerCommandHandler(c.customerUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateCustomerCommandHandler() *commands.UpdateCustomerCommandHandler {
	h := commands.NewUpdateCustomerCommandHandler(c.customerUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteCustomerCommandHandler() *commands.DeleteCustomerCommandHandler {
	h := commands.NewDeleteCustomerCommandHandler(c.customerUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() *commands.CreateCourierCommandHandler {
	h := commands.NewCreateCourierCommandHandler(c.courierUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateUpdateCourierCommandHandler() *commands.UpdateCourierCommandHandler {
	h := commands.NewUpdateCourierCommandHandler(c.courierUoWFactory())
	return &h
}

func (c *CompositionRoot) CreateDeleteCourierCommandHandler() *commands.DeleteCourierCommandHandler {
	h := commands.NewDeleteCourierCommandHandler(c.courierUoWFactory())
	return &h
}

// CreateEventPublisher connects to the configured broker. It returns nil when
// no broker is configured.
func (c *CompositionRoot) CreateEventPublisher() (ports.EventPublisher, error) {
	switch c.cfg.EventBroker {
	case EventBrokerKafka:
		return kafka.NewPublisher(strings.Split(c.cfg.KafkaHost, ","), c.cfg.KafkaOrderChangedTopic), nil
	case EventBrokerRabbitMQ:
		publisher, err := rabbitmq.NewPublisher(c.cfg.RabbitMQURL, c.cfg.RabbitMQExchange)
		if err != nil {
			return nil, fmt.Errorf("connect to rabbitmq: %w", err)
		}
		return publisher, nil
	default:
		return nil, nil
	}
}

// CreateJobManager returns the background jobs. The outbox relay only runs
// when there is a publisher to relay to.
func (c *CompositionRoot) CreateJobManager(publisher ports.EventPublisher) *jobs.JobManager {
	if publisher == nil {
		return jobs.NewJobManager(c.logger)
	}

	relay := commands.NewRelayOutboxCommandHandler(c.outboxUoWFactory(), publisher)
	return jobs.NewJobManager(c.logger, jobs.NewOutboxRelayJob(&relay, c.logger))
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) compositionUoWFactory() commands.CompositionUoWFactory {
	return FuncCompositionUoWFactory(func() commands.CompositionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) pizzaUoWFactory() commands.PizzaUoWFactory {
	return FuncPizzaUoWFactory(func() commands.PizzaUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) customerUoWFactory() commands.CustomerUoWFactory {
	return FuncCustomerUoWFactory(func() commands.CustomerUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) courierUoWFactory() commands.CourierUoWFactory {
	return FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) outboxUoWFactory() commands.OutboxUoWFactory {
	return FuncOutboxUoWFactory(func() commands.OutboxUoW {
		return c.uowFactory.Create()
	})
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncCompositionUoWFactory func() commands.CompositionUoW

func (f FuncCompositionUoWFactory) Create() commands.CompositionUoW {
	return f()
}

type FuncPizzaUoWFactory func() commands.PizzaUoW

func (f FuncPizzaUoWFactory) Create() commands.PizzaUoW {
	return f()
}

type FuncCustomerUoWFactory func() commands.CustomerUoW

func (f FuncCustomerUoWFactory) Create() commands.CustomerUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncOutboxUoWFactory func() commands.OutboxUoW

func (f FuncOutboxUoWFactory) Create() commands.OutboxUoW {
	return f()
}
