// Package postgres provides the GORM-based storage gateway of the service:
// connection setup, the Unit of Work and the per-table repositories in its
// subpackages.
//
// The Unit of Work keeps every repository of one business operation on the
// same transaction and collects the order events raised by the order and
// order item repositories. On Commit the events are written to the outbox
// table inside that transaction, so an event exists if and only if its change
// was committed.
//
// Usage:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if _, err := uow.OrderItemRepository().DeleteAllForOrder(ctx, id); err != nil {
//	    return err
//	}
//	if err := uow.OrderRepository().Delete(ctx, id); err != nil {
//	    return err
//	}
//
//	return uow.Commit(ctx)
//
// Each UnitOfWork instance holds its own transaction; goroutines must not
// share one.
package postgres

import (
	"context"

	"pizza/internal/adapters/out/postgres/courierrepo"
	"pizza/internal/adapters/out/postgres/customerrepo"
	"pizza/internal/adapters/out/postgres/orderitemrepo"
	"pizza/internal/adapters/out/postgres/orderrepo"
	"pizza/internal/adapters/out/postgres/outboxrepo"
	"pizza/internal/adapters/out/postgres/pgerrs"
	"pizza/internal/adapters/out/postgres/pizzarepo"
	"pizza/internal/core/domain/model/order"
	"pizza/internal/core/ports"

	"gorm.io/gorm"
)

// GormUnitOfWorkFactory creates UnitOfWork instances sharing one connection pool.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
//
// Example:
//
//	db, err := postgres.Open(dsn, 10)
//	if err != nil {
//	    log.Fatal("failed to connect database")
//	}
//	factory := postgres.NewGormUnitOfWorkFactory(db)
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork with its own transaction state and event list.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:     f.db,
		events: make([]order.Event, 0),
	}
}

// GormUnitOfWork coordinates a database transaction and the order events raised
// while it is open.
type GormUnitOfWork struct {
	db     *gorm.DB
	tx     *gorm.DB
	events []order.Event
}

// Begin initiates a new database transaction for the unit of work.
// Multiple calls to Begin on the same instance do not create nested transactions.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	tx := uow.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return pgerrs.Translate(tx.Error)
	}

	uow.tx = tx
	return nil
}

// Commit writes the tracked events to the outbox and commits the transaction.
// If the outbox write fails the transaction is rolled back.
func (uow *GormUnitOfWork) Commit(ctx context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	tx := uow.tx
	events := uow.events
	uow.tx = nil
	uow.events = make([]order.Event, 0)

	if err := outboxrepo.NewGormOutboxRepository(tx).Add(ctx, events...); err != nil {
		_ = tx.Rollback().Error
		return err
	}

	return pgerrs.Translate(tx.Commit().Error)
}

// Rollback discards the transaction and every event raised inside it.
// Calling it after Commit returns gorm.ErrInvalidTransaction, which deferred
// rollbacks ignore.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	uow.events = make([]order.Event, 0)
	return err
}

func (uow *GormUnitOfWork) PizzaRepository() ports.PizzaRepository {
	return pizzarepo.NewGormPizzaRepository(uow.conn())
}

func (uow *GormUnitOfWork) CustomerRepository() ports.CustomerRepository {
	return customerrepo.NewGormCustomerRepository(uow.conn())
}

func (uow *GormUnitOfWork) CourierRepository() ports.CourierRepository {
	return courierrepo.NewGormCourierRepository(uow.conn())
}

// OrderRepository returns an order repository that reports created and deleted
// orders to this unit of work.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// OrderItemRepository returns an item repository that reports item changes to
// this unit of work.
func (uow *GormUnitOfWork) OrderItemRepository() ports.OrderItemRepository {
	return orderitemrepo.NewGormOrderItemRepository(uow.conn(), uow)
}

func (uow *GormUnitOfWork) OutboxRepository() ports.OutboxRepository {
	return outboxrepo.NewGormOutboxRepository(uow.conn())
}

// TrackEvent records an event to be written to the outbox on Commit. Events
// raised outside a transaction are dropped, since there is no commit that
// would persist them.
func (uow *GormUnitOfWork) TrackEvent(event order.Event) {
	if uow.tx == nil {
		return
	}
	uow.events = append(uow.events, event)
}

// TrackedEvents returns the events raised since Begin.
func (uow *GormUnitOfWork) TrackedEvents() []order.Event {
	return append([]order.Event(nil), uow.events...)
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}
