// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management, and persistence.
package commands

import (
	"context"

	"pizza/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each handler depends on the narrowest combination of repositories it uses.
type (
	// TxManager handles database transaction lifecycle.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	PizzaRepoFactory interface {
		PizzaRepository() ports.PizzaRepository
	}

	CustomerRepoFactory interface {
		CustomerRepository() ports.CustomerRepository
	}

	CourierRepoFactory interface {
		CourierRepository() ports.CourierRepository
	}

	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	OrderItemRepoFactory interface {
		OrderItemRepository() ports.OrderItemRepository
	}

	OutboxRepoFactory interface {
		OutboxRepository() ports.OutboxRepository
	}

	// OrderUoW manages transactions for order-only operations.
	OrderUoW interface {
		TxManager
		OrderRepoFactory
	}

	OrderUoWFactory interface {
		Create() OrderUoW
	}

	// CompositionUoW spans orders, their items and the catalog. It is used by
	// every operation that checks item references before writing.
	//
	// Example:
	//   uow := factory.Create()
	//   err := uow.Begin(ctx)
	//   defer uow.Rollback(ctx)
	//
	//   p, err := uow.PizzaRepository().Get(ctx, pizzaID)
	//   o, err := uow.OrderRepository().Get(ctx, orderID)
	//   err = uow.OrderItemRepository().Add(ctx, item)
	//
	//   err = uow.Commit(ctx)
	CompositionUoW interface {
		TxManager
		PizzaRepoFactory
		OrderRepoFactory
		OrderItemRepoFactory
	}

	CompositionUoWFactory interface {
		Create() CompositionUoW
	}

	PizzaUoW interface {
		TxManager
		PizzaRepoFactory
	}

	PizzaUoWFactory interface {
		Create() PizzaUoW
	}

	CustomerUoW interface {
		TxManager
		CustomerRepoFactory
	}

	CustomerUoWFactory interface {
		Create() CustomerUoW
	}

	CourierUoW interface {
		TxManager
		CourierRepoFactory
	}

	CourierUoWFactory interface {
		Create() CourierUoW
	}

	// OutboxUoW holds the outbox rows locked by a relay run until they are
	// marked published.
	OutboxUoW interface {
		TxManager
		OutboxRepoFactory
	}

	OutboxUoWFactory interface {
		Create() OutboxUoW
	}
)
