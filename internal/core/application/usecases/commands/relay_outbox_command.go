package commands

import (
	"errors"

	"pizza/internal/pkg/errs"
	"pizza/internal/pkg/guard"
)

// DefaultRelayBatchSize bounds how many outbox rows one relay run locks.
const DefaultRelayBatchSize = 100

var ErrRelayOutboxCommandIsNotConstructed = errors.New(
	"RelayOutboxCommand must be created via NewRelayOutboxCommand constructor",
)

// RelayOutboxCommand publishes up to batchSize pending order events.
type RelayOutboxCommand struct { //nolint:recvcheck //using for validation
	batchSize int

	guard guard.ConstructorGuard
}

func NewRelayOutboxCommand(batchSize int) (RelayOutboxCommand, error) {
	if batchSize <= 0 {
		return RelayOutboxCommand{}, errs.NewValueIsOutOfRangeError("batchSize", batchSize, 1, "unbounded")
	}

	return RelayOutboxCommand{batchSize: batchSize, guard: guard.NewConstructorGuard()}, nil
}

func (c RelayOutboxCommand) Validate() error {
	return c.guard.Validate(ErrRelayOutboxCommandIsNotConstructed)
}

func (c RelayOutboxCommand) BatchSize() int {
	return c.batchSize
}
