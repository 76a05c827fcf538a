package commands_test

import (
	"errors"
	"testing"

	"pizza/internal/core/application/usecases/commands"
	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeleteOrderCommandHandler_Handle_ItemsBeforeOrder(t *testing.T) {
	for _, removed := range []int64{0, 1, 5} {
		ctx := t.Context()
		cmd, _ := commands.NewDeleteOrderCommand(1)

		orders := new(MockOrderRepository)
		items := new(MockOrderItemRepository)
		uow := new(MockUoW)
		mock.InOrder(
			uow.On("Begin", ctx).Return(nil).Once(),
			uow.On("OrderItemRepository").Return(items).Once(),
			items.On("DeleteAllForOrder", ctx, kernel.ID(1)).Return(removed, nil).Once(),
			uow.On("OrderRepository").Return(orders).Once(),
			orders.On("Delete", ctx, kernel.ID(1)).Return(nil).Once(),
			uow.On("Commit", ctx).Return(nil).Once(),
			uow.On("Rollback", ctx).Return(nil).Once(),
		)

		h := commands.NewDeleteOrderCommandHandler(compositionFactory{newFactory(uow)})
		require.NoError(t, h.Handle(ctx, cmd))

		items.AssertExpectations(t)
		orders.AssertExpectations(t)
		uow.AssertExpectations(t)
	}
}

func TestDeleteOrderCommandHandler_Handle_MissingOrderRollsBack(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteOrderCommand(9)

	orders := new(MockOrderRepository)
	items := new(MockOrderItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderItemRepository").Return(items).Once(),
		items.On("DeleteAllForOrder", ctx, kernel.ID(9)).Return(int64(0), nil).Once(),
		uow.On("OrderRepository").Return(orders).Once(),
		orders.On("Delete", ctx, kernel.ID(9)).Return(errs.NewObjectNotFoundError("order", int64(9))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteOrderCommandHandler(compositionFactory{newFactory(uow)})
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrObjectNotFound)
	uow.AssertNotCalled(t, "Commit", mock.Anything)
	uow.AssertExpectations(t)
}

func TestDeleteOrderCommandHandler_Handle_ItemDeleteFails(t *testing.T) {
	ctx := t.Context()
	cmd, _ := commands.NewDeleteOrderCommand(1)

	items := new(MockOrderItemRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderItemRepository").Return(items).Once(),
		items.On("DeleteAllForOrder", ctx, kernel.ID(1)).
			Return(int64(0), errs.NewStorageUnavailableError(errors.New("conn reset"))).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	h := commands.NewDeleteOrderCommandHandler(compositionFactory{newFactory(uow)})
	err := h.Handle(ctx, cmd)

	require.ErrorIs(t, err, errs.ErrStorageUnavailable)
	uow.AssertNotCalled(t, "OrderRepository")
	uow.AssertExpectations(t)
}
