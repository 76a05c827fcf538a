package http_test

import (
	"context"

	"github.com/stretchr/testify/mock"
)

type MockHandler[In, Out any] struct {
	mock.Mock
}

func (m *MockHandler[In, Out]) Handle(ctx context.Context, in In) (Out, error) {
	args := m.Called(ctx, in)
	var out Out
	if v := args.Get(0); v != nil {
		out = v.(Out)
	}
	return out, args.Error(1)
}

type MockExecHandler[In any] struct {
	mock.Mock
}

func (m *MockExecHandler[In]) Handle(ctx context.Context, in In) error {
	args := m.Called(ctx, in)
	return args.Error(0)
}
