package http

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name    string
		err     error
		status  int
		message string
	}{
		{
			name:    "reference",
			err:     fmt.Errorf("create item: %w", errs.NewReferenceNotFoundError("order", int64(7))),
			status:  http.StatusNotFound,
			message: "order 7 not found",
		},
		{
			name:    "object",
			err:     errs.NewObjectNotFoundError("customer", int64(2)),
			status:  http.StatusNotFound,
			message: "customer 2 not found",
		},
		{
			name:    "constraint",
			err:     errs.NewConstraintViolationErrorWithCause("fk_orders_courier", errors.New("pq: violates")),
			status:  http.StatusConflict,
			message: "Conflicts with related records: fk_orders_courier",
		},
		{
			name:    "validation",
			err:     errors.Join(errs.NewValueIsOutOfRangeError("quantity", 0, 1, 20)),
			status:  http.StatusBadRequest,
			message: "value is out of range: 0 is quantity, min value is 1, max value is 20",
		},
		{
			name:    "storage",
			err:     errs.NewStorageUnavailableError(errors.New("connection reset")),
			status:  http.StatusInternalServerError,
			message: internalErrorMessage,
		},
		{
			name:    "total overflow",
			err:     fmt.Errorf("%w: %d times %d", kernel.ErrMoneyOverflow, int64(500_000_000_000_000_000), 20),
			status:  http.StatusInternalServerError,
			message: internalErrorMessage,
		},
		{
			name:    "unclassified",
			err:     errors.New("boom"),
			status:  http.StatusInternalServerError,
			message: internalErrorMessage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, message := classify(tt.err)
			assert.Equal(t, tt.status, status)
			assert.Equal(t, tt.message, message)
		})
	}
}
