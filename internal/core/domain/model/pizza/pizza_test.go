package pizza_test

import (
	"testing"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/core/domain/model/pizza"
	"pizza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPizza(t *testing.T) {
	testCases := []struct {
		name      string
		pizzaName string
		price     int64
		wantErrIs error
	}{
		{name: "valid", pizzaName: "Margherita", price: 1200},
		{name: "minimum price", pizzaName: "Marinara", price: pizza.MinPrice},
		{name: "price below minimum", pizzaName: "Marinara", price: 99, wantErrIs: errs.ErrValueIsOutOfRange},
		{name: "maximum price", pizzaName: "Truffle", price: pizza.MaxPrice},
		{name: "price above maximum", pizzaName: "Huge", price: 500_000_000_000_000_000, wantErrIs: errs.ErrValueIsOutOfRange},
		{name: "short name", pizzaName: "Ab", price: 1200, wantErrIs: errs.ErrValueIsInvalid},
		{name: "blank name", pizzaName: "   ", price: 1200, wantErrIs: errs.ErrValueIsRequired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			p, err := pizza.NewPizza(tc.pizzaName, tc.price)
			if tc.wantErrIs != nil {
				require.ErrorIs(t, err, tc.wantErrIs)
				return
			}
			require.NoError(t, err)
			require.NoError(t, p.Validate())
			assert.Equal(t, kernel.Money(tc.price), p.Price())
			assert.Equal(t, kernel.ID(0), p.ID())
		})
	}
}

func TestPizza_Mutations(t *testing.T) {
	p, err := pizza.RestorePizza(3, " Hawaii ", 1500)
	require.NoError(t, err)
	assert.Equal(t, "Hawaii", p.Name())
	assert.Equal(t, kernel.ID(3), p.ID())

	require.NoError(t, p.ChangePrice(1800))
	assert.Equal(t, kernel.Money(1800), p.Price())

	require.Error(t, p.ChangePrice(10))
	require.ErrorIs(t, p.ChangePrice(pizza.MaxPrice+1), errs.ErrValueIsOutOfRange)
	assert.Equal(t, kernel.Money(1800), p.Price())

	require.NoError(t, p.Rename("Hawaiian"))
	assert.Equal(t, "Hawaiian", p.Name())
}

func TestPizza_Validate(t *testing.T) {
	var zero pizza.Pizza
	require.ErrorIs(t, zero.Validate(), pizza.ErrPizzaIsNotConstructed)

	var nilPizza *pizza.Pizza
	require.ErrorIs(t, nilPizza.Validate(), pizza.ErrPizzaIsNotConstructed)
}
