// Package pizza models the catalog: named pizzas with a unit price.
package pizza

import (
	"errors"

	"pizza/internal/core/domain/model/kernel"
	"pizza/internal/pkg/guard"
)

const (
	// MinPrice is the lowest accepted unit price in minor units.
	MinPrice = 100
	// MaxPrice is the highest accepted unit price in minor units.
	MaxPrice = 100_000_000
)

var ErrPizzaIsNotConstructed = errors.New("Pizza must be created via NewPizza or RestorePizza constructor")

// Pizza is a catalog entry. Its price is read live by order totals, so changing
// it reprices every order that references the pizza.
type Pizza struct {
	id    kernel.ID
	name  string
	price kernel.Money
	guard guard.ConstructorGuard
}

// NewPizza creates a pizza that has not been persisted yet.
func NewPizza(name string, price int64) (*Pizza, error) {
	p := &Pizza{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		p.setName(name),
		p.setPrice(price),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// RestorePizza rebuilds a persisted pizza.
func RestorePizza(id kernel.ID, name string, price int64) (*Pizza, error) {
	p, err := NewPizza(name, price)
	if err != nil {
		return nil, err
	}
	if err = id.Validate(); err != nil {
		return nil, err
	}
	p.id = id
	return p, nil
}

func (p *Pizza) Validate() error {
	if p == nil {
		return ErrPizzaIsNotConstructed
	}
	return p.guard.Validate(ErrPizzaIsNotConstructed)
}

func (p *Pizza) ID() kernel.ID {
	return p.id
}

func (p *Pizza) Name() string {
	return p.name
}

func (p *Pizza) Price() kernel.Money {
	return p.price
}

// Rename replaces the pizza name.
func (p *Pizza) Rename(name string) error {
	return p.setName(name)
}

// ChangePrice replaces the unit price.
func (p *Pizza) ChangePrice(price int64) error {
	return p.setPrice(price)
}

func (p *Pizza) setName(name string) error {
	v, err := kernel.NewText("name", name)
	if err != nil {
		return err
	}
	p.name = v
	return nil
}

func (p *Pizza) setPrice(price int64) error {
	v, err := kernel.NewMoney("price", price, MinPrice, MaxPrice)
	if err != nil {
		return err
	}
	p.price = v
	return nil
}
