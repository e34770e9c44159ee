package delivery

import (
	"errors"
	"fmt"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"
	"freight/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrCostIsNotConstructed = errors.New("Cost must be created via NewCost or RestoreCost")

// Cost is the itemized price of a delivery. Every component is rounded to cents
// and the final amount is derived from them.
type Cost struct {
	distanceCost decimal.Decimal
	weightCost   decimal.Decimal
	surcharge    decimal.Decimal
	extraFee     decimal.Decimal
	discount     decimal.Decimal
	final        decimal.Decimal
	guard        guard.ConstructorGuard
}

// NewCost derives the final amount from the components.
func NewCost(distanceCost, weightCost, surcharge, extraFee, discount decimal.Decimal) Cost {
	c := Cost{
		distanceCost: kernel.RoundMoney(distanceCost),
		weightCost:   kernel.RoundMoney(weightCost),
		surcharge:    kernel.RoundMoney(surcharge),
		extraFee:     kernel.RoundMoney(extraFee),
		discount:     kernel.RoundMoney(discount),
		guard:        guard.NewConstructorGuard(),
	}
	c.final = c.Subtotal().Sub(c.discount)
	return c
}

// RestoreCost rebuilds a stored breakdown and rejects it when final does not reconcile.
func RestoreCost(distanceCost, weightCost, surcharge, extraFee, discount, final decimal.Decimal) (Cost, error) {
	c := NewCost(distanceCost, weightCost, surcharge, extraFee, discount)
	if !c.final.Equal(final) {
		return Cost{}, errs.NewValueIsInvalidErrorWithCause(
			"finalCost",
			fmt.Errorf("%s does not reconcile with components (expected %s)", final, c.final),
		)
	}
	if err := c.Validate(); err != nil {
		return Cost{}, err
	}
	return c, nil
}

// Validate checks construction and that no component is negative.
func (c Cost) Validate() error {
	if err := c.guard.Validate(ErrCostIsNotConstructed); err != nil {
		return err
	}
	for name, v := range map[string]decimal.Decimal{
		"distanceCost": c.distanceCost,
		"weightCost":   c.weightCost,
		"surcharge":    c.surcharge,
		"extraFee":     c.extraFee,
		"discount":     c.discount,
		"finalCost":    c.final,
	} {
		if v.IsNegative() {
			return errs.NewValueIsOutOfRangeError(name, v.String(), 0, "unbounded")
		}
	}
	return nil
}

func (c Cost) DistanceCost() decimal.Decimal { return c.distanceCost }
func (c Cost) WeightCost() decimal.Decimal   { return c.weightCost }
func (c Cost) Surcharge() decimal.Decimal    { return c.surcharge }
func (c Cost) ExtraFee() decimal.Decimal     { return c.extraFee }
func (c Cost) Discount() decimal.Decimal     { return c.discount }
func (c Cost) Final() decimal.Decimal        { return c.final }

// Base is distanceCost + weightCost.
func (c Cost) Base() decimal.Decimal {
	return c.distanceCost.Add(c.weightCost)
}

// Subtotal is the amount before discount.
func (c Cost) Subtotal() decimal.Decimal {
	return c.Base().Add(c.surcharge).Add(c.extraFee)
}
