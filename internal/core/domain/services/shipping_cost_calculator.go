package services

import (
	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/deliverytype"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

var (
	// UrgentSurchargeRate applies to the base of urgent deliveries.
	UrgentSurchargeRate = decimal.RequireFromString("0.20")
	// OverweightThreshold is the weight in kg above which OverweightFee applies.
	OverweightThreshold = decimal.NewFromInt(50)
	OverweightFee       = decimal.RequireFromString("15.00")
	// DiscountThreshold is the subtotal above which DiscountRate applies.
	DiscountThreshold = decimal.RequireFromString("500.00")
	DiscountRate      = decimal.RequireFromString("0.10")
)

// ShippingCostCalculator prices a load. It is pure: the same load and label
// always produce the same breakdown.
//
// Stages run in a fixed order, each rounded to cents:
//
//	base     = round(distance*distanceRate) + round(weight*weightRate)
//	surcharge = round(base*0.20)            if urgent
//	extraFee  = 15.00                       if weight > 50
//	discount  = round(subtotal*0.10)        if subtotal > 500.00
//	final     = base + surcharge + extraFee - discount
//
// Any label other than "urgent" prices as "normal".
type ShippingCostCalculator struct{}

func NewShippingCostCalculator() ShippingCostCalculator {
	return ShippingCostCalculator{}
}

func (ShippingCostCalculator) Calculate(load order.Load, label string) delivery.Cost {
	distanceCost := kernel.RoundMoney(load.Distance.Mul(load.DistanceRate))
	weightCost := kernel.RoundMoney(load.Weight.Mul(load.WeightRate))
	base := distanceCost.Add(weightCost)

	surcharge := decimal.Zero
	if label == deliverytype.UrgentLabel {
		surcharge = kernel.RoundMoney(base.Mul(UrgentSurchargeRate))
	}

	extraFee := decimal.Zero
	if load.Weight.GreaterThan(OverweightThreshold) {
		extraFee = OverweightFee
	}

	subtotal := base.Add(surcharge).Add(extraFee)
	discount := decimal.Zero
	if subtotal.GreaterThan(DiscountThreshold) {
		discount = kernel.RoundMoney(subtotal.Mul(DiscountRate))
	}

	return delivery.NewCost(distanceCost, weightCost, surcharge, extraFee, discount)
}
