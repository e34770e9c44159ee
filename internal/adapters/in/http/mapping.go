package http

import (
	"freight/internal/adapters/in/http/openapi"
	"freight/internal/core/application/usecases/queries"
	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

func money(d decimal.Decimal) string {
	return d.StringFixed(kernel.MoneyPlaces)
}

func toCost(c delivery.Cost) openapi.Cost {
	return openapi.Cost{
		DistanceCost: money(c.DistanceCost()),
		WeightCost:   money(c.WeightCost()),
		Surcharge:    money(c.Surcharge()),
		ExtraFee:     money(c.ExtraFee()),
		Discount:     money(c.Discount()),
		FinalCost:    money(c.Final()),
	}
}

func toOrderSummary(o queries.OrderSummary) openapi.OrderSummary {
	out := openapi.OrderSummary{
		Id:             o.ID.Google(),
		ClientId:       o.ClientID.Google(),
		DeliveryTypeId: o.DeliveryTypeID,
		DeliveryType:   o.DeliveryTypeLabel,
		Distance:       o.Distance,
		DistanceRate:   o.DistanceRate,
		Weight:         o.Weight,
		WeightRate:     o.WeightRate,
		CreatedAt:      o.CreatedAt,
	}
	if o.DeliveryID != nil {
		id := o.DeliveryID.Google()
		out.DeliveryId = &id
		status := openapi.DeliveryStatus(o.Status.String())
		out.Status = &status
	}
	if o.FinalCost.Valid {
		final := money(o.FinalCost.Decimal)
		out.FinalCost = &final
	}
	return out
}

func toDelivery(d queries.DeliveryResponse) openapi.Delivery {
	return openapi.Delivery{
		Id:             d.ID.Google(),
		OrderId:        d.OrderID.Google(),
		DeliveryTypeId: d.DeliveryTypeID,
		DeliveryType:   d.DeliveryTypeLabel,
		Status:         openapi.DeliveryStatus(d.Status.String()),
		Cost: openapi.Cost{
			DistanceCost: money(d.Cost.DistanceCost),
			WeightCost:   money(d.Cost.WeightCost),
			Surcharge:    money(d.Cost.Surcharge),
			ExtraFee:     money(d.Cost.ExtraFee),
			Discount:     money(d.Cost.Discount),
			FinalCost:    money(d.Cost.Final),
		},
		CreatedAt: d.CreatedAt,
	}
}
