// Package deliveryrepo maps delivery aggregates to the deliveries table.
package deliveryrepo

import (
	"time"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type DeliveryDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID        uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex"`
	DistanceCost   decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	WeightCost     decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Surcharge      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ExtraFee       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Discount       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	FinalCost      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	StatusID       int             `gorm:"type:smallint;not null"`
	DeliveryTypeID int64           `gorm:"not null"`
	CreatedAt      time.Time       `gorm:"not null"`
}

func (DeliveryDTO) TableName() string {
	return "deliveries"
}

func fromDomain(d *delivery.Delivery) DeliveryDTO {
	cost := d.Cost()
	return DeliveryDTO{
		ID:             d.ID().Google(),
		OrderID:        d.OrderID().Google(),
		DistanceCost:   cost.DistanceCost(),
		WeightCost:     cost.WeightCost(),
		Surcharge:      cost.Surcharge(),
		ExtraFee:       cost.ExtraFee(),
		Discount:       cost.Discount(),
		FinalCost:      cost.Final(),
		StatusID:       int(d.Status()),
		DeliveryTypeID: d.DeliveryTypeID(),
	}
}

func toDomain(dto DeliveryDTO) (*delivery.Delivery, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromGoogle(dto.OrderID)
	if err != nil {
		return nil, err
	}

	cost, err := delivery.RestoreCost(
		dto.DistanceCost, dto.WeightCost, dto.Surcharge, dto.ExtraFee, dto.Discount, dto.FinalCost,
	)
	if err != nil {
		return nil, err
	}

	return delivery.RestoreDelivery(id, orderID, cost, delivery.Status(dto.StatusID), dto.DeliveryTypeID)
}
