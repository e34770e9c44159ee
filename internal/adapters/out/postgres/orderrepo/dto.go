// Package orderrepo maps order aggregates to the orders table.
package orderrepo

import (
	"time"

	"freight/internal/core/domain/model/kernel"
	"freight/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO is the row shape of the orders table.
type OrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	ClientID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Distance       decimal.Decimal `gorm:"type:numeric;not null"`
	DistanceRate   decimal.Decimal `gorm:"type:numeric;not null"`
	Weight         decimal.Decimal `gorm:"type:numeric;not null"`
	WeightRate     decimal.Decimal `gorm:"type:numeric;not null"`
	DeliveryTypeID int64           `gorm:"not null"`
	CreatedAt      time.Time       `gorm:"not null"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

func fromDomain(o *order.Order) OrderDTO {
	load := o.Load()
	return OrderDTO{
		ID:             o.ID().Google(),
		ClientID:       o.ClientID().Google(),
		Distance:       load.Distance,
		DistanceRate:   load.DistanceRate,
		Weight:         load.Weight,
		WeightRate:     load.WeightRate,
		DeliveryTypeID: o.DeliveryTypeID(),
		CreatedAt:      o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromGoogle(dto.ID)
	if err != nil {
		return nil, err
	}

	clientID, err := kernel.UUIDFromGoogle(dto.ClientID)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, clientID, order.Load{
		Distance:     dto.Distance,
		DistanceRate: dto.DistanceRate,
		Weight:       dto.Weight,
		WeightRate:   dto.WeightRate,
	}, dto.DeliveryTypeID, dto.CreatedAt.UTC())
}
