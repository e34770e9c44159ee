package queries

import (
	"context"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ListDeliveriesQueryHandler struct {
	db *gorm.DB
}

func NewListDeliveriesQueryHandler(db *gorm.DB) ListDeliveriesQueryHandler {
	return ListDeliveriesQueryHandler{db: db}
}

func (h ListDeliveriesQueryHandler) Handle(ctx context.Context, query ListDeliveriesQuery) ([]DeliveryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}
	return selectDeliveries(h.db.WithContext(ctx), `ORDER BY d.created_at DESC, d.id`)
}

func selectDeliveries(db *gorm.DB, tail string, args ...any) ([]DeliveryResponse, error) {
	rows, err := db.Raw(`
		SELECT
			d.id, d.order_id, d.delivery_type_id, dt.label, d.status_id,
			d.distance_cost, d.weight_cost, d.surcharge, d.extra_fee, d.discount, d.final_cost,
			d.created_at
		FROM deliveries d
		JOIN delivery_types dt ON dt.id = d.delivery_type_id
	`+tail, args...).Rows()
	if err != nil {
		return nil, errs.NewStorageError("list deliveries", err)
	}
	defer rows.Close()

	deliveries := make([]DeliveryResponse, 0)
	for rows.Next() {
		var (
			d           DeliveryResponse
			id, orderID uuid.UUID
			statusID    int16
		)

		err = rows.Scan(
			&id, &orderID, &d.DeliveryTypeID, &d.DeliveryTypeLabel, &statusID,
			&d.Cost.DistanceCost, &d.Cost.WeightCost, &d.Cost.Surcharge,
			&d.Cost.ExtraFee, &d.Cost.Discount, &d.Cost.Final,
			&d.CreatedAt,
		)
		if err != nil {
			return nil, errs.NewStorageError("scan delivery", err)
		}

		if d.ID, err = kernel.UUIDFromGoogle(id); err != nil {
			return nil, err
		}
		if d.OrderID, err = kernel.UUIDFromGoogle(orderID); err != nil {
			return nil, err
		}
		d.Status = delivery.Status(statusID)
		d.CreatedAt = d.CreatedAt.UTC()
		deliveries = append(deliveries, d)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("list deliveries", err)
	}

	return deliveries, nil
}
