package queries

import (
	"context"
	"database/sql"

	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const orderSummarySelect = `
	SELECT
		o.id, o.client_id, o.delivery_type_id, dt.label,
		o.distance, o.distance_rate, o.weight, o.weight_rate, o.created_at,
		d.id, d.status_id, d.final_cost
	FROM orders o
	JOIN delivery_types dt ON dt.id = o.delivery_type_id
	LEFT JOIN deliveries d ON d.order_id = o.id
`

type ListOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListOrdersQueryHandler(db *gorm.DB) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{db: db}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		rows *sql.Rows
		err  error
	)
	db := h.db.WithContext(ctx)
	if clientID := query.ClientID(); clientID != nil {
		rows, err = db.Raw(orderSummarySelect+`
			WHERE o.client_id = ?
			ORDER BY o.created_at DESC, o.id
		`, clientID.Google()).Rows()
	} else {
		rows, err = db.Raw(orderSummarySelect + `
			ORDER BY o.created_at DESC, o.id
		`).Rows()
	}
	if err != nil {
		return nil, errs.NewStorageError("list orders", err)
	}
	defer rows.Close()

	orders := make([]OrderSummary, 0)
	for rows.Next() {
		o, scanErr := scanOrderSummary(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		orders = append(orders, o)
	}

	if err = rows.Err(); err != nil {
		return nil, errs.NewStorageError("list orders", err)
	}

	return orders, nil
}

func scanOrderSummary(rows *sql.Rows) (OrderSummary, error) {
	var (
		o            OrderSummary
		id, clientID uuid.UUID
		deliveryID   uuid.NullUUID
		statusID     sql.NullInt16
	)

	err := rows.Scan(
		&id, &clientID, &o.DeliveryTypeID, &o.DeliveryTypeLabel,
		&o.Distance, &o.DistanceRate, &o.Weight, &o.WeightRate, &o.CreatedAt,
		&deliveryID, &statusID, &o.FinalCost,
	)
	if err != nil {
		return OrderSummary{}, errs.NewStorageError("scan order", err)
	}

	if o.ID, err = kernel.UUIDFromGoogle(id); err != nil {
		return OrderSummary{}, err
	}
	if o.ClientID, err = kernel.UUIDFromGoogle(clientID); err != nil {
		return OrderSummary{}, err
	}
	if deliveryID.Valid {
		did, idErr := kernel.UUIDFromGoogle(deliveryID.UUID)
		if idErr != nil {
			return OrderSummary{}, idErr
		}
		o.DeliveryID = &did
	}
	if statusID.Valid {
		o.Status = delivery.Status(statusID.Int16)
	}
	o.CreatedAt = o.CreatedAt.UTC()
	return o, nil
}
