package queries

import (
	"context"

	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

type GetOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when no order has the id.
func (h GetOrderQueryHandler) Handle(ctx context.Context, query GetOrderQuery) (OrderDetails, error) {
	if err := query.Validate(); err != nil {
		return OrderDetails{}, err
	}

	db := h.db.WithContext(ctx)
	id := query.OrderID()

	rows, err := db.Raw(orderSummarySelect+`WHERE o.id = ?`, id.Google()).Rows()
	if err != nil {
		return OrderDetails{}, errs.NewStorageError("get order", err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err = rows.Err(); err != nil {
			return OrderDetails{}, errs.NewStorageError("get order", err)
		}
		return OrderDetails{}, errs.NewObjectNotFoundError("order", id.String())
	}

	summary, err := scanOrderSummary(rows)
	if err != nil {
		return OrderDetails{}, err
	}
	_ = rows.Close()
	details := OrderDetails{OrderSummary: summary}

	if summary.DeliveryID == nil {
		return details, nil
	}

	deliveries, err := selectDeliveries(db, `WHERE d.id = ?`, summary.DeliveryID.Google())
	if err != nil {
		return OrderDetails{}, err
	}
	if len(deliveries) > 0 {
		details.Delivery = &deliveries[0]
	}
	return details, nil
}
