package queries

import (
	"context"

	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

type CountUnpairedOrdersQueryHandler struct {
	db *gorm.DB
}

func NewCountUnpairedOrdersQueryHandler(db *gorm.DB) CountUnpairedOrdersQueryHandler {
	return CountUnpairedOrdersQueryHandler{db: db}
}

func (h CountUnpairedOrdersQueryHandler) Handle(
	ctx context.Context,
	query CountUnpairedOrdersQuery,
) (UnpairedCounts, error) {
	if err := query.Validate(); err != nil {
		return UnpairedCounts{}, err
	}

	var counts UnpairedCounts
	row := h.db.WithContext(ctx).Raw(`
		SELECT
			(SELECT count(*) FROM orders o
			 WHERE NOT EXISTS (SELECT 1 FROM deliveries d WHERE d.order_id = o.id)),
			(SELECT count(*) FROM deliveries d
			 WHERE NOT EXISTS (SELECT 1 FROM orders o WHERE o.id = d.order_id))
	`).Row()
	if err := row.Scan(&counts.OrdersWithoutDelivery, &counts.DeliveriesWithoutOrder); err != nil {
		return UnpairedCounts{}, errs.NewStorageError("count unpaired orders", err)
	}

	return counts, nil
}
