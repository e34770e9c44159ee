package ports

import (
	"context"

	"freight/internal/core/domain/model/deliverytype"
)

// DeliveryTypeRepository reads the delivery type reference data.
type DeliveryTypeRepository interface {
	// Get returns errs.ObjectNotFoundError when the id is not seeded.
	Get(ctx context.Context, id int64) (*deliverytype.DeliveryType, error)
}
