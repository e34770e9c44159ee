// Package deliverytyperepo reads the delivery_types reference table.
package deliverytyperepo

import (
	"context"
	"errors"

	"freight/internal/adapters/out/postgres/pgerr"
	"freight/internal/core/domain/model/deliverytype"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

type DeliveryTypeDTO struct {
	ID    int64  `gorm:"primaryKey;autoIncrement:false"`
	Label string `gorm:"not null;uniqueIndex"`
}

func (DeliveryTypeDTO) TableName() string {
	return "delivery_types"
}

// GormDeliveryTypeRepository implements ports.DeliveryTypeRepository.
type GormDeliveryTypeRepository struct {
	db *gorm.DB
}

func NewGormDeliveryTypeRepository(db *gorm.DB) *GormDeliveryTypeRepository {
	return &GormDeliveryTypeRepository{db: db}
}

func (r *GormDeliveryTypeRepository) Get(ctx context.Context, id int64) (*deliverytype.DeliveryType, error) {
	var dto DeliveryTypeDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("deliveryTypeId", id)
		}
		return nil, pgerr.Translate(err, "select delivery type")
	}

	return deliverytype.NewDeliveryType(dto.ID, dto.Label)
}
