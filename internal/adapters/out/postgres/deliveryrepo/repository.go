package deliveryrepo

import (
	"context"
	"errors"

	"freight/internal/adapters/out/postgres/pgerr"
	"freight/internal/core/domain/model/delivery"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormDeliveryRepository implements ports.DeliveryRepository using GORM.
type GormDeliveryRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormDeliveryRepository(db *gorm.DB, tracker aggregateTracker) *GormDeliveryRepository {
	return &GormDeliveryRepository{
		db:      db,
		tracker: tracker,
	}
}

func (r *GormDeliveryRepository) Add(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "insert delivery")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update writes the status; the cost breakdown never changes after insert.
func (r *GormDeliveryRepository) Update(ctx context.Context, aggregate *delivery.Delivery) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).
		Model(&DeliveryDTO{}).
		Where("id = ?", aggregate.ID().Google()).
		Update("status_id", int(aggregate.Status()))
	if result.Error != nil {
		return pgerr.Translate(result.Error, "update delivery")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("delivery", aggregate.ID().String())
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "id = ?", id, "delivery")
}

// GetForUpdate takes a row lock (SELECT ... FOR UPDATE). Outside a
// transaction the lock is released as soon as the statement ends.
func (r *GormDeliveryRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx).Clauses(clause.Locking{Strength: "UPDATE"}), "id = ?", id, "delivery")
}

func (r *GormDeliveryRepository) GetByOrderID(ctx context.Context, orderID kernel.UUID) (*delivery.Delivery, error) {
	if err := orderID.Validate(); err != nil {
		return nil, err
	}
	return r.first(r.db.WithContext(ctx), "order_id = ?", orderID, "delivery of order")
}

func (r *GormDeliveryRepository) DeleteByOrderID(ctx context.Context, orderID kernel.UUID) (bool, error) {
	if err := orderID.Validate(); err != nil {
		return false, err
	}

	result := r.db.WithContext(ctx).Delete(&DeliveryDTO{}, "order_id = ?", orderID.Google())
	if result.Error != nil {
		return false, pgerr.Translate(result.Error, "delete delivery")
	}
	return result.RowsAffected > 0, nil
}

func (r *GormDeliveryRepository) first(
	db *gorm.DB,
	cond string,
	id kernel.UUID,
	what string,
) (*delivery.Delivery, error) {
	var dto DeliveryDTO
	if err := db.First(&dto, cond, id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError(what, id.String())
		}
		return nil, pgerr.Translate(err, "select delivery")
	}
	return toDomain(dto)
}
