package clientrepo

import (
	"context"
	"errors"
	"strings"

	"freight/internal/adapters/out/postgres/pgerr"
	"freight/internal/core/domain/model/client"
	"freight/internal/core/domain/model/kernel"
	"freight/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormClientRepository implements ports.ClientRepository using GORM.
type GormClientRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

func NewGormClientRepository(db *gorm.DB, tracker aggregateTracker) *GormClientRepository {
	return &GormClientRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the client. The unique constraints on cpf and email are the
// final word on duplicates, whatever the caller checked before.
func (r *GormClientRepository) Add(ctx context.Context, aggregate *client.Client) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return pgerr.Translate(err, "insert client")
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

func (r *GormClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto ClientDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Google()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("client", id.String())
		}
		return nil, pgerr.Translate(err, "select client")
	}

	return toDomain(dto)
}

func (r *GormClientRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	result := r.db.WithContext(ctx).Delete(&ClientDTO{}, "id = ?", id.Google())
	if result.Error != nil {
		return pgerr.Translate(result.Error, "delete client")
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("client", id.String())
	}
	return nil
}

func (r *GormClientRepository) ExistsByCPF(ctx context.Context, cpf string) (bool, error) {
	return r.exists(ctx, "cpf = ?", client.NormalizeDigits(cpf))
}

func (r *GormClientRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	return r.exists(ctx, "email = ?", strings.ToLower(strings.TrimSpace(email)))
}

func (r *GormClientRepository) exists(ctx context.Context, cond string, value string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&ClientDTO{}).Where(cond, value).Limit(1).Count(&count).Error
	if err != nil {
		return false, pgerr.Translate(err, "count clients")
	}
	return count > 0, nil
}
