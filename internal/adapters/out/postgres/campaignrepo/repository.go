package campaignrepo

import (
	"context"
	"errors"

	"oms/internal/core/domain/model/campaign"
	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormCampaignRepository implements CampaignRepository using GORM.
type GormCampaignRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormCampaignRepository creates a new GORM campaign repository.
func NewGormCampaignRepository(db *gorm.DB, tracker aggregateTracker) *GormCampaignRepository {
	return &GormCampaignRepository{
		db:      db,
		tracker: tracker,
	}
}

// Get retrieves a campaign item by ID.
func (r *GormCampaignRepository) Get(ctx context.Context, id kernel.UUID) (*campaign.CampaignItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto CampaignItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("campaignItem", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByCode retrieves a campaign item by its discount code.
func (r *GormCampaignRepository) GetByCode(ctx context.Context, code string) (*campaign.CampaignItem, error) {
	var dto CampaignItemDTO
	if err := r.db.WithContext(ctx).First(&dto, "code = ?", code).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("campaignCode", code)
		}
		return nil, err
	}

	return toDomain(dto)
}

// Update saves an existing campaign item to the database.
// A write that affects zero rows reports a persistence error.
func (r *GormCampaignRepository) Update(ctx context.Context, item *campaign.CampaignItem) error {
	if err := item.Validate(); err != nil {
		return err
	}

	dto := fromDomain(item)
	result := r.db.WithContext(ctx).
		Model(&CampaignItemDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceErrorWithCause("campaign item", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewPersistenceError("campaign item")
	}

	r.tracker.TrackAggregate(item.ID(), item)
	return nil
}
