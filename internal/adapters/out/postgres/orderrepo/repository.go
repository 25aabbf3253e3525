package orderrepo

import (
	"context"
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"
	"oms/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order aggregate to the database, including its details and
// operations.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return errs.NewPersistenceErrorWithCause("order", err)
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order aggregate to the database. The order row is
// rewritten in full, and details and operations are upserted so rows created
// by the event ingress join rows that already existed. A write that affects
// zero order rows reports a persistence error.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	details := dto.Details
	dto.Details = nil

	result := r.db.WithContext(ctx).
		Model(&OrderDTO{}).
		Where("id = ?", dto.ID).
		Select("*").
		Omit("id", "Details").
		Updates(&dto)
	if result.Error != nil {
		return errs.NewPersistenceErrorWithCause("order", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.NewPersistenceError("order")
	}

	for i := range details {
		operation := details[i].Operation
		details[i].Operation = TranslationOperationDTO{}

		err := r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Omit("Operation").
			Create(&details[i]).Error
		if err != nil {
			return errs.NewPersistenceErrorWithCause("order detail", err)
		}

		err = r.db.WithContext(ctx).
			Clauses(clause.OnConflict{UpdateAll: true}).
			Create(&operation).Error
		if err != nil {
			return errs.NewPersistenceErrorWithCause("translation operation", err)
		}
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order aggregate by ID with its details and operations.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	err := r.db.WithContext(ctx).
		Preload("Details").
		Preload("Details.Operation").
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("order", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetByOrderDetailID retrieves the order aggregate owning the given detail.
func (r *GormOrderRepository) GetByOrderDetailID(
	ctx context.Context, detailID kernel.UUID,
) (*order.Order, error) {
	if err := detailID.Validate(); err != nil {
		return nil, err
	}

	var detail OrderDetailDTO
	err := r.db.WithContext(ctx).First(&detail, "id = ?", detailID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderDetail", detailID.String())
		}
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(detail.OrderID[:])
	if err != nil {
		return nil, err
	}

	return r.Get(ctx, orderID)
}

// GetByTranslationOperationID retrieves the order aggregate owning the detail
// bound to the given translation operation.
func (r *GormOrderRepository) GetByTranslationOperationID(
	ctx context.Context, operationID kernel.UUID,
) (*order.Order, error) {
	if err := operationID.Validate(); err != nil {
		return nil, err
	}

	var operation TranslationOperationDTO
	err := r.db.WithContext(ctx).First(&operation, "id = ?", operationID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("translationOperation", operationID.String())
		}
		return nil, err
	}

	detailID, err := kernel.UUIDFromBytes(operation.OrderDetailID[:])
	if err != nil {
		return nil, err
	}

	return r.GetByOrderDetailID(ctx, detailID)
}
