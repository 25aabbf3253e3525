package tariffrepo

import (
	"context"
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/tariff"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GormTariffRepository implements TariffRepository using GORM.
type GormTariffRepository struct {
	db *gorm.DB
}

// NewGormTariffRepository creates a new GORM tariff repository.
func NewGormTariffRepository(db *gorm.DB) *GormTariffRepository {
	return &GormTariffRepository{db: db}
}

// GetPriceRows returns the price list rows matching the source language and
// any of the requested target languages. An empty result is not an error.
func (r *GormTariffRepository) GetPriceRows(
	ctx context.Context, sourceLanguageID kernel.UUID, targetLanguageIDs []kernel.UUID,
) ([]tariff.PriceList, error) {
	if err := sourceLanguageID.Validate(); err != nil {
		return nil, err
	}

	targetIDs := make([]uuid.UUID, 0, len(targetLanguageIDs))
	for _, id := range targetLanguageIDs {
		targetIDs = append(targetIDs, id.Bytes())
	}

	var dtos []PriceListDTO
	err := r.db.WithContext(ctx).
		Find(&dtos, "source_language_id = ? AND target_language_id IN ?", sourceLanguageID.Bytes(), targetIDs).
		Error
	if err != nil {
		return nil, err
	}

	rows := make([]tariff.PriceList, 0, len(dtos))
	for _, dto := range dtos {
		row, rowErr := priceListToDomain(dto)
		if rowErr != nil {
			return nil, rowErr
		}
		rows = append(rows, row)
	}

	return rows, nil
}

// GetTerminologyRate returns the surcharge rate for a terminology, or nil when
// none is configured.
func (r *GormTariffRepository) GetTerminologyRate(
	ctx context.Context, terminologyID kernel.UUID,
) (*tariff.TerminologyPriceRate, error) {
	if err := terminologyID.Validate(); err != nil {
		return nil, err
	}

	var dto TerminologyPriceRateDTO
	err := r.db.WithContext(ctx).First(&dto, "terminology_id = ?", terminologyID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil //absence is reported as nil, not an error
		}
		return nil, err
	}

	return terminologyRateToDomain(dto)
}

// GetCompanyOffer returns the company's fixed price offer, or nil when the
// company has none.
func (r *GormTariffRepository) GetCompanyOffer(
	ctx context.Context, companyID kernel.UUID,
) (*tariff.CompanyPriceOffer, error) {
	if err := companyID.Validate(); err != nil {
		return nil, err
	}

	var dto CompanyPriceOfferDTO
	err := r.db.WithContext(ctx).First(&dto, "company_id = ?", companyID.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil //nolint:nilnil //absence is reported as nil, not an error
		}
		return nil, err
	}

	return companyOfferToDomain(dto)
}
