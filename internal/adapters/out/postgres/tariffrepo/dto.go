// Package tariffrepo provides read access to the pricing reference tables.
// The tables are maintained by an external administration tool; this service
// only reads them, so the package carries no write path.
package tariffrepo

import (
	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/tariff"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PriceListDTO represents one price list row keyed by language pair.
type PriceListDTO struct {
	ID               uuid.UUID `gorm:"type:uuid;primaryKey"`
	SourceLanguageID uuid.UUID `gorm:"type:uuid;index"`
	TargetLanguageID uuid.UUID `gorm:"type:uuid;index"`

	Char0To100   decimal.Decimal `gorm:"column:char_0_to_100;type:numeric"`
	Char100To150 decimal.Decimal `gorm:"column:char_100_to_150;type:numeric"`
	Char150To200 decimal.Decimal `gorm:"column:char_150_to_200;type:numeric"`
	Char200To500 decimal.Decimal `gorm:"column:char_200_to_500;type:numeric"`
	Char500More  decimal.Decimal `gorm:"column:char_500_more;type:numeric"`
}

// TableName specifies the database table name for price list rows.
func (PriceListDTO) TableName() string {
	return "price_lists"
}

// TerminologyPriceRateDTO represents a terminology surcharge rate row.
type TerminologyPriceRateDTO struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TerminologyID uuid.UUID       `gorm:"type:uuid;uniqueIndex"`
	Rate          decimal.Decimal `gorm:"type:numeric"`
}

// TableName specifies the database table name for terminology rates.
func (TerminologyPriceRateDTO) TableName() string {
	return "terminology_price_rates"
}

// CompanyPriceOfferDTO represents a company's fixed price offer row.
type CompanyPriceOfferDTO struct {
	ID                         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID                  uuid.UUID       `gorm:"type:uuid;index"`
	Price                      decimal.Decimal `gorm:"type:numeric"`
	Active                     bool
	IsApplicableForCalculation bool
}

// TableName specifies the database table name for company price offers.
func (CompanyPriceOfferDTO) TableName() string {
	return "company_price_offers"
}

func priceListToDomain(dto PriceListDTO) (tariff.PriceList, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return tariff.PriceList{}, err
	}
	sourceID, err := kernel.UUIDFromBytes(dto.SourceLanguageID[:])
	if err != nil {
		return tariff.PriceList{}, err
	}
	targetID, err := kernel.UUIDFromBytes(dto.TargetLanguageID[:])
	if err != nil {
		return tariff.PriceList{}, err
	}

	return tariff.PriceList{
		ID:               id,
		SourceLanguageID: sourceID,
		TargetLanguageID: targetID,
		Char0To100:       dto.Char0To100,
		Char100To150:     dto.Char100To150,
		Char150To200:     dto.Char150To200,
		Char200To500:     dto.Char200To500,
		Char500More:      dto.Char500More,
	}, nil
}

func terminologyRateToDomain(dto TerminologyPriceRateDTO) (*tariff.TerminologyPriceRate, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	terminologyID, err := kernel.UUIDFromBytes(dto.TerminologyID[:])
	if err != nil {
		return nil, err
	}

	return &tariff.TerminologyPriceRate{
		ID:            id,
		TerminologyID: terminologyID,
		Rate:          dto.Rate,
	}, nil
}

func companyOfferToDomain(dto CompanyPriceOfferDTO) (*tariff.CompanyPriceOffer, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	companyID, err := kernel.UUIDFromBytes(dto.CompanyID[:])
	if err != nil {
		return nil, err
	}

	return &tariff.CompanyPriceOffer{
		ID:                         id,
		CompanyID:                  companyID,
		Price:                      dto.Price,
		Active:                     dto.Active,
		IsApplicableForCalculation: dto.IsApplicableForCalculation,
	}, nil
}
