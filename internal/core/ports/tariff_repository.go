package ports

import (
	"context"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/tariff"
)

// TariffRepository provides read access to the pricing reference data.
// The tables are maintained elsewhere; this service only reads them.
type TariffRepository interface {
	// GetPriceRows returns the price list rows matching the source language
	// and any of the requested target languages. An empty result is not an
	// error; it yields a zero base price downstream.
	GetPriceRows(ctx context.Context, sourceLanguageID kernel.UUID, targetLanguageIDs []kernel.UUID) ([]tariff.PriceList, error)

	// GetTerminologyRate returns the surcharge rate for a terminology,
	// or nil when none is configured.
	GetTerminologyRate(ctx context.Context, terminologyID kernel.UUID) (*tariff.TerminologyPriceRate, error)

	// GetCompanyOffer returns the company's fixed price offer, or nil when the
	// company has none.
	GetCompanyOffer(ctx context.Context, companyID kernel.UUID) (*tariff.CompanyPriceOffer, error)
}
