// Package tariff contains the read-only reference data that drives pricing:
// the tiered per-character price list, terminology surcharge rates, and fixed
// company price offers.
package tariff

import (
	"oms/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Character-count bucket upper bounds for the tiered price list.
// Buckets are evaluated in ascending order with strict < comparisons, so a
// count of exactly 100 selects the [100,150) tier, and counts at or above 500
// fall into the open-ended top tier.
const (
	tierBound0To100   = 100
	tierBound100To150 = 150
	tierBound150To200 = 200
	tierBound200To500 = 500
)

// PriceList is one row of the tiered price table for a
// (source language, target language) pair. Each tier holds the price per
// character for documents whose character count falls into that bucket.
type PriceList struct {
	ID               kernel.UUID
	SourceLanguageID kernel.UUID
	TargetLanguageID kernel.UUID

	Char0To100   decimal.Decimal
	Char100To150 decimal.Decimal
	Char150To200 decimal.Decimal
	Char200To500 decimal.Decimal
	Char500More  decimal.Decimal
}

// RateFor selects the per-character rate for the given character count.
// The first bucket whose upper bound exceeds the count wins.
func (p PriceList) RateFor(charCount int) decimal.Decimal {
	switch {
	case charCount < tierBound0To100:
		return p.Char0To100
	case charCount < tierBound100To150:
		return p.Char100To150
	case charCount < tierBound150To200:
		return p.Char150To200
	case charCount < tierBound200To500:
		return p.Char200To500
	default:
		return p.Char500More
	}
}

// TerminologyPriceRate maps a terminology category to the additive surcharge
// rate applied on top of the tiered base price. A rate must exist for every
// terminology used in a request; its absence is a fatal configuration error,
// not a recoverable business failure.
type TerminologyPriceRate struct {
	ID            kernel.UUID
	TerminologyID kernel.UUID
	Rate          decimal.Decimal
}

// CompanyPriceOffer is a fixed per-character price negotiated with a company.
// When an active, calculation-applicable offer exists for the order's company
// it replaces the tiered lookup entirely; terminology surcharge and campaign
// discount still apply on top.
type CompanyPriceOffer struct {
	ID        kernel.UUID
	CompanyID kernel.UUID
	Price     decimal.Decimal

	Active                     bool
	IsApplicableForCalculation bool
}

// Applicable reports whether the offer replaces the tiered price lookup.
func (o CompanyPriceOffer) Applicable() bool {
	return o.Active && o.IsApplicableForCalculation
}
