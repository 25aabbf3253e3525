package services

import (
	"errors"

	"oms/internal/core/domain/model/tariff"

	"github.com/shopspring/decimal"
)

// ErrTerminologyRateNotDefined is returned when no terminology price rate
// exists for the requested terminology. Every terminology used in a request
// must have a configured rate; its absence is a configuration fault, not a
// recoverable business failure.
var ErrTerminologyRateNotDefined = errors.New("no terminology price rate is defined")

// PriceCalculator is the pure pricing engine for translation orders and
// document parts.
//
// The calculation:
//  1. Base unit price: the company's fixed price when an active,
//     calculation-applicable offer exists; otherwise the sum, over every
//     price list row matching the request, of the per-character rate for the
//     character-count bucket.
//  2. Subtotal: base unit price multiplied by the character count.
//  3. Terminology surcharge: subtotal * rate is added to the subtotal.
//  4. Campaign discount: result * discountRate is subtracted, when supplied.
//
// VAT is not computed here; the caller derives it from the returned price.
// No matching price rows yields a zero base price rather than an error,
// a known weak spot callers should guard against.
type PriceCalculator struct{}

// NewPriceCalculator creates a new PriceCalculator instance.
func NewPriceCalculator() PriceCalculator {
	return PriceCalculator{}
}

// PriceInput carries everything the calculation needs. PriceRows must already
// be filtered to the order's source language and requested target languages.
// TerminologyRate is mandatory; CompanyOffer and CampaignDiscountRate are
// optional.
type PriceInput struct {
	PriceRows            []tariff.PriceList
	CharCount            int
	TerminologyRate      *tariff.TerminologyPriceRate
	CompanyOffer         *tariff.CompanyPriceOffer
	CampaignDiscountRate *decimal.Decimal
}

// Calculate computes the calculated price for the given input.
// A document-part-level price uses the same algorithm keyed on that part's
// own character count, enabling per-part fairness in a multi-target-language
// order.
func (c PriceCalculator) Calculate(in PriceInput) (decimal.Decimal, error) {
	if in.TerminologyRate == nil {
		return decimal.Zero, ErrTerminologyRateNotDefined
	}

	unitPrice := decimal.Zero
	if in.CompanyOffer != nil && in.CompanyOffer.Applicable() {
		unitPrice = in.CompanyOffer.Price
	} else {
		for _, row := range in.PriceRows {
			unitPrice = unitPrice.Add(row.RateFor(in.CharCount))
		}
	}

	price := unitPrice.Mul(decimal.NewFromInt(int64(in.CharCount)))
	price = price.Add(price.Mul(in.TerminologyRate.Rate))

	if in.CampaignDiscountRate != nil {
		price = price.Sub(price.Mul(*in.CampaignDiscountRate))
	}

	return price, nil
}
