package tariff_test

import (
	"testing"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/tariff"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func tieredRow() tariff.PriceList {
	return tariff.PriceList{
		ID:               kernel.NewUUID(),
		SourceLanguageID: kernel.NewUUID(),
		TargetLanguageID: kernel.NewUUID(),
		Char0To100:       decimal.NewFromInt(10),
		Char100To150:     decimal.NewFromInt(9),
		Char150To200:     decimal.NewFromInt(8),
		Char200To500:     decimal.NewFromInt(7),
		Char500More:      decimal.NewFromInt(6),
	}
}

func TestPriceList_RateFor(t *testing.T) {
	row := tieredRow()

	tests := []struct {
		name      string
		charCount int
		want      int64
	}{
		{"zero count uses the first tier", 0, 10},
		{"just below the first bound", 99, 10},
		{"exactly 100 moves to the second tier", 100, 9},
		{"just below the second bound", 149, 9},
		{"exactly 150 moves to the third tier", 150, 8},
		{"just below the third bound", 199, 8},
		{"exactly 200 moves to the fourth tier", 200, 7},
		{"just below the top bound", 499, 7},
		{"exactly 500 falls into the open tier", 500, 6},
		{"far above the top bound", 100000, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := row.RateFor(tt.charCount)
			assert.True(t, got.Equal(decimal.NewFromInt(tt.want)),
				"RateFor(%d) = %s, want %d", tt.charCount, got, tt.want)
		})
	}
}

func TestCompanyPriceOffer_Applicable(t *testing.T) {
	t.Run("active and calculation-applicable", func(t *testing.T) {
		offer := tariff.CompanyPriceOffer{Active: true, IsApplicableForCalculation: true}
		assert.True(t, offer.Applicable())
	})

	t.Run("inactive offers never apply", func(t *testing.T) {
		offer := tariff.CompanyPriceOffer{Active: false, IsApplicableForCalculation: true}
		assert.False(t, offer.Applicable())
	})

	t.Run("offers excluded from calculation never apply", func(t *testing.T) {
		offer := tariff.CompanyPriceOffer{Active: true, IsApplicableForCalculation: false}
		assert.False(t, offer.Applicable())
	})
}
