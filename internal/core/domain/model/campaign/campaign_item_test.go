package campaign_test

import (
	"testing"
	"time"

	"oms/internal/core/domain/model/campaign"
	"oms/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItem(t *testing.T, start, end time.Time) *campaign.CampaignItem {
	t.Helper()

	item, err := campaign.NewCampaignItem(
		kernel.NewUUID(), "SPRING20", decimal.NewFromFloat(0.2), start, end, "seasonal discount")
	require.NoError(t, err)
	return item
}

func TestNewCampaignItem(t *testing.T) {
	now := time.Now().UTC()

	t.Run("should create an unused active item", func(t *testing.T) {
		item := validItem(t, now, now.Add(time.Hour))

		require.NoError(t, item.Validate())
		assert.Equal(t, "SPRING20", item.Code())
		assert.False(t, item.IsUsed())
		assert.True(t, item.IsActive())
		assert.True(t, item.DiscountRate().Equal(decimal.NewFromFloat(0.2)))
	})

	t.Run("should fail without a code", func(t *testing.T) {
		item, err := campaign.NewCampaignItem(
			kernel.NewUUID(), "", decimal.NewFromFloat(0.2), now, now.Add(time.Hour), "")

		require.ErrorIs(t, err, campaign.ErrCodeIsRequired)
		assert.Nil(t, item)
	})

	t.Run("should fail with a non-positive discount rate", func(t *testing.T) {
		item, err := campaign.NewCampaignItem(
			kernel.NewUUID(), "X", decimal.Zero, now, now.Add(time.Hour), "")

		require.ErrorIs(t, err, campaign.ErrDiscountRateIsInvalid)
		assert.Nil(t, item)
	})

	t.Run("should fail with a discount rate above one", func(t *testing.T) {
		item, err := campaign.NewCampaignItem(
			kernel.NewUUID(), "X", decimal.NewFromFloat(1.5), now, now.Add(time.Hour), "")

		require.ErrorIs(t, err, campaign.ErrDiscountRateIsInvalid)
		assert.Nil(t, item)
	})

	t.Run("should accept a full discount", func(t *testing.T) {
		item, err := campaign.NewCampaignItem(
			kernel.NewUUID(), "FREE", decimal.NewFromInt(1), now, now.Add(time.Hour), "")

		require.NoError(t, err)
		assert.True(t, item.DiscountRate().Equal(decimal.NewFromInt(1)))
	})
}

func TestCampaignItem_EligibleAt(t *testing.T) {
	now := time.Now().UTC()

	t.Run("eligible inside the validity window", func(t *testing.T) {
		item := validItem(t, now.Add(-time.Hour), now.Add(time.Hour))

		assert.True(t, item.EligibleAt(now))
	})

	t.Run("eligible exactly at the window bounds", func(t *testing.T) {
		item := validItem(t, now, now.Add(time.Hour))

		assert.True(t, item.EligibleAt(now))
		assert.True(t, item.EligibleAt(now.Add(time.Hour)))
	})

	t.Run("not eligible before the window opens", func(t *testing.T) {
		item := validItem(t, now.Add(time.Minute), now.Add(time.Hour))

		assert.False(t, item.EligibleAt(now))
	})

	t.Run("not eligible after the window closes", func(t *testing.T) {
		item := validItem(t, now.Add(-2*time.Hour), now.Add(-time.Hour))

		assert.False(t, item.EligibleAt(now))
	})

	t.Run("a used code is never eligible again", func(t *testing.T) {
		item := validItem(t, now.Add(-time.Hour), now.Add(time.Hour))

		item.MarkUsed()

		assert.False(t, item.EligibleAt(now))
	})

	t.Run("compensation releases the code", func(t *testing.T) {
		item := validItem(t, now.Add(-time.Hour), now.Add(time.Hour))

		item.MarkUsed()
		item.MarkUnused()

		assert.True(t, item.EligibleAt(now))
	})

	t.Run("an inactive code is not eligible", func(t *testing.T) {
		item, err := campaign.RestoreCampaignItem(
			kernel.NewUUID(), "OLD", decimal.NewFromFloat(0.2),
			now.Add(-time.Hour), now.Add(time.Hour), false, false, "")
		require.NoError(t, err)

		assert.False(t, item.EligibleAt(now))
	})
}
