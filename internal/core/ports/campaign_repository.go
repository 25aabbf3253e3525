package ports

import (
	"context"

	"oms/internal/core/domain/model/campaign"
	"oms/internal/core/domain/model/kernel"
)

// CampaignRepository defines the persistence contract for campaign items.
// Campaign administration lives outside this service; order creation only
// reads codes and flips the used flag.
type CampaignRepository interface {
	// Get retrieves a campaign item by id.
	Get(ctx context.Context, id kernel.UUID) (*campaign.CampaignItem, error)

	// GetByCode retrieves a campaign item by its unique discount code.
	GetByCode(ctx context.Context, code string) (*campaign.CampaignItem, error)

	// Update persists changes to a campaign item (the used flag).
	Update(ctx context.Context, item *campaign.CampaignItem) error
}
