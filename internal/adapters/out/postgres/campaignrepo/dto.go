// Package campaignrepo provides persistence for campaign items.
package campaignrepo

import (
	"time"

	"oms/internal/core/domain/model/campaign"
	"oms/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CampaignItemDTO represents the database structure for campaign items.
type CampaignItemDTO struct {
	ID           uuid.UUID       `gorm:"type:uuid;primaryKey"`
	Code         string          `gorm:"uniqueIndex"`
	DiscountRate decimal.Decimal `gorm:"type:numeric"`
	StartTime    time.Time
	EndTime      time.Time
	Used         bool
	Active       bool
	Description  string
}

// TableName specifies the database table name for campaign items.
func (CampaignItemDTO) TableName() string {
	return "campaign_items"
}

// fromDomain converts a campaign item to its database representation.
func fromDomain(item *campaign.CampaignItem) CampaignItemDTO {
	return CampaignItemDTO{
		ID:           item.ID().Bytes(),
		Code:         item.Code(),
		DiscountRate: item.DiscountRate(),
		StartTime:    item.StartTime(),
		EndTime:      item.EndTime(),
		Used:         item.IsUsed(),
		Active:       item.IsActive(),
		Description:  item.Description(),
	}
}

// toDomain converts a database DTO to a campaign item using RestoreCampaignItem.
func toDomain(dto CampaignItemDTO) (*campaign.CampaignItem, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return campaign.RestoreCampaignItem(
		id,
		dto.Code,
		dto.DiscountRate,
		dto.StartTime,
		dto.EndTime,
		dto.Used,
		dto.Active,
		dto.Description,
	)
}
