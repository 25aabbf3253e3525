// Package campaign contains the campaign item entity: a time-boxed,
// single-use discount code consumed by order creation. Campaign
// administration lives outside this service; this package only models
// eligibility and the used flag.
package campaign

import (
	"errors"
	"time"

	"oms/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

var (
	// ErrCampaignItemIsNotConstructed is returned when a CampaignItem was not
	// created through NewCampaignItem or RestoreCampaignItem.
	ErrCampaignItemIsNotConstructed = errors.New(
		"CampaignItem must be created via NewCampaignItem constructor",
	)

	// ErrCodeIsRequired is returned when a campaign item is constructed
	// without a discount code.
	ErrCodeIsRequired = errors.New("campaign code is required")

	// ErrDiscountRateIsInvalid is returned when the discount rate is not
	// within (0, 1].
	ErrDiscountRateIsInvalid = errors.New("discount rate must be within (0, 1]")
)

// CampaignItem is a time-boxed, single-use discount code.
//
// Eligibility invariant: a code may be applied only while
// !used && active && startTime <= now <= endTime. Once marked used it must
// never be applied by a subsequent order, regardless of code match.
type CampaignItem struct {
	id           kernel.UUID
	code         string
	discountRate decimal.Decimal
	startTime    time.Time
	endTime      time.Time
	used         bool
	active       bool
	description  string

	isConstructed bool
}

// NewCampaignItem creates an unused, active campaign item.
func NewCampaignItem(
	id kernel.UUID,
	code string,
	discountRate decimal.Decimal,
	startTime, endTime time.Time,
	description string,
) (*CampaignItem, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if code == "" {
		return nil, ErrCodeIsRequired
	}
	if !discountRate.IsPositive() || discountRate.GreaterThan(decimal.NewFromInt(1)) {
		return nil, ErrDiscountRateIsInvalid
	}

	return &CampaignItem{
		id:            id,
		code:          code,
		discountRate:  discountRate,
		startTime:     startTime,
		endTime:       endTime,
		active:        true,
		description:   description,
		isConstructed: true,
	}, nil
}

// RestoreCampaignItem reconstructs a campaign item from persistence.
func RestoreCampaignItem(
	id kernel.UUID,
	code string,
	discountRate decimal.Decimal,
	startTime, endTime time.Time,
	used, active bool,
	description string,
) (*CampaignItem, error) {
	item, err := NewCampaignItem(id, code, discountRate, startTime, endTime, description)
	if err != nil {
		return nil, err
	}
	item.used = used
	item.active = active
	return item, nil
}

// Validate ensures the item was created through a constructor.
func (c *CampaignItem) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCampaignItemIsNotConstructed
	}
	return nil
}

// ID returns the campaign item's unique identifier.
func (c *CampaignItem) ID() kernel.UUID {
	return c.id
}

// Code returns the discount code.
func (c *CampaignItem) Code() string {
	return c.code
}

// DiscountRate returns the fractional discount applied to an order's price.
func (c *CampaignItem) DiscountRate() decimal.Decimal {
	return c.discountRate
}

// StartTime returns the start of the validity window.
func (c *CampaignItem) StartTime() time.Time {
	return c.startTime
}

// EndTime returns the end of the validity window.
func (c *CampaignItem) EndTime() time.Time {
	return c.endTime
}

// IsUsed reports whether the code has already been consumed by an order.
func (c *CampaignItem) IsUsed() bool {
	return c.used
}

// IsActive reports whether the campaign has not been soft-deleted.
func (c *CampaignItem) IsActive() bool {
	return c.active
}

// Description returns the campaign's description.
func (c *CampaignItem) Description() string {
	return c.description
}

// EligibleAt reports whether the code may be applied at the given instant:
// not yet used, still active, and inside the validity window.
func (c *CampaignItem) EligibleAt(now time.Time) bool {
	if c.used || !c.active {
		return false
	}
	return !now.Before(c.startTime) && !now.After(c.endTime)
}

// MarkUsed consumes the code. Irreversible from the business point of view;
// MarkUnused exists solely as the saga's compensating action.
func (c *CampaignItem) MarkUsed() {
	c.used = true
}

// MarkUnused releases the code. Only the order-creation saga's compensation
// path may call this, to undo a mark that a failed order consumed.
func (c *CampaignItem) MarkUnused() {
	c.used = false
}
