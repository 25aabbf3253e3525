package order

import (
	"errors"
	"fmt"
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// VatRate is the fixed VAT rate applied to an order's calculated price.
// The VAT amount is stored separately from the calculated price; the two are
// never summed inside the aggregate.
var VatRate = decimal.NewFromFloat(0.18)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder factory method. This ensures all orders are properly validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrTargetLanguagesAreRequired is returned when an order is constructed
	// without any target language.
	ErrTargetLanguagesAreRequired = errors.New("at least one target language is required")
)

// Order represents a translation order in the system. It is the aggregate root
// that manages the order lifecycle from creation through pricing, document
// registration, and the multi-role acceptance workflow on its details.
//
// Order follows these invariants:
//   - Must have valid source language, terminology, customer, and quality ids
//   - Must have at least one target language
//   - vatPrice always equals calculatedPrice * VatRate
//   - Status transitions follow defined business rules
//   - Deactivation is a soft delete; no hard delete exists
//   - Can only be created through NewOrder or RestoreOrder
type Order struct {
	id kernel.UUID

	sourceLanguageID  kernel.UUID
	targetLanguageIDs []kernel.UUID
	terminologyID     kernel.UUID

	companyTerminologyID      *kernel.UUID
	companyDocumentTemplateID *kernel.UUID
	companyID                 *kernel.UUID

	customerID           kernel.UUID
	translationQualityID kernel.UUID

	// translationDocumentID references a document owned by the external
	// document service; zero until the document is registered.
	translationDocumentID kernel.UUID

	status           Status
	calculatedPrice  decimal.Decimal
	vatPrice         decimal.Decimal
	deliveryEstimate time.Time
	campaignItemID   *kernel.UUID
	active           bool

	details []*OrderDetail

	isConstructed bool
}

// NewOrder creates a new Order in Created status from the request's language,
// terminology, customer, and quality fields. Optional company references may
// be nil. The translation document, price, and delivery estimate are attached
// by the order lifecycle as creation proceeds.
func NewOrder(
	id kernel.UUID,
	sourceLanguageID kernel.UUID,
	targetLanguageIDs []kernel.UUID,
	terminologyID kernel.UUID,
	customerID kernel.UUID,
	translationQualityID kernel.UUID,
	companyID *kernel.UUID,
	companyTerminologyID *kernel.UUID,
	companyDocumentTemplateID *kernel.UUID,
) (*Order, error) {
	o := &Order{
		status:                    Created,
		active:                    true,
		companyID:                 companyID,
		companyTerminologyID:      companyTerminologyID,
		companyDocumentTemplateID: companyDocumentTemplateID,
		isConstructed:             true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setSourceLanguage(sourceLanguageID),
		o.setTargetLanguages(targetLanguageIDs),
		o.setTerminology(terminologyID),
		o.setCustomer(customerID),
		o.setTranslationQuality(translationQualityID),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence with its full state.
func RestoreOrder(
	id kernel.UUID,
	sourceLanguageID kernel.UUID,
	targetLanguageIDs []kernel.UUID,
	terminologyID kernel.UUID,
	customerID kernel.UUID,
	translationQualityID kernel.UUID,
	companyID *kernel.UUID,
	companyTerminologyID *kernel.UUID,
	companyDocumentTemplateID *kernel.UUID,
	translationDocumentID kernel.UUID,
	status Status,
	calculatedPrice decimal.Decimal,
	vatPrice decimal.Decimal,
	deliveryEstimate time.Time,
	campaignItemID *kernel.UUID,
	active bool,
	details []*OrderDetail,
) (*Order, error) {
	o, err := NewOrder(
		id,
		sourceLanguageID,
		targetLanguageIDs,
		terminologyID,
		customerID,
		translationQualityID,
		companyID,
		companyTerminologyID,
		companyDocumentTemplateID,
	)
	if err != nil {
		return nil, err
	}

	if err = status.Validate(); err != nil {
		return nil, err
	}

	o.translationDocumentID = translationDocumentID
	o.status = status
	o.calculatedPrice = calculatedPrice
	o.vatPrice = vatPrice
	o.deliveryEstimate = deliveryEstimate
	o.campaignItemID = campaignItemID
	o.active = active
	o.details = details

	return o, nil
}

// Validate ensures the Order instance was properly constructed through NewOrder.
// This prevents bypassing validation by directly instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// SourceLanguageID returns the source language of the document.
func (o *Order) SourceLanguageID() kernel.UUID {
	return o.sourceLanguageID
}

// TargetLanguageIDs returns the requested target languages.
func (o *Order) TargetLanguageIDs() []kernel.UUID {
	return o.targetLanguageIDs
}

// TerminologyID returns the order's terminology category.
func (o *Order) TerminologyID() kernel.UUID {
	return o.terminologyID
}

// CompanyTerminologyID returns the optional company terminology reference.
func (o *Order) CompanyTerminologyID() *kernel.UUID {
	return o.companyTerminologyID
}

// CompanyDocumentTemplateID returns the optional company document template reference.
func (o *Order) CompanyDocumentTemplateID() *kernel.UUID {
	return o.companyDocumentTemplateID
}

// CompanyID returns the customer's company, if any. A company with an active,
// calculation-applicable price offer replaces tiered pricing entirely.
func (o *Order) CompanyID() *kernel.UUID {
	return o.companyID
}

// CustomerID returns the ordering customer.
func (o *Order) CustomerID() kernel.UUID {
	return o.customerID
}

// TranslationQualityID returns the requested quality tier.
func (o *Order) TranslationQualityID() kernel.UUID {
	return o.translationQualityID
}

// TranslationDocumentID returns the externally-owned document reference.
// Zero until AttachDocument is called.
func (o *Order) TranslationDocumentID() kernel.UUID {
	return o.translationDocumentID
}

// Status returns the current lifecycle status of the order.
func (o *Order) Status() Status {
	return o.status
}

// CalculatedPrice returns the order's price as computed at creation time.
func (o *Order) CalculatedPrice() decimal.Decimal {
	return o.calculatedPrice
}

// VatPrice returns the VAT amount, stored separately from the calculated
// price. Whether the two are summed for a displayed total is the caller's
// business; the aggregate never combines them.
func (o *Order) VatPrice() decimal.Decimal {
	return o.vatPrice
}

// DeliveryEstimate returns the potential delivery date.
func (o *Order) DeliveryEstimate() time.Time {
	return o.deliveryEstimate
}

// CampaignItemID returns the applied campaign, if any.
func (o *Order) CampaignItemID() *kernel.UUID {
	return o.campaignItemID
}

// IsActive reports whether the order has not been soft-deleted.
func (o *Order) IsActive() bool {
	return o.active
}

// Details returns the order's work units.
func (o *Order) Details() []*OrderDetail {
	return o.details
}

// AttachDocument records the externally-registered translation document.
func (o *Order) AttachDocument(documentID kernel.UUID) error {
	if err := documentID.Validate(); err != nil {
		return err
	}
	o.translationDocumentID = documentID
	return nil
}

// SetPricing records the pricing engine's output and derives the VAT amount.
// Keeping the derivation here guarantees the two fields never drift apart.
func (o *Order) SetPricing(calculatedPrice decimal.Decimal) {
	o.calculatedPrice = calculatedPrice
	o.vatPrice = calculatedPrice.Mul(VatRate)
}

// ScheduleDelivery records the estimated delivery date.
func (o *Order) ScheduleDelivery(estimate time.Time) {
	o.deliveryEstimate = estimate
}

// ApplyCampaign records the campaign item consumed by this order.
func (o *Order) ApplyCampaign(campaignItemID kernel.UUID) error {
	if err := campaignItemID.Validate(); err != nil {
		return err
	}
	o.campaignItemID = &campaignItemID
	return nil
}

// ReplaceDetails replaces the order's detail set. Details are created in one
// batch by the order-details-creation operation; their count is immutable
// thereafter, though prices and acceptance fields on each detail mutate.
func (o *Order) ReplaceDetails(details []*OrderDetail) error {
	for _, d := range details {
		if err := d.Validate(); err != nil {
			return err
		}
		if !d.OrderID().IsEqual(o.id) {
			return errs.NewValueIsInvalidErrorWithCause(
				"order detail",
				fmt.Errorf("detail %s belongs to order %s", d.ID(), d.OrderID()),
			)
		}
	}
	o.details = details
	return nil
}

// DetailByID returns the detail with the given id, or nil if absent.
func (o *Order) DetailByID(detailID kernel.UUID) *OrderDetail {
	for _, d := range o.details {
		if d.ID().IsEqual(detailID) {
			return d
		}
	}
	return nil
}

// DetailByOperationID returns the detail bound to the given translation
// operation, or nil if absent.
func (o *Order) DetailByOperationID(operationID kernel.UUID) *OrderDetail {
	for _, d := range o.details {
		if d.Operation().ID().IsEqual(operationID) {
			return d
		}
	}
	return nil
}

// StartProcessing moves the order to InProcess. Called when a translator
// offer on any of the order's details is accepted.
func (o *Order) StartProcessing() error {
	newStatus, err := o.status.StartProcessing()
	if err != nil {
		return err
	}
	o.status = newStatus
	return nil
}

// ChangeStatus overwrites the order's status with a validated value.
// Used by the status-update operation driven by downstream collaborators.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// Deactivate soft-deletes the order. The status is left untouched;
// active is an orthogonal flag and there is no hard delete.
func (o *Order) Deactivate() {
	o.active = false
}

func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *Order) setSourceLanguage(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("sourceLanguageId", err)
	}
	o.sourceLanguageID = id
	return nil
}

func (o *Order) setTargetLanguages(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrTargetLanguagesAreRequired
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return errs.NewValueIsRequiredErrorWithCause("targetLanguageIds", err)
		}
	}
	o.targetLanguageIDs = ids
	return nil
}

func (o *Order) setTerminology(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("terminologyId", err)
	}
	o.terminologyID = id
	return nil
}

func (o *Order) setCustomer(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("customerId", err)
	}
	o.customerID = id
	return nil
}

func (o *Order) setTranslationQuality(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return errs.NewValueIsRequiredErrorWithCause("translationQualityId", err)
	}
	o.translationQualityID = id
	return nil
}
