package http

import (
	"time"

	"oms/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// Error is the JSON body returned for every failed request.
type Error struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the body of POST /api/v1/orders.
type CreateOrderRequest struct {
	ID                        string   `json:"id"`
	SourceLanguageID          string   `json:"sourceLanguageId"`
	TargetLanguageIDs         []string `json:"targetLanguageIds"`
	TerminologyID             string   `json:"terminologyId"`
	CustomerID                string   `json:"customerId"`
	TranslationQualityID      string   `json:"translationQualityId"`
	CompanyID                 *string  `json:"companyId,omitempty"`
	CompanyTerminologyID      *string  `json:"companyTerminologyId,omitempty"`
	CompanyDocumentTemplateID *string  `json:"companyDocumentTemplateId,omitempty"`
	CharCount                 int      `json:"charCount"`
	CharCountWithSpaces       int      `json:"charCountWithSpaces"`
	PageCount                 int      `json:"pageCount"`
	DocumentPath              string   `json:"documentPath"`
	CampaignCode              string   `json:"campaignCode,omitempty"`
}

// CreateOrderResponse reports the pricing outcome of a placed order.
type CreateOrderResponse struct {
	ID                    string          `json:"id"`
	Status                string          `json:"status"`
	CalculatedPrice       decimal.Decimal `json:"calculatedPrice"`
	VatPrice              decimal.Decimal `json:"vatPrice"`
	PotentialDeliveryDate time.Time       `json:"potentialDeliveryDate"`
}

// AcceptOfferRequest is the body of the three offer acceptance routes.
type AcceptOfferRequest struct {
	UserID string          `json:"userId"`
	Price  decimal.Decimal `json:"price"`
}

// UpdateOrderStatusRequest is the body of the status update route.
type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// parseUUID converts a request string into a kernel identifier.
func parseUUID(s string) (kernel.UUID, error) {
	return kernel.UUIDFromString(s)
}

// parseOptionalUUID converts an optional request string, mapping absence to nil.
func parseOptionalUUID(s *string) (*kernel.UUID, error) {
	if s == nil || *s == "" {
		return nil, nil //nolint:nilnil // absence of an optional reference is not an error
	}
	id, err := kernel.UUIDFromString(*s)
	if err != nil {
		return nil, err
	}
	return &id, nil
}
