// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations. The aggregate spans
// three tables: orders, order_details, and translation_operations.
package orderrepo

import (
	"time"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Target language ids live in a postgres text array; details and operations
// live in child tables loaded with the aggregate.
type OrderDTO struct {
	ID                        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	SourceLanguageID          uuid.UUID       `gorm:"type:uuid"`
	TargetLanguageIDs         pq.StringArray  `gorm:"type:text[]"`
	TerminologyID             uuid.UUID       `gorm:"type:uuid"`
	CompanyTerminologyID      *uuid.UUID      `gorm:"type:uuid"`
	CompanyDocumentTemplateID *uuid.UUID      `gorm:"type:uuid"`
	CompanyID                 *uuid.UUID      `gorm:"type:uuid;index"`
	CustomerID                uuid.UUID       `gorm:"type:uuid;index"`
	TranslationQualityID      uuid.UUID       `gorm:"type:uuid"`
	TranslationDocumentID     uuid.UUID       `gorm:"type:uuid"`
	Status                    int             `gorm:"index"`
	CalculatedPrice           decimal.Decimal `gorm:"type:numeric"`
	VatPrice                  decimal.Decimal `gorm:"type:numeric"`
	DeliveryEstimate          time.Time
	CampaignItemID            *uuid.UUID `gorm:"type:uuid"`
	Active                    bool

	Details []OrderDetailDTO `gorm:"foreignKey:OrderID"`
}

// TableName specifies the database table name for order entities.
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderDetailDTO represents one order detail row with its per-role prices.
type OrderDetailDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID uuid.UUID `gorm:"type:uuid;index"`

	TranslatorAveragePrice   decimal.Decimal `gorm:"type:numeric"`
	TranslatorOfferedPrice   decimal.Decimal `gorm:"type:numeric"`
	TranslatorAcceptedPrice  decimal.Decimal `gorm:"type:numeric"`
	EditorAveragePrice       decimal.Decimal `gorm:"type:numeric"`
	EditorOfferedPrice       decimal.Decimal `gorm:"type:numeric"`
	EditorAcceptedPrice      decimal.Decimal `gorm:"type:numeric"`
	ProofReaderAveragePrice  decimal.Decimal `gorm:"type:numeric"`
	ProofReaderOfferedPrice  decimal.Decimal `gorm:"type:numeric"`
	ProofReaderAcceptedPrice decimal.Decimal `gorm:"type:numeric"`

	CreatedBy *uuid.UUID `gorm:"type:uuid"`
	CreatedAt time.Time

	Operation TranslationOperationDTO `gorm:"foreignKey:OrderDetailID"`
}

// TableName specifies the database table name for order detail entities.
func (OrderDetailDTO) TableName() string {
	return "order_details"
}

// TranslationOperationDTO represents a translation operation row.
type TranslationOperationDTO struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderDetailID uuid.UUID `gorm:"type:uuid;uniqueIndex"`

	TranslatorID  *uuid.UUID `gorm:"type:uuid"`
	EditorID      *uuid.UUID `gorm:"type:uuid"`
	ProofReaderID *uuid.UUID `gorm:"type:uuid"`

	ProgressStatus  int `gorm:"index"`
	OperationStatus int

	CharCount           int
	CharCountWithSpaces int
}

// TableName specifies the database table name for translation operation entities.
func (TranslationOperationDTO) TableName() string {
	return "translation_operations"
}

func optionalToRaw(id *kernel.UUID) *uuid.UUID {
	if id == nil {
		return nil
	}
	raw := id.Bytes()
	return &raw
}

func optionalFromRaw(raw *uuid.UUID) (*kernel.UUID, error) {
	if raw == nil {
		return nil, nil //nolint:nilnil //null column maps to absent id
	}
	id, err := kernel.UUIDFromBytes((*raw)[:])
	if err != nil {
		return nil, err
	}
	return &id, nil
}

// fromDomain converts an order domain aggregate to its database representation.
func fromDomain(aggregate *order.Order) OrderDTO {
	targetIDs := pq.StringArray(kernel.UUIDStrings(aggregate.TargetLanguageIDs()))

	details := make([]OrderDetailDTO, 0, len(aggregate.Details()))
	for _, detail := range aggregate.Details() {
		details = append(details, detailFromDomain(detail))
	}

	return OrderDTO{
		ID:                        aggregate.ID().Bytes(),
		SourceLanguageID:          aggregate.SourceLanguageID().Bytes(),
		TargetLanguageIDs:         targetIDs,
		TerminologyID:             aggregate.TerminologyID().Bytes(),
		CompanyTerminologyID:      optionalToRaw(aggregate.CompanyTerminologyID()),
		CompanyDocumentTemplateID: optionalToRaw(aggregate.CompanyDocumentTemplateID()),
		CompanyID:                 optionalToRaw(aggregate.CompanyID()),
		CustomerID:                aggregate.CustomerID().Bytes(),
		TranslationQualityID:      aggregate.TranslationQualityID().Bytes(),
		TranslationDocumentID:     aggregate.TranslationDocumentID().Bytes(),
		Status:                    int(aggregate.Status()),
		CalculatedPrice:           aggregate.CalculatedPrice(),
		VatPrice:                  aggregate.VatPrice(),
		DeliveryEstimate:          aggregate.DeliveryEstimate(),
		CampaignItemID:            optionalToRaw(aggregate.CampaignItemID()),
		Active:                    aggregate.IsActive(),
		Details:                   details,
	}
}

func detailFromDomain(detail *order.OrderDetail) OrderDetailDTO {
	translator := detail.Prices(order.RoleTranslator)
	editor := detail.Prices(order.RoleEditor)
	proofReader := detail.Prices(order.RoleProofReader)
	operation := detail.Operation()

	return OrderDetailDTO{
		ID:      detail.ID().Bytes(),
		OrderID: detail.OrderID().Bytes(),

		TranslatorAveragePrice:   translator.Average,
		TranslatorOfferedPrice:   translator.Offered,
		TranslatorAcceptedPrice:  translator.Accepted,
		EditorAveragePrice:       editor.Average,
		EditorOfferedPrice:       editor.Offered,
		EditorAcceptedPrice:      editor.Accepted,
		ProofReaderAveragePrice:  proofReader.Average,
		ProofReaderOfferedPrice:  proofReader.Offered,
		ProofReaderAcceptedPrice: proofReader.Accepted,

		CreatedBy: optionalToRaw(detail.CreatedBy()),
		CreatedAt: detail.CreatedAt(),

		Operation: TranslationOperationDTO{
			ID:                  operation.ID().Bytes(),
			OrderDetailID:       detail.ID().Bytes(),
			TranslatorID:        optionalToRaw(operation.Assignee(order.RoleTranslator)),
			EditorID:            optionalToRaw(operation.Assignee(order.RoleEditor)),
			ProofReaderID:       optionalToRaw(operation.Assignee(order.RoleProofReader)),
			ProgressStatus:      int(operation.ProgressStatus()),
			OperationStatus:     int(operation.OperationStatus()),
			CharCount:           operation.CharCount(),
			CharCountWithSpaces: operation.CharCountWithSpaces(),
		},
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including details and operations using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	sourceLanguageID, err := kernel.UUIDFromBytes(dto.SourceLanguageID[:])
	if err != nil {
		return nil, err
	}
	terminologyID, err := kernel.UUIDFromBytes(dto.TerminologyID[:])
	if err != nil {
		return nil, err
	}
	customerID, err := kernel.UUIDFromBytes(dto.CustomerID[:])
	if err != nil {
		return nil, err
	}
	translationQualityID, err := kernel.UUIDFromBytes(dto.TranslationQualityID[:])
	if err != nil {
		return nil, err
	}
	translationDocumentID, err := kernel.UUIDFromBytes(dto.TranslationDocumentID[:])
	if err != nil {
		return nil, err
	}

	targetLanguageIDs, err := kernel.UUIDsFromStrings(dto.TargetLanguageIDs)
	if err != nil {
		return nil, err
	}

	companyTerminologyID, err := optionalFromRaw(dto.CompanyTerminologyID)
	if err != nil {
		return nil, err
	}
	companyDocumentTemplateID, err := optionalFromRaw(dto.CompanyDocumentTemplateID)
	if err != nil {
		return nil, err
	}
	companyID, err := optionalFromRaw(dto.CompanyID)
	if err != nil {
		return nil, err
	}
	campaignItemID, err := optionalFromRaw(dto.CampaignItemID)
	if err != nil {
		return nil, err
	}

	details := make([]*order.OrderDetail, 0, len(dto.Details))
	for _, detailDTO := range dto.Details {
		detail, detailErr := detailToDomain(detailDTO)
		if detailErr != nil {
			return nil, detailErr
		}
		details = append(details, detail)
	}

	return order.RestoreOrder(
		id,
		sourceLanguageID,
		targetLanguageIDs,
		terminologyID,
		customerID,
		translationQualityID,
		companyID,
		companyTerminologyID,
		companyDocumentTemplateID,
		translationDocumentID,
		order.Status(dto.Status),
		dto.CalculatedPrice,
		dto.VatPrice,
		dto.DeliveryEstimate,
		campaignItemID,
		dto.Active,
		details,
	)
}

func detailToDomain(dto OrderDetailDTO) (*order.OrderDetail, error) {
	detailID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	orderID, err := kernel.UUIDFromBytes(dto.OrderID[:])
	if err != nil {
		return nil, err
	}
	operationID, err := kernel.UUIDFromBytes(dto.Operation.ID[:])
	if err != nil {
		return nil, err
	}

	translatorID, err := optionalFromRaw(dto.Operation.TranslatorID)
	if err != nil {
		return nil, err
	}
	editorID, err := optionalFromRaw(dto.Operation.EditorID)
	if err != nil {
		return nil, err
	}
	proofReaderID, err := optionalFromRaw(dto.Operation.ProofReaderID)
	if err != nil {
		return nil, err
	}
	createdBy, err := optionalFromRaw(dto.CreatedBy)
	if err != nil {
		return nil, err
	}

	operation, err := order.RestoreTranslationOperation(
		operationID,
		translatorID, editorID, proofReaderID,
		order.ProgressStatus(dto.Operation.ProgressStatus),
		order.OperationStatus(dto.Operation.OperationStatus),
		dto.Operation.CharCount,
		dto.Operation.CharCountWithSpaces,
	)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrderDetail(
		detailID,
		orderID,
		operation,
		order.PriceSet{
			Average:  dto.TranslatorAveragePrice,
			Offered:  dto.TranslatorOfferedPrice,
			Accepted: dto.TranslatorAcceptedPrice,
		},
		order.PriceSet{
			Average:  dto.EditorAveragePrice,
			Offered:  dto.EditorOfferedPrice,
			Accepted: dto.EditorAcceptedPrice,
		},
		order.PriceSet{
			Average:  dto.ProofReaderAveragePrice,
			Offered:  dto.ProofReaderOfferedPrice,
			Accepted: dto.ProofReaderAcceptedPrice,
		},
		createdBy,
		dto.CreatedAt,
	)
}
