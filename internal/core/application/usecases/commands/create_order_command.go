package commands

import (
	"errors"

	"oms/internal/core/domain/model/kernel"
	"oms/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrTargetLanguagesAreRequired = errors.New("at least one target language is required")
	ErrCharCountIsInvalid         = errors.New("char counts must be greater than 0")
	ErrPageCountIsInvalid         = errors.New("page count must be greater than 0")
	ErrDocumentPathIsRequired     = errors.New("document path is required")
)

// CreateOrderCommand represents a request to place a new translation order.
// Carries the language pair, terminology, customer and quality references,
// the source document metrics, and an optional campaign code.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	cmd, err := NewCreateOrderCommand(orderID, src, targets, terminology,
//	    customer, quality, nil, nil, nil, 90, 95, 1, "/docs/contract.docx", "SPRING10")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID                   kernel.UUID
	sourceLanguageID          kernel.UUID
	targetLanguageIDs         []kernel.UUID
	terminologyID             kernel.UUID
	customerID                kernel.UUID
	translationQualityID      kernel.UUID
	companyID                 *kernel.UUID
	companyTerminologyID      *kernel.UUID
	companyDocumentTemplateID *kernel.UUID
	charCount                 int
	charCountWithSpaces       int
	pageCount                 int
	documentPath              string
	campaignCode              string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to place a new translation order.
// Validates the identifier fields, requires at least one target language,
// positive character and page counts, and a document path. The company
// references and the campaign code are optional.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	sourceLanguageID kernel.UUID,
	targetLanguageIDs []kernel.UUID,
	terminologyID kernel.UUID,
	customerID kernel.UUID,
	translationQualityID kernel.UUID,
	companyID *kernel.UUID,
	companyTerminologyID *kernel.UUID,
	companyDocumentTemplateID *kernel.UUID,
	charCount int,
	charCountWithSpaces int,
	pageCount int,
	documentPath string,
	campaignCode string,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		companyID:                 companyID,
		companyTerminologyID:      companyTerminologyID,
		companyDocumentTemplateID: companyDocumentTemplateID,
		campaignCode:              campaignCode,

		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setSourceLanguageID(sourceLanguageID),
		orderCommand.setTargetLanguageIDs(targetLanguageIDs),
		orderCommand.setTerminologyID(terminologyID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setTranslationQualityID(translationQualityID),
		orderCommand.setCharCounts(charCount, charCountWithSpaces),
		orderCommand.setPageCount(pageCount),
		orderCommand.setDocumentPath(documentPath),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// SourceLanguageID returns the language the document is written in.
func (c CreateOrderCommand) SourceLanguageID() kernel.UUID {
	return c.sourceLanguageID
}

// TargetLanguageIDs returns the languages the document must be translated into.
func (c CreateOrderCommand) TargetLanguageIDs() []kernel.UUID {
	return c.targetLanguageIDs
}

// TerminologyID returns the terminology domain of the document.
func (c CreateOrderCommand) TerminologyID() kernel.UUID {
	return c.terminologyID
}

// CustomerID returns the ordering customer.
func (c CreateOrderCommand) CustomerID() kernel.UUID {
	return c.customerID
}

// TranslationQualityID returns the requested quality band.
func (c CreateOrderCommand) TranslationQualityID() kernel.UUID {
	return c.translationQualityID
}

// CompanyID returns the customer's company, or nil for individual customers.
func (c CreateOrderCommand) CompanyID() *kernel.UUID {
	return c.companyID
}

// CompanyTerminologyID returns the company terminology override, if any.
func (c CreateOrderCommand) CompanyTerminologyID() *kernel.UUID {
	return c.companyTerminologyID
}

// CompanyDocumentTemplateID returns the company document template, if any.
func (c CreateOrderCommand) CompanyDocumentTemplateID() *kernel.UUID {
	return c.companyDocumentTemplateID
}

// CharCount returns the document's character count without spaces.
func (c CreateOrderCommand) CharCount() int {
	return c.charCount
}

// CharCountWithSpaces returns the document's character count including spaces.
func (c CreateOrderCommand) CharCountWithSpaces() int {
	return c.charCountWithSpaces
}

// PageCount returns the document's page count.
func (c CreateOrderCommand) PageCount() int {
	return c.pageCount
}

// DocumentPath returns the storage path of the uploaded document.
func (c CreateOrderCommand) DocumentPath() string {
	return c.documentPath
}

// CampaignCode returns the discount code supplied with the request,
// or an empty string when none was given.
func (c CreateOrderCommand) CampaignCode() string {
	return c.campaignCode
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setSourceLanguageID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.sourceLanguageID = id
	return nil
}

func (c *CreateOrderCommand) setTargetLanguageIDs(ids []kernel.UUID) error {
	if len(ids) == 0 {
		return ErrTargetLanguagesAreRequired
	}
	for _, id := range ids {
		if err := id.Validate(); err != nil {
			return err
		}
	}

	c.targetLanguageIDs = ids
	return nil
}

func (c *CreateOrderCommand) setTerminologyID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.terminologyID = id
	return nil
}

func (c *CreateOrderCommand) setCustomerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.customerID = id
	return nil
}

func (c *CreateOrderCommand) setTranslationQualityID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.translationQualityID = id
	return nil
}

func (c *CreateOrderCommand) setCharCounts(charCount, charCountWithSpaces int) error {
	if charCount <= 0 || charCountWithSpaces <= 0 {
		return ErrCharCountIsInvalid
	}

	c.charCount = charCount
	c.charCountWithSpaces = charCountWithSpaces
	return nil
}

func (c *CreateOrderCommand) setPageCount(pageCount int) error {
	if pageCount <= 0 {
		return ErrPageCountIsInvalid
	}

	c.pageCount = pageCount
	return nil
}

func (c *CreateOrderCommand) setDocumentPath(path string) error {
	if path == "" {
		return ErrDocumentPathIsRequired
	}

	c.documentPath = path
	return nil
}
