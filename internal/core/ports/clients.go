package ports

import (
	"context"

	"oms/internal/core/domain/model/kernel"
)

// Document describes a document registered in the document service.
type Document struct {
	ID                  kernel.UUID
	CharCount           int
	CharCountWithSpaces int
	PageCount           int
	Path                string
}

// User is a marketplace participant as exposed by the user service.
type User struct {
	ID    kernel.UUID
	Email string
}

// DocumentServiceClient registers source documents with the document service.
type DocumentServiceClient interface {
	CreateDocument(ctx context.Context, charCount int, charCountWithSpaces int, pageCount int, path string) (Document, error)
}

// TranslationServiceClient exposes translation-side estimates needed during order intake.
type TranslationServiceClient interface {
	// GetAverageDocumentPartCount returns the estimated number of parts
	// the order's document will be split into.
	GetAverageDocumentPartCount(ctx context.Context, orderID kernel.UUID) (int, error)
}

// UserServiceClient looks up marketplace participants by role and translation quality.
type UserServiceClient interface {
	GetTranslatorsByQuality(ctx context.Context, translationQualityID kernel.UUID) ([]User, error)
	GetEditorsByQuality(ctx context.Context, translationQualityID kernel.UUID) ([]User, error)
	GetProofReadersByQuality(ctx context.Context, translationQualityID kernel.UUID) ([]User, error)
}
