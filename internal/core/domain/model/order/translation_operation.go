package order

import (
	"errors"

	"oms/internal/core/domain/model/kernel"
)

var (
	// ErrTranslationOperationIsNotConstructed is returned when a TranslationOperation
	// was not created through NewTranslationOperation or RestoreTranslationOperation.
	ErrTranslationOperationIsNotConstructed = errors.New(
		"TranslationOperation must be created via NewTranslationOperation constructor",
	)

	// ErrOperationAlreadyClaimed is returned when a claim's optimistic
	// precondition fails: the operation is not in the role's expected prior
	// stage, or another user already holds the role.
	ErrOperationAlreadyClaimed = errors.New("translation operation is already claimed")
)

// OperationStatus represents the administrative state of a TranslationOperation,
// orthogonal to its progress through the role pipeline.
type OperationStatus int

const (
	// OperationUnknown represents an invalid or undefined operation status.
	OperationUnknown OperationStatus = iota

	// OperationActive is the normal working state.
	OperationActive

	// OperationCancelled marks an operation withdrawn from the pipeline.
	OperationCancelled
)

// TranslationOperation is the actual labor record of one unit of translatable
// work: which translator, editor, and proof-reader hold it, its pipeline
// progress, and the character counts used for per-part pricing.
type TranslationOperation struct {
	id kernel.UUID

	translatorID  *kernel.UUID
	editorID      *kernel.UUID
	proofReaderID *kernel.UUID

	progressStatus  ProgressStatus
	operationStatus OperationStatus

	charCount           int
	charCountWithSpaces int

	isConstructed bool
}

// NewTranslationOperation creates an operation in Open progress and Active
// status. Character counts describe this part alone and must not be negative;
// they drive per-part pricing so that a multi-target-language order is priced
// fairly per document part.
func NewTranslationOperation(id kernel.UUID, charCount, charCountWithSpaces int) (*TranslationOperation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if charCount < 0 || charCountWithSpaces < 0 {
		return nil, errors.New("character counts must not be negative")
	}

	return &TranslationOperation{
		id:                  id,
		progressStatus:      Open,
		operationStatus:     OperationActive,
		charCount:           charCount,
		charCountWithSpaces: charCountWithSpaces,
		isConstructed:       true,
	}, nil
}

// RestoreTranslationOperation reconstructs an operation from persistence.
func RestoreTranslationOperation(
	id kernel.UUID,
	translatorID, editorID, proofReaderID *kernel.UUID,
	progressStatus ProgressStatus,
	operationStatus OperationStatus,
	charCount, charCountWithSpaces int,
) (*TranslationOperation, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := progressStatus.Validate(); err != nil {
		return nil, err
	}

	return &TranslationOperation{
		id:                  id,
		translatorID:        translatorID,
		editorID:            editorID,
		proofReaderID:       proofReaderID,
		progressStatus:      progressStatus,
		operationStatus:     operationStatus,
		charCount:           charCount,
		charCountWithSpaces: charCountWithSpaces,
		isConstructed:       true,
	}, nil
}

// Validate ensures the operation was created through a constructor.
func (op *TranslationOperation) Validate() error {
	if op == nil || !op.isConstructed {
		return ErrTranslationOperationIsNotConstructed
	}
	return nil
}

// ID returns the operation's unique identifier.
func (op *TranslationOperation) ID() kernel.UUID {
	return op.id
}

// ProgressStatus returns the operation's current pipeline stage.
func (op *TranslationOperation) ProgressStatus() ProgressStatus {
	return op.progressStatus
}

// OperationStatus returns the operation's administrative status.
func (op *TranslationOperation) OperationStatus() OperationStatus {
	return op.operationStatus
}

// CharCount returns the part's character count without spaces.
func (op *TranslationOperation) CharCount() int {
	return op.charCount
}

// CharCountWithSpaces returns the part's character count including spaces.
func (op *TranslationOperation) CharCountWithSpaces() int {
	return op.charCountWithSpaces
}

// Assignee returns the user holding the given role's stage of work,
// or nil if the stage has not been claimed.
func (op *TranslationOperation) Assignee(role Role) *kernel.UUID {
	switch role {
	case RoleTranslator:
		return op.translatorID
	case RoleEditor:
		return op.editorID
	case RoleProofReader:
		return op.proofReaderID
	default:
		return nil
	}
}

// Claim records that userID accepted the offer for the given role's stage.
//
// The same optimistic precondition applies to every role: the operation's
// progress status must equal the role's expected prior stage, and if the role
// was pre-assigned to a user, the caller must be that user. On violation the
// operation is left unmutated and the returned error unwraps to
// ErrOperationAlreadyClaimed.
//
// On success the role id field is set and the progress status advances to the
// role's started stage. The pipeline never moves backward.
func (op *TranslationOperation) Claim(role Role, userID kernel.UUID) error {
	if err := role.Validate(); err != nil {
		return err
	}
	if err := userID.Validate(); err != nil {
		return err
	}

	if op.progressStatus != role.ExpectedPriorStatus() {
		return ErrOperationAlreadyClaimed
	}
	if assignee := op.Assignee(role); assignee != nil && !assignee.IsEqual(userID) {
		return ErrOperationAlreadyClaimed
	}

	switch role {
	case RoleTranslator:
		op.translatorID = &userID
	case RoleEditor:
		op.editorID = &userID
	case RoleProofReader:
		op.proofReaderID = &userID
	}
	op.progressStatus = role.StartedStatus()

	return nil
}
