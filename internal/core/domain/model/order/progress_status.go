package order

import (
	"fmt"

	"oms/internal/pkg/errs"
)

// ProgressStatus represents the pipeline stage of a TranslationOperation.
//
// The pipeline is strictly forward:
//
//	Open ──> TranslatorStarted ──> EditorStarted ──> ProofReaderStarted
//
// Each stage is entered by the corresponding role accepting its offer; there
// is no transition backward and no stage may be skipped.
type ProgressStatus int

const (
	// ProgressUnknown represents an invalid or undefined progress status.
	ProgressUnknown ProgressStatus = iota

	// Open means no role holder has claimed the operation yet.
	Open

	// TranslatorStarted means a translator accepted the offer and holds the work.
	TranslatorStarted

	// EditorStarted means an editor accepted the offer after translation.
	EditorStarted

	// ProofReaderStarted means a proof-reader accepted the offer after editing.
	ProofReaderStarted
)

func getProgressStatusStrings() map[ProgressStatus]string {
	return map[ProgressStatus]string{
		ProgressUnknown:    "Unknown",
		Open:               "Open",
		TranslatorStarted:  "TranslatorStarted",
		EditorStarted:      "EditorStarted",
		ProofReaderStarted: "ProofReaderStarted",
	}
}

// Validate checks if the ProgressStatus value is valid.
func (s ProgressStatus) Validate() error {
	if s == ProgressUnknown {
		return errs.NewValueIsInvalidErrorWithCause(
			"progress status is invalid",
			fmt.Errorf("%d is not a valid progress status", s),
		)
	}
	if _, ok := getProgressStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"progress status is invalid",
			fmt.Errorf("%d is not a valid progress status", s),
		)
	}
	return nil
}

// String returns the human-readable name of the progress status.
func (s ProgressStatus) String() string {
	if str, ok := getProgressStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
