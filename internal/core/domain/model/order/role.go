package order

import (
	"fmt"

	"oms/internal/pkg/errs"
)

// Role is a closed tagged variant identifying which participant of the
// translation pipeline is claiming a unit of work. The three acceptance
// operations share one claim path parameterized by Role; the pipeline table
// below maps each role to the progress stage it may claim from and the stage
// it advances the operation to.
type Role int

const (
	// RoleUnknown represents an invalid or undefined role.
	RoleUnknown Role = iota

	// RoleTranslator claims an operation in Open state.
	RoleTranslator

	// RoleEditor claims an operation after the translator started it.
	RoleEditor

	// RoleProofReader claims an operation after the editor started it.
	RoleProofReader
)

// rolePipelineEntry describes one stage of the role pipeline.
type rolePipelineEntry struct {
	name          string
	expectedPrior ProgressStatus
	started       ProgressStatus
}

func getRolePipeline() map[Role]rolePipelineEntry {
	return map[Role]rolePipelineEntry{
		RoleTranslator:  {name: "Translator", expectedPrior: Open, started: TranslatorStarted},
		RoleEditor:      {name: "Editor", expectedPrior: TranslatorStarted, started: EditorStarted},
		RoleProofReader: {name: "ProofReader", expectedPrior: EditorStarted, started: ProofReaderStarted},
	}
}

// Validate checks if the Role value is one of the closed variants.
func (r Role) Validate() error {
	if _, ok := getRolePipeline()[r]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("role is invalid", fmt.Errorf("%d is not a valid role", r))
	}
	return nil
}

// String returns the human-readable name of the role.
func (r Role) String() string {
	if entry, ok := getRolePipeline()[r]; ok {
		return entry.name
	}
	return "Unknown"
}

// ExpectedPriorStatus returns the progress status an operation must be in for
// this role to claim it. The same optimistic precondition applies uniformly to
// all three roles.
func (r Role) ExpectedPriorStatus() ProgressStatus {
	return getRolePipeline()[r].expectedPrior
}

// StartedStatus returns the progress status an operation advances to when this
// role's claim succeeds.
func (r Role) StartedStatus() ProgressStatus {
	return getRolePipeline()[r].started
}
