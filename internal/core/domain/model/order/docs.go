// Package order contains the translation order aggregate and its entities.
//
// Order is the aggregate root. It owns a set of OrderDetails, each of which is
// bound 1:1 to a TranslationOperation, the actual unit of labor that a
// translator, editor, and proof-reader work through in sequence.
//
// The aggregate enforces these invariants:
//   - Order status moves Created -> InProcess when the first translator offer
//     is accepted; a separate active flag supports soft-deactivation.
//   - A TranslationOperation's progress status only moves forward through the
//     role pipeline (Open -> TranslatorStarted -> EditorStarted -> ProofReaderStarted),
//     never backward.
//   - A role id field, once set by a successful acceptance, records who holds
//     that stage of work and cannot be taken over by another caller.
//   - vatPrice always equals calculatedPrice multiplied by the fixed VAT rate;
//     the two are stored separately and never summed inside the aggregate.
package order
