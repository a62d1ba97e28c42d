package convert

import (
	"errors"
	"fmt"
)

// IntegrityError represents a data-integrity failure detected during
// conversion.
//
// Integrity errors cover:
//   - Unresolved reference: an index field points at no constructed entity
//   - Missing field: a required field with no documented default is absent
//   - Bad code: a field value falls outside its closed code table
//   - Cycle: a timescale chain revisits a change record
//
// The converter assumes well-formed input from a trusted upstream parser,
// so integrity errors are fatal and never partially recovered.
type IntegrityError struct {
	// Code identifies the error category.
	Code IntegrityErrorCode

	// Archetype is the raw archetype of the offending entity.
	Archetype string

	// Field is the raw field involved, when one is.
	Field string

	// Index is the offending entity index or field value, -1 when not
	// applicable.
	Index int

	// Message is a human-readable description.
	Message string
}

// IntegrityErrorCode categorizes integrity errors.
type IntegrityErrorCode string

const (
	// ErrCodeUnresolvedReference indicates an index that resolves to no
	// constructed entity.
	ErrCodeUnresolvedReference IntegrityErrorCode = "UNRESOLVED_REFERENCE"

	// ErrCodeMissingField indicates a required field with no default.
	ErrCodeMissingField IntegrityErrorCode = "MISSING_FIELD"

	// ErrCodeBadCode indicates a value outside a closed code table.
	ErrCodeBadCode IntegrityErrorCode = "BAD_CODE"

	// ErrCodeCycle indicates a timescale chain that revisits a record.
	ErrCodeCycle IntegrityErrorCode = "CYCLE_DETECTED"
)

// Error implements the error interface.
func (e *IntegrityError) Error() string {
	if e.Field != "" && e.Index >= 0 {
		return fmt.Sprintf("%s: %s (archetype=%s, field=%s, index=%d)", e.Code, e.Message, e.Archetype, e.Field, e.Index)
	}
	if e.Field != "" {
		return fmt.Sprintf("%s: %s (archetype=%s, field=%s)", e.Code, e.Message, e.Archetype, e.Field)
	}
	return fmt.Sprintf("%s: %s (archetype=%s)", e.Code, e.Message, e.Archetype)
}

// IsIntegrityError returns true if the error is an IntegrityError.
// Uses errors.As to handle wrapped errors.
func IsIntegrityError(err error) bool {
	var ie *IntegrityError
	return errors.As(err, &ie)
}

func newUnresolvedRef(archetype, field string, index int) *IntegrityError {
	return &IntegrityError{
		Code:      ErrCodeUnresolvedReference,
		Archetype: archetype,
		Field:     field,
		Index:     index,
		Message:   "index resolves to no entity",
	}
}

func newMissingField(archetype, field string) *IntegrityError {
	return &IntegrityError{
		Code:      ErrCodeMissingField,
		Archetype: archetype,
		Field:     field,
		Index:     -1,
		Message:   "required field absent",
	}
}

func newBadCode(archetype, field string, code int) *IntegrityError {
	return &IntegrityError{
		Code:      ErrCodeBadCode,
		Archetype: archetype,
		Field:     field,
		Index:     code,
		Message:   "value outside code table",
	}
}

func newCycle(archetype string, index int) *IntegrityError {
	return &IntegrityError{
		Code:      ErrCodeCycle,
		Archetype: archetype,
		Field:     "next",
		Index:     index,
		Message:   "timescale chain revisits a change record",
	}
}
