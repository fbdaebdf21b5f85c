package problemgen

import "fmt"

// Validator checks one extracted field.
// Implementations should be stateless and safe for concurrent use.
type Validator interface {
	// Name returns a short identifier for this validator (for error messages
	// and logging), e.g. "problem", "outline", "arithmetic".
	Name() string

	// Field is the bundle field this validator inspects.
	Field() string

	// Validate checks the field text and returns nil if it passes.
	// The validator receives the item context (e.g. to look for the
	// scenario label in the problem text).
	Validate(text string, in ItemInput) *ValidationError
}

// ValidationError describes why a field failed validation.
type ValidationError struct {
	Validator string // Name of the validator that failed
	Field     string // Field that was rejected
	Message   string // Human-readable description of the failure
	Retryable bool   // Whether a corrective turn is likely to fix this
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validator %q: %s", e.Validator, e.Message)
}

// validateField runs every validator registered for field, in order.
func validateField(validators []Validator, field, text string, in ItemInput) *ValidationError {
	for _, v := range validators {
		if v.Field() != field {
			continue
		}
		if verr := v.Validate(text, in); verr != nil {
			return verr
		}
	}
	return nil
}

// ValidateBundle validates the item fields of b in order and returns the
// first failure. A field absent from b fails as empty.
func ValidateBundle(validators []Validator, b FieldBundle, in ItemInput) *ValidationError {
	for _, f := range itemFields {
		if verr := validateField(validators, f, b[f], in); verr != nil {
			return verr
		}
	}
	return nil
}
