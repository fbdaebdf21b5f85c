package problemgen

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrNoFallback means no deterministic template exists for a (category, level) pair.
	ErrNoFallback = errors.New("no fallback template")

	// ErrNoItems means every candidate slot failed.
	ErrNoItems = errors.New("no items generated")

	// ErrInvalidRequest wraps request normalization failures.
	ErrInvalidRequest = errors.New("invalid generation request")
)

// MissingFieldError is returned when a single requested field could not be
// extracted from any attempt.
type MissingFieldError struct {
	Field    string
	Attempts int
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("field %q missing after %d attempts", e.Field, e.Attempts)
}

// MissingFieldsError is returned when a multi-field request never produced
// all fields at once. Missing lists the fields absent from the last attempt.
type MissingFieldsError struct {
	Fields   []string
	Missing  []string
	Attempts int
}

func (e *MissingFieldsError) Error() string {
	return fmt.Sprintf("fields [%s] missing after %d attempts", strings.Join(e.Missing, ", "), e.Attempts)
}

// ItemFailure describes a candidate slot for which every strategy failed.
type ItemFailure struct {
	Index         int    `json:"index"`
	ChallengeType string `json:"challenge_type"`
	Reason        string `json:"reason"`
	Err           error  `json:"-"`
}

func (e *ItemFailure) Error() string {
	return fmt.Sprintf("item %d (%s): %s", e.Index, e.ChallengeType, e.Reason)
}

func (e *ItemFailure) Unwrap() error { return e.Err }
