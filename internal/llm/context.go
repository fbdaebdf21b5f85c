package llm

import "context"

type contextKey string

const (
	purposeKey contextKey = "llm_purpose"
	itemKey    contextKey = "llm_item"
)

// Purpose labels attached to requests issued while building a batch.
const (
	PurposeBundle = "bundle"
	PurposeField  = "field"
	PurposeRepair = "repair"
	PurposeJudge  = "judge"

	PurposeUnknown = "unknown"
)

// WithPurpose attaches a purpose label to the context for event logging.
func WithPurpose(ctx context.Context, purpose string) context.Context {
	return context.WithValue(ctx, purposeKey, purpose)
}

// PurposeFrom extracts the purpose label from the context.
func PurposeFrom(ctx context.Context) string {
	if v, ok := ctx.Value(purposeKey).(string); ok {
		return v
	}
	return PurposeUnknown
}

// WithItem tags the context with the candidate slot a request belongs to.
func WithItem(ctx context.Context, index int) context.Context {
	return context.WithValue(ctx, itemKey, index)
}

// ItemFrom returns the candidate slot index, or -1 when none is attached.
func ItemFrom(ctx context.Context) int {
	if v, ok := ctx.Value(itemKey).(int); ok {
		return v
	}
	return -1
}
