package problemgen

import (
	"context"
	"fmt"
	"slices"

	"github.com/rs/zerolog"

	"github.com/abhisek/olympiad/internal/llm"
	"github.com/abhisek/olympiad/internal/tags"
)

// Conversation is the context a field request is issued in. The format
// instruction is appended as the final user turn of each attempt.
type Conversation struct {
	System string
	Turns  []llm.Message
}

// With returns a copy of c extended by turns.
func (c Conversation) With(turns ...llm.Message) Conversation {
	return Conversation{
		System: c.System,
		Turns:  append(slices.Clip(c.Turns), turns...),
	}
}

// Requester asks the model for delimited fields and repairs unparseable
// replies. It does not validate content.
type Requester struct {
	provider          llm.Provider
	retries           int
	repairTemperature float64
	logger            zerolog.Logger
}

// NewRequester creates a Requester making up to 1+retries calls per request.
func NewRequester(provider llm.Provider, retries int, repairTemperature float64, logger zerolog.Logger) *Requester {
	if retries < 0 {
		retries = 0
	}
	return &Requester{
		provider:          provider,
		retries:           retries,
		repairTemperature: repairTemperature,
		logger:            logger,
	}
}

// RequestField asks for a single field. Collaborator errors end the loop
// immediately; exhaustion returns *MissingFieldError.
func (r *Requester) RequestField(ctx context.Context, conv Conversation, field string, call CallOptions) (string, error) {
	first, repair := purposes(ctx, llm.PurposeField)
	attempts := 1 + r.retries
	for attempt := 0; attempt < attempts; attempt++ {
		instruction, opts, purpose := fieldInstruction(field), call, first
		if attempt > 0 {
			instruction, opts, purpose = fieldRepair(field), r.repairCall(call), repair
		}

		text, err := r.send(llm.WithPurpose(ctx, purpose), conv, instruction, opts)
		if err != nil {
			return "", fmt.Errorf("requesting %s: %w", field, err)
		}
		if v, ok := tags.Extract(text, field); ok && v != "" {
			return v, nil
		}
		r.logger.Debug().
			Int("item", llm.ItemFrom(ctx)).
			Str("field", field).
			Int("attempt", attempt+1).
			Msg("field not found in reply")
	}
	return "", &MissingFieldError{Field: field, Attempts: attempts}
}

// RequestFields asks for all fields in one reply. A reply missing any
// field is discarded whole; exhaustion returns *MissingFieldsError.
func (r *Requester) RequestFields(ctx context.Context, conv Conversation, fields []string, call CallOptions) (FieldBundle, error) {
	first, repair := purposes(ctx, llm.PurposeBundle)
	attempts := 1 + r.retries
	var missing []string
	for attempt := 0; attempt < attempts; attempt++ {
		instruction, opts, purpose := fieldsInstruction(fields), call, first
		if attempt > 0 {
			instruction, opts, purpose = fieldsRepair(fields, missing), r.repairCall(call), repair
		}

		text, err := r.send(llm.WithPurpose(ctx, purpose), conv, instruction, opts)
		if err != nil {
			return nil, fmt.Errorf("requesting %v: %w", fields, err)
		}

		var bundle map[string]string
		bundle, missing = tags.ExtractAll(text, fields)
		if bundle != nil {
			return FieldBundle(bundle), nil
		}
		r.logger.Debug().
			Int("item", llm.ItemFrom(ctx)).
			Strs("missing", missing).
			Int("attempt", attempt+1).
			Msg("fields not found in reply")
	}
	return nil, &MissingFieldsError{Fields: fields, Missing: missing, Attempts: attempts}
}

// purposes returns the event labels for the first attempt and the repairs.
// A purpose already on ctx wins; judge repairs stay labelled as judge calls.
func purposes(ctx context.Context, def string) (first, repair string) {
	first = llm.PurposeFrom(ctx)
	if first == llm.PurposeUnknown {
		first = def
	}
	if first == llm.PurposeJudge {
		return first, first
	}
	return first, llm.PurposeRepair
}

func (r *Requester) repairCall(call CallOptions) CallOptions {
	call.Temperature = r.repairTemperature
	return call
}

func (r *Requester) send(ctx context.Context, conv Conversation, instruction string, call CallOptions) (string, error) {
	resp, err := r.provider.Generate(ctx, llm.Request{
		System:      conv.System,
		Messages:    conv.With(llm.UserMessage(instruction)).Turns,
		MaxTokens:   call.MaxTokens,
		Temperature: call.Temperature,
	})
	if err != nil {
		return "", err
	}
	return resp.Text, nil
}
