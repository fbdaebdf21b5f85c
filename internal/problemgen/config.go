package problemgen

import (
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// CallOptions tunes a single collaborator call.
type CallOptions struct {
	Temperature float64
	MaxTokens   int
}

// Config controls the behavior of the Generator.
type Config struct {
	// Validators is the ordered list of field validators. They execute in
	// order per field; the first failure rejects the field.
	Validators []Validator

	// Retries is the number of repair attempts after the first request (R).
	Retries int

	// RepairTemperature is used for every repair attempt.
	RepairTemperature float64

	Bundle     CallOptions // all item fields at once
	Problem    CallOptions // per-field problem request
	Outline    CallOptions // per-field outline request
	Sanity     CallOptions // per-field sanity check request
	Judge      CallOptions // verification pass
	Correction CallOptions // inline corrective sub-turn after a validator rejection

	// Concurrency bounds how many candidate slots run at once. Values
	// below 2 generate items sequentially.
	Concurrency int

	Logger zerolog.Logger
}

// DefaultConfig returns a Config with the standard validator chain
// and recommended defaults.
func DefaultConfig() Config {
	return Config{
		Validators: []Validator{
			&ProblemValidator{},
			&OutlineValidator{},
			&ArithmeticValidator{},
			&SanityCheckValidator{},
		},
		Retries:           3,
		RepairTemperature: 0.2,
		Bundle:            CallOptions{Temperature: 0.2, MaxTokens: 1000},
		Problem:           CallOptions{Temperature: 0.4, MaxTokens: 800},
		Outline:           CallOptions{Temperature: 0.35, MaxTokens: 800},
		Sanity:            CallOptions{Temperature: 0.3, MaxTokens: 700},
		Judge:             CallOptions{Temperature: 0.2, MaxTokens: 900},
		Correction:        CallOptions{Temperature: 0.3, MaxTokens: 800},
		Concurrency:       1,
		Logger:            log.Logger,
	}
}
