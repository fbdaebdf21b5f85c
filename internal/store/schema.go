package store

import (
	"context"
	"database/sql"
	"fmt"
)

const (
	tableLLMEvents = "llm_request_events"
	tableBatches   = "batches"
)

var schemaStatements = []string{
	`CREATE TABLE IF NOT EXISTS llm_request_events (
		id            INTEGER PRIMARY KEY AUTOINCREMENT,
		sequence      INTEGER NOT NULL UNIQUE,
		timestamp     INTEGER NOT NULL,
		provider      TEXT    NOT NULL,
		model         TEXT    NOT NULL,
		purpose       TEXT    NOT NULL,
		input_tokens  INTEGER NOT NULL DEFAULT 0,
		output_tokens INTEGER NOT NULL DEFAULT 0,
		latency_ms    INTEGER NOT NULL DEFAULT 0,
		success       INTEGER NOT NULL,
		error_message TEXT    NOT NULL DEFAULT '',
		request_body  TEXT    NOT NULL DEFAULT '',
		response_body TEXT    NOT NULL DEFAULT ''
	)`,
	`CREATE INDEX IF NOT EXISTS llm_request_events_purpose ON llm_request_events (purpose)`,
	`CREATE TABLE IF NOT EXISTS batches (
		id         TEXT    PRIMARY KEY,
		sequence   INTEGER NOT NULL UNIQUE,
		created_at INTEGER NOT NULL,
		category   TEXT    NOT NULL,
		level      TEXT    NOT NULL,
		scenario   TEXT    NOT NULL,
		seed       INTEGER,
		item_count INTEGER NOT NULL,
		failures   INTEGER NOT NULL DEFAULT 0,
		model      TEXT    NOT NULL DEFAULT '',
		items      TEXT    NOT NULL
	)`,
}

// migrate creates missing tables. Tables are only ever added to, so
// CREATE IF NOT EXISTS is sufficient.
func migrate(ctx context.Context, db *sql.DB) error {
	for _, stmt := range schemaStatements {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("create schema: %w", err)
		}
	}
	return nil
}
