package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type batchRepo struct {
	db  *sql.DB
	seq *sequenceCounter
}

func (r *batchRepo) Save(ctx context.Context, rec *BatchRecord) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return fmt.Errorf("next sequence: %w", err)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now()
	}

	var seed any
	if rec.Seed != nil {
		seed = *rec.Seed
	}

	query, args := builder().Insert(tableBatches).
		Columns("id", "sequence", "created_at", "category", "level", "scenario",
			"seed", "item_count", "failures", "model", "items").
		Values(rec.ID, seqNum, rec.CreatedAt.UnixMilli(), rec.Category, rec.Level, rec.Scenario,
			seed, rec.ItemCount, rec.Failures, rec.Model, string(rec.Items)).
		Query()

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("save batch: %w", err)
	}
	rec.Sequence = seqNum
	return nil
}

func (r *batchRepo) Get(ctx context.Context, id string) (*BatchRecord, error) {
	query, args := builder().Select(
		"id", "sequence", "created_at", "category", "level", "scenario",
		"seed", "item_count", "failures", "model", "items",
	).
		From(entsql.Table(tableBatches)).
		Where(entsql.EQ("id", id)).
		Query()

	var (
		rec     BatchRecord
		created int64
		seed    sql.NullInt64
		items   string
	)
	err := r.db.QueryRowContext(ctx, query, args...).Scan(
		&rec.ID, &rec.Sequence, &created, &rec.Category, &rec.Level, &rec.Scenario,
		&seed, &rec.ItemCount, &rec.Failures, &rec.Model, &items,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get batch: %w", err)
	}
	rec.CreatedAt = time.UnixMilli(created)
	if seed.Valid {
		rec.Seed = &seed.Int64
	}
	rec.Items = []byte(items)
	return &rec, nil
}

func (r *batchRepo) List(ctx context.Context, limit int) ([]BatchRecord, error) {
	sel := builder().Select(
		"id", "sequence", "created_at", "category", "level", "scenario",
		"seed", "item_count", "failures", "model",
	).
		From(entsql.Table(tableBatches)).
		OrderBy(entsql.Desc("sequence"))
	if limit > 0 {
		sel.Limit(limit)
	}

	query, args := sel.Query()
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list batches: %w", err)
	}
	defer rows.Close()

	var out []BatchRecord
	for rows.Next() {
		var (
			rec     BatchRecord
			created int64
			seed    sql.NullInt64
		)
		if err := rows.Scan(
			&rec.ID, &rec.Sequence, &created, &rec.Category, &rec.Level, &rec.Scenario,
			&seed, &rec.ItemCount, &rec.Failures, &rec.Model,
		); err != nil {
			return nil, fmt.Errorf("scan batch: %w", err)
		}
		rec.CreatedAt = time.UnixMilli(created)
		if seed.Valid {
			v := seed.Int64
			rec.Seed = &v
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
