package problemgen

import (
	"encoding/json"
	"fmt"

	"github.com/abhisek/olympiad/internal/store"
)

// Record converts the batch to its persisted form.
func (b *Batch) Record() (*store.BatchRecord, error) {
	items, err := json.Marshal(b.Items)
	if err != nil {
		return nil, fmt.Errorf("encoding batch items: %w", err)
	}
	return &store.BatchRecord{
		ID:        b.ID.String(),
		CreatedAt: b.CreatedAt,
		Category:  b.Request.Category,
		Level:     b.Request.Level,
		Scenario:  b.Request.Scenario,
		Seed:      b.Request.Seed,
		ItemCount: len(b.Items),
		Failures:  len(b.Failures),
		Model:     b.Model,
		Items:     items,
	}, nil
}

// ItemsFromRecord decodes the items of a persisted batch.
func ItemsFromRecord(rec *store.BatchRecord) ([]GeneratedItem, error) {
	var items []GeneratedItem
	if err := json.Unmarshal(rec.Items, &items); err != nil {
		return nil, fmt.Errorf("decoding batch %s: %w", rec.ID, err)
	}
	return items, nil
}
