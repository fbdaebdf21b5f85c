package store

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	s, err := Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name))
	if err != nil {
		t.Fatalf("open test store: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenClose(t *testing.T) {
	s := openTestStore(t)
	if s.DB() == nil {
		t.Fatal("expected non-nil database handle")
	}
}

func TestPragmasApplied(t *testing.T) {
	s := openTestStore(t)
	db := s.DB()

	tests := []struct {
		pragma string
		want   string
	}{
		// WAL mode falls back to "memory" for in-memory databases,
		// so journal_mode is checked in TestFileDatabaseUsesWAL.
		{"foreign_keys", "1"},
		{"synchronous", "1"}, // NORMAL = 1
	}

	for _, tt := range tests {
		var got string
		err := db.QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestFileDatabaseUsesWAL(t *testing.T) {
	s, err := Open(filepath.Join(t.TempDir(), "olympiad.db"))
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	defer s.Close()

	var mode string
	if err := s.DB().QueryRow("PRAGMA journal_mode").Scan(&mode); err != nil {
		t.Fatalf("journal_mode: %v", err)
	}
	if mode != "wal" {
		t.Fatalf("journal_mode = %q, want wal", mode)
	}
}

func TestSequenceCounter_Monotonic(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	var prev int64
	for i := 0; i < 5; i++ {
		n, err := s.seq.Next(ctx)
		if err != nil {
			t.Fatalf("next: %v", err)
		}
		if n <= prev {
			t.Fatalf("sequence went from %d to %d", prev, n)
		}
		prev = n
	}
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	for i, purpose := range []string{"bundle", "judge", "bundle"} {
		errMsg := ""
		if i == 1 {
			errMsg = "boom"
		}
		err := repo.AppendLLMRequest(ctx, LLMRequestEventData{
			Provider:     "mock",
			Model:        "mock",
			Purpose:      purpose,
			InputTokens:  10 * (i + 1),
			OutputTokens: 5,
			LatencyMs:    int64(100 * (i + 1)),
			Success:      i != 1,
			ErrorMessage: errMsg,
			RequestBody:  "[user]\nprompt",
			ResponseBody: "<problem>x</problem>",
		})
		if err != nil {
			t.Fatalf("append %d: %v", i, err)
		}
	}

	all, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	if err != nil {
		t.Fatalf("query: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("expected 3 events, got %d", len(all))
	}
	if all[0].Sequence < all[1].Sequence {
		t.Fatal("expected newest first")
	}
	if all[1].Success || all[1].ErrorMessage != "boom" {
		t.Fatalf("unexpected middle event: %+v", all[1])
	}

	limited, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 2, Purpose: "bundle"})
	if err != nil {
		t.Fatalf("query limited: %v", err)
	}
	if len(limited) != 2 {
		t.Fatalf("expected 2 bundle events, got %d", len(limited))
	}

	got, err := repo.GetLLMEvent(ctx, all[2].ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil || got.ResponseBody != "<problem>x</problem>" {
		t.Fatalf("unexpected event: %+v", got)
	}

	missing, err := repo.GetLLMEvent(ctx, 9999)
	if err != nil {
		t.Fatalf("get missing: %v", err)
	}
	if missing != nil {
		t.Fatal("expected nil for a missing event")
	}
}

func TestEventRepo_Usage(t *testing.T) {
	s := openTestStore(t)
	repo := s.EventRepo()
	ctx := context.Background()

	rows := []LLMRequestEventData{
		{Provider: "p", Model: "m1", Purpose: "bundle", InputTokens: 100, OutputTokens: 50, LatencyMs: 200, Success: true},
		{Provider: "p", Model: "m1", Purpose: "bundle", InputTokens: 100, OutputTokens: 50, LatencyMs: 400, Success: true},
		{Provider: "p", Model: "m2", Purpose: "judge", InputTokens: 10, OutputTokens: 5, LatencyMs: 50, Success: true},
	}
	for _, r := range rows {
		if err := repo.AppendLLMRequest(ctx, r); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	if err != nil {
		t.Fatalf("usage by purpose: %v", err)
	}
	if len(byPurpose) != 2 {
		t.Fatalf("expected 2 purposes, got %d", len(byPurpose))
	}
	b := byPurpose[0]
	if b.Purpose != "bundle" || b.Calls != 2 || b.InputTokens != 200 || b.OutputTokens != 100 || b.AvgLatencyMs != 300 {
		t.Fatalf("unexpected bundle usage: %+v", b)
	}

	byModel, err := repo.LLMUsageByModel(ctx)
	if err != nil {
		t.Fatalf("usage by model: %v", err)
	}
	if len(byModel) != 2 || byModel[1].Model != "m2" || byModel[1].Calls != 1 {
		t.Fatalf("unexpected model usage: %+v", byModel)
	}
}

func TestBatchRepo_SaveGetList(t *testing.T) {
	s := openTestStore(t)
	repo := s.BatchRepo()
	ctx := context.Background()

	seed := int64(42)
	first := &BatchRecord{
		ID:        "b-1",
		CreatedAt: time.Now().Truncate(time.Millisecond),
		Category:  "Fractions",
		Level:     "Elementary school grades 1-5",
		Scenario:  "engineering",
		Seed:      &seed,
		ItemCount: 5,
		Model:     "mock",
		Items:     json.RawMessage(`[{"id":1}]`),
	}
	if err := repo.Save(ctx, first); err != nil {
		t.Fatalf("save: %v", err)
	}
	if first.Sequence == 0 {
		t.Fatal("expected sequence to be assigned")
	}
	second := &BatchRecord{ID: "b-2", Category: "Algebra", Level: "x", Scenario: "sport", ItemCount: 3, Failures: 1, Items: json.RawMessage(`[]`)}
	if err := repo.Save(ctx, second); err != nil {
		t.Fatalf("save second: %v", err)
	}

	got, err := repo.Get(ctx, "b-1")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got == nil {
		t.Fatal("expected batch")
	}
	if got.Seed == nil || *got.Seed != 42 {
		t.Fatalf("seed = %v, want 42", got.Seed)
	}
	if string(got.Items) != `[{"id":1}]` {
		t.Fatalf("items = %s", got.Items)
	}
	if !got.CreatedAt.Equal(first.CreatedAt) {
		t.Fatalf("created_at = %v, want %v", got.CreatedAt, first.CreatedAt)
	}

	list, err := repo.List(ctx, 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(list) != 2 || list[0].ID != "b-2" {
		t.Fatalf("unexpected list order: %+v", list)
	}
	if list[0].Seed != nil {
		t.Fatal("expected nil seed for unseeded batch")
	}

	none, err := repo.Get(ctx, "missing")
	if err != nil || none != nil {
		t.Fatalf("expected (nil, nil) for missing batch, got (%v, %v)", none, err)
	}
}
