package render

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/abhisek/olympiad/internal/catalog"
	"github.com/abhisek/olympiad/internal/problemgen"
	"github.com/abhisek/olympiad/internal/store"
)

func testBatch() *problemgen.Batch {
	seed := int64(42)
	return &problemgen.Batch{
		ID: uuid.MustParse("6f1c1c0a-58a1-4b8f-9d59-0c8a1a3f2b10"),
		Request: problemgen.GenerationRequest{
			Category: catalog.CategoryFractions,
			Level:    catalog.LevelLowerElementary,
			Scenario: catalog.ScenarioEngineering,
			Seed:     &seed,
			Count:    1,
		},
		Items: []problemgen.GeneratedItem{{
			ID:              1,
			Category:        "Ułamki",
			Level:           "SP-1-5",
			Scenario:        "inżynieria",
			ChallengeType:   "ułamki egipskie z ograniczeniami",
			Tool:            "—",
			Problem:         "Scenariusz: inżynieria. Ile elementów zostało?",
			SolutionOutline: "Liczymy 3/8 · 48 = 18.",
			Verification:    "Sprawdzenie sum.",
			Source:          problemgen.SourceFallback,
		}},
		Failures: []problemgen.ItemFailure{{Index: 4, ChallengeType: "x", Reason: "no fallback template"}},
		Model:    "mock",
	}
}

func TestBatch_Plain(t *testing.T) {
	var buf bytes.Buffer
	if err := New(WithPlain(), WithWidth(0)).Batch(&buf, testBatch()); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"Ułamki · SP-1-5 · inżynieria",
		"seed=42",
		"#1 · Ułamki · SP-1-5 · inżynieria",
		"Źródło: fallback",
		"Treść zadania",
		"Liczymy 3/8 · 48 = 18.",
		"kandydat 4",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "\x1b[") {
		t.Error("plain output must not contain escape sequences")
	}
}

func TestBatch_WrapsLongText(t *testing.T) {
	b := testBatch()
	b.Items[0].Problem = strings.Repeat("słowo ", 40)

	var buf bytes.Buffer
	if err := New(WithPlain(), WithWidth(30)).Batch(&buf, b); err != nil {
		t.Fatalf("render: %v", err)
	}
	for _, line := range strings.Split(buf.String(), "\n") {
		if strings.Contains(line, "słowo") && len([]rune(strings.TrimRight(line, " "))) > 30 {
			t.Errorf("line not wrapped: %q", line)
		}
	}
}

func TestCatalog(t *testing.T) {
	var buf bytes.Buffer
	if err := New(WithPlain()).Catalog(&buf); err != nil {
		t.Fatalf("render: %v", err)
	}
	out := buf.String()
	for _, want := range []string{"Dziedziny", "Kombinatoryka", "Liceum-Technikum", "gastronomia"} {
		if !strings.Contains(out, want) {
			t.Errorf("catalog missing %q", want)
		}
	}
}

func TestBatchList(t *testing.T) {
	var buf bytes.Buffer
	if err := New(WithPlain()).BatchList(&buf, nil); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "No batches") {
		t.Errorf("unexpected empty output: %q", buf.String())
	}

	buf.Reset()
	seed := int64(7)
	recs := []store.BatchRecord{{
		ID: "abc", CreatedAt: time.Now(), Category: catalog.CategoryPercentages,
		Level: catalog.LevelMiddleSchool, Scenario: "sport", Seed: &seed, ItemCount: 5, Failures: 1,
	}}
	if err := New(WithPlain()).BatchList(&buf, recs); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{"abc", "Procenty", "SP-6-8", "5!", "7"} {
		if !strings.Contains(out, want) {
			t.Errorf("list missing %q:\n%s", want, out)
		}
	}
}
