// Package render draws batches and catalog listings for the terminal.
package render

import (
	"fmt"
	"io"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/olympiad/internal/catalog"
	"github.com/abhisek/olympiad/internal/problemgen"
	"github.com/abhisek/olympiad/internal/store"
)

// Renderer writes human-readable output.
type Renderer struct {
	styles Styles
	width  int
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithPlain disables styling.
func WithPlain() Option {
	return func(r *Renderer) { r.styles = PlainStyles() }
}

// WithWidth wraps item text at width columns. Zero disables wrapping.
func WithWidth(width int) Option {
	return func(r *Renderer) { r.width = width }
}

// New creates a Renderer with the default styles, wrapping at 88 columns.
func New(opts ...Option) *Renderer {
	r := &Renderer{styles: DefaultStyles(), width: 88}
	for _, o := range opts {
		o(r)
	}
	return r
}

// Batch writes every item of b as a card, followed by any failures.
func (r *Renderer) Batch(w io.Writer, b *problemgen.Batch) error {
	header := fmt.Sprintf("%s · %s · %s",
		catalog.CategoryLabel(b.Request.Category),
		catalog.LevelLabel(b.Request.Level),
		catalog.ScenarioLabel(b.Request.Scenario))
	meta := fmt.Sprintf("batch %s · model %s", b.ID, b.Model)
	if b.Request.Seed != nil {
		meta += fmt.Sprintf(" · seed=%d", *b.Request.Seed)
	}

	var out strings.Builder
	out.WriteString(r.styles.Title.Render(header))
	out.WriteString("\n")
	out.WriteString(r.styles.Meta.Render(meta))
	out.WriteString("\n\n")

	for _, it := range b.Items {
		out.WriteString(r.item(it))
		out.WriteString("\n\n")
	}
	for _, f := range b.Failures {
		out.WriteString(r.styles.Warn.Render(fmt.Sprintf("✗ kandydat %d (%s): %s", f.Index, f.ChallengeType, f.Reason)))
		out.WriteString("\n")
	}

	_, err := io.WriteString(w, out.String())
	return err
}

// Items writes stored items without batch metadata.
func (r *Renderer) Items(w io.Writer, items []problemgen.GeneratedItem) error {
	var out strings.Builder
	for _, it := range items {
		out.WriteString(r.item(it))
		out.WriteString("\n\n")
	}
	_, err := io.WriteString(w, out.String())
	return err
}

func (r *Renderer) item(it problemgen.GeneratedItem) string {
	source := r.styles.Model.Render(string(it.Source))
	if it.Source == problemgen.SourceFallback {
		source = r.styles.Fallback.Render(string(it.Source))
	}

	head := fmt.Sprintf("#%d · %s · %s · %s", it.ID, it.Category, it.Level, it.Scenario)
	typ := fmt.Sprintf("Typ: %s · Narzędzie: %s · Źródło: %s", it.ChallengeType, it.Tool, source)

	sections := []string{
		r.styles.Meta.Render(head),
		r.styles.Meta.Render(typ),
		"",
		r.styles.Label.Render("Treść zadania"),
		r.wrap(it.Problem),
		"",
		r.styles.Label.Render("Szkic rozwiązania"),
		r.wrap(it.SolutionOutline),
		"",
		r.styles.Label.Render("Weryfikacja"),
		r.wrap(it.Verification),
	}
	return r.styles.Card.Render(strings.Join(sections, "\n"))
}

func (r *Renderer) wrap(s string) string {
	if r.width <= 0 {
		return r.styles.Body.Render(s)
	}
	return r.styles.Body.Width(r.width).Render(s)
}

// Catalog writes the accepted category, level and scenario names.
func (r *Renderer) Catalog(w io.Writer) error {
	var out strings.Builder

	out.WriteString(r.styles.Title.Render("Dziedziny"))
	out.WriteString("\n")
	for _, c := range catalog.Categories() {
		fmt.Fprintf(&out, "  %-32s %s\n", c.Label, r.styles.Meta.Render(c.Key))
	}

	out.WriteString("\n")
	out.WriteString(r.styles.Title.Render("Poziomy"))
	out.WriteString("\n")
	for _, l := range catalog.Levels() {
		fmt.Fprintf(&out, "  %-32s %s\n", l.Label, r.styles.Meta.Render(l.Key))
	}

	out.WriteString("\n")
	out.WriteString(r.styles.Title.Render("Scenariusze"))
	out.WriteString("\n")
	for _, s := range catalog.Scenarios() {
		fmt.Fprintf(&out, "  %-32s %s\n", s.Label, r.styles.Meta.Render(s.Key))
	}

	_, err := io.WriteString(w, out.String())
	return err
}

// BatchList writes one line per stored batch.
func (r *Renderer) BatchList(w io.Writer, recs []store.BatchRecord) error {
	if len(recs) == 0 {
		_, err := io.WriteString(w, "No batches found.\n")
		return err
	}

	var out strings.Builder
	fmt.Fprintf(&out, "%-36s  %-16s  %-22s  %-18s  %-12s  %5s  %s\n",
		"ID", "Created", "Branch", "Level", "Scenario", "Items", "Seed")
	out.WriteString(r.styles.Meta.Render(strings.Repeat("─", 130)))
	out.WriteString("\n")
	for _, rec := range recs {
		seed := "-"
		if rec.Seed != nil {
			seed = fmt.Sprintf("%d", *rec.Seed)
		}
		items := fmt.Sprintf("%d", rec.ItemCount)
		if rec.Failures > 0 {
			items += r.styles.Warn.Render("!")
		}
		fmt.Fprintf(&out, "%-36s  %-16s  %-22s  %-18s  %-12s  %5s  %s\n",
			rec.ID,
			rec.CreatedAt.Local().Format("2006-01-02 15:04"),
			truncate(catalog.CategoryLabel(rec.Category), 22),
			truncate(catalog.LevelLabel(rec.Level), 18),
			truncate(catalog.ScenarioLabel(rec.Scenario), 12),
			items,
			seed,
		)
	}
	_, err := io.WriteString(w, out.String())
	return err
}

func truncate(s string, n int) string {
	if lipgloss.Width(s) <= n {
		return s
	}
	runes := []rune(s)
	if len(runes) > n {
		runes = runes[:n]
	}
	return string(runes)
}
