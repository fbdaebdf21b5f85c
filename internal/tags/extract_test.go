package tags

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtract_CanonicalTags(t *testing.T) {
	reply := `Oto zadanie:
<problem>
  W warsztacie (inżynieria) jest 48 prętów.
</problem>
<solution_outline>Liczymy 3/8 z 48.</solution_outline>
<sanity_check>18 + 12 + 18 = 48</sanity_check>`

	v, ok := Extract(reply, FieldProblem)
	require.True(t, ok)
	assert.Equal(t, "W warsztacie (inżynieria) jest 48 prętów.", v)

	v, ok = Extract(reply, FieldOutline)
	require.True(t, ok)
	assert.Equal(t, "Liczymy 3/8 z 48.", v)

	v, ok = Extract(reply, FieldSanityCheck)
	require.True(t, ok)
	assert.Equal(t, "18 + 12 + 18 = 48", v)
}

func TestExtract_CaseAndWhitespaceInDelimiters(t *testing.T) {
	v, ok := Extract("< PROBLEM >treść</ problem >", FieldProblem)
	require.True(t, ok)
	assert.Equal(t, "treść", v)
}

func TestExtract_AliasEquivalence(t *testing.T) {
	const content = "Policz pole trójkąta o bokach 3, 4 i 5."
	for field, aliases := range Aliases {
		for _, alias := range aliases {
			reply := fmt.Sprintf("<%s>%s</%s>", alias, content, alias)
			got, ok := Extract(reply, field)
			require.True(t, ok, "field %s alias %s", field, alias)
			assert.Equal(t, content, got, "field %s alias %s", field, alias)
		}
	}
}

func TestExtract_SeparatorDrift(t *testing.T) {
	for _, tag := range []string{"solution-outline", "solution outline", "SolutionOutline", "szkic-rozwiązania"} {
		got, ok := Extract("<"+tag+">krok 1</"+tag+">", FieldOutline)
		require.True(t, ok, tag)
		assert.Equal(t, "krok 1", got, tag)
	}
}

func TestExtract_EscapedAndFenced(t *testing.T) {
	reply := "```html\n&lt;problem&gt;Ile to 2+2?&lt;/problem&gt;\n```"
	got, ok := Extract(reply, FieldProblem)
	require.True(t, ok)
	assert.Equal(t, "Ile to 2+2?", got)
}

func TestExtract_FirstNonEmptyMatchWins(t *testing.T) {
	reply := "<problem>  </problem> <task>druga</task> <problem>trzecia</problem>"
	got, ok := Extract(reply, FieldProblem)
	require.True(t, ok)
	assert.Equal(t, "trzecia", got, "canonical alias is tried before task")
}

func TestExtract_HeadingFallback(t *testing.T) {
	reply := `<problem>Zadanie o pociągach.</problem>
Szkic rozwiązania: najpierw liczymy czas,
potem drogę.
Sprawdzenie: 120 km / 2 h = 60 km/h.
<extra>x</extra>`

	outline, ok := Extract(reply, FieldOutline)
	require.True(t, ok)
	assert.Equal(t, "najpierw liczymy czas,\npotem drogę.", outline)

	check, ok := Extract(reply, FieldSanityCheck)
	require.True(t, ok)
	assert.Equal(t, "120 km / 2 h = 60 km/h.", check)
}

func TestExtract_HeadingMarkdown(t *testing.T) {
	reply := "**Outline:** split the set into pairs\n**Sanity check:** 10 pairs cover 20 elements"
	outline, ok := Extract(reply, FieldOutline)
	require.True(t, ok)
	assert.Equal(t, "split the set into pairs", outline)

	check, ok := Extract(reply, FieldSanityCheck)
	require.True(t, ok)
	assert.Equal(t, "10 pairs cover 20 elements", check)
}

func TestExtract_ProblemHasNoHeadingFallback(t *testing.T) {
	_, ok := Extract("Zadanie: ile to 2+2?", FieldProblem)
	assert.False(t, ok)
}

func TestExtract_Missing(t *testing.T) {
	for _, reply := range []string{"", "brak tagów", "<problem>niezamknięty", "<problem</problem>"} {
		_, ok := Extract(reply, FieldProblem)
		assert.False(t, ok, "reply %q", reply)
	}
}

func TestExtract_EmptyBlockIsPresent(t *testing.T) {
	for _, reply := range []string{"<revised_problem></revised_problem>", "<revised_problem>  \n </revised_problem>"} {
		got, ok := Extract(reply, "revised_problem")
		assert.True(t, ok, "reply %q", reply)
		assert.Empty(t, got)
	}

	got, ok := Extract("<outline></outline>\nSzkic: najpierw pary.", FieldOutline)
	require.True(t, ok)
	assert.Equal(t, "najpierw pary.", got, "heading content beats an empty block")
}

func TestExtract_UnknownFieldUsesOwnName(t *testing.T) {
	got, ok := Extract("<difficulty_score> 7 </difficulty_score>", "difficulty_score")
	require.True(t, ok)
	assert.Equal(t, "7", got)
}

func TestExtract_RoundTrip(t *testing.T) {
	alphabet := []rune("abcdefghijklmnopqrstuvwxyząćęłńóśźż ABCXYZ0123456789.,:;!?()+-=*/%\n\t")
	r := rand.New(rand.NewPCG(1, 2))
	for i := 0; i < 500; i++ {
		n := 1 + r.IntN(80)
		var b strings.Builder
		for j := 0; j < n; j++ {
			b.WriteRune(alphabet[r.IntN(len(alphabet))])
		}
		content := strings.TrimSpace(b.String())
		if content == "" {
			continue
		}
		for _, field := range []string{FieldProblem, FieldOutline, FieldSanityCheck} {
			reply := "<" + field + ">" + content + "</" + field + ">"
			got, ok := Extract(reply, field)
			require.True(t, ok, "content %q", content)
			require.Equal(t, content, got)
		}
	}
}

func TestExtractAll(t *testing.T) {
	fields := []string{FieldProblem, FieldOutline, FieldSanityCheck}

	bundle, missing := ExtractAll("<problem>a</problem><outline>b</outline><check>c</check>", fields)
	require.Empty(t, missing)
	assert.Equal(t, map[string]string{FieldProblem: "a", FieldOutline: "b", FieldSanityCheck: "c"}, bundle)

	bundle, missing = ExtractAll("<problem>a</problem><outline></outline><check>c</check>", fields)
	require.Empty(t, missing)
	assert.Equal(t, "", bundle[FieldOutline])

	bundle, missing = ExtractAll("<problem>a</problem>", fields)
	assert.Nil(t, bundle)
	assert.Equal(t, []string{FieldOutline, FieldSanityCheck}, missing)
}
