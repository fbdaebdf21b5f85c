package problemgen

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"
)

const systemPrompt = `Jesteś twórcą olimpijskich zadań matematycznych. Odpowiadaj po polsku. Bądź ścisły i zwięzły.`

const judgeSystemPrompt = `Jesteś rygorystycznym weryfikatorem zadań. Sprawdzasz jednoznaczność, brak sprzeczności, ` +
	`dopasowanie do gałęzi i poziomu ORAZ poziom trudności (olimpijski w ramach etapu). ` +
	`Zidentyfikuj, czy istnieje kluczowy krok/insight; odrzuć zadania rutynowe.`

// fieldExamples are the sample bodies shown in format instructions. The
// junk filter rejects them if a model echoes them back.
var fieldExamples = map[string]string{
	FieldProblem:     "Treść…",
	FieldOutline:     "Krótki szkic…",
	FieldSanityCheck: "Bardzo krótki sanity check…",
}

// buildGenerationPrompt constructs the item request from its resolved context.
func buildGenerationPrompt(in ItemInput) string {
	var b strings.Builder

	b.WriteString("Twoje zadanie:\n")
	fmt.Fprintf(&b, "1) Wygeneruj JEDNO wymagające zadanie olimpijskie w gałęzi: %q.\n", in.Category.Label)
	fmt.Fprintf(&b, "2) Typ wyzwania (użyj lub rozumnie zinterpretuj): %q.\n", in.ChallengeType)
	b.WriteString("3) Dobierz metodę rozwiązania naturalnie (np. szufladkowa, inwariant/monowariant, konstrukcja, faktoryzacja, teleskopowanie). " +
		"Zadanie ma wymagać przynajmniej jednego nieoczywistego kroku.\n")
	fmt.Fprintf(&b, "4) Kontekst/scenariusz: %q. Użyj w treści dosłownie słowa %q. (Wskazówka: %s)\n", in.Scenario.Label, in.Scenario.Label, in.Scenario.Hint)
	fmt.Fprintf(&b, "5) %s\n", in.Level.Guideline)
	fmt.Fprintf(&b, "6) Zalecenia jakościowe dla tej gałęzi: %s\n", in.Category.QualityNote)
	b.WriteString("7) Treść ma prowadzić do odpowiedzi dokładnej (np. ułamek, pierwiastek, zbiór rozwiązań). Unikaj zadań czysto obliczeniowych.\n")
	b.WriteString("8) Zapewnij jednoznaczność i możliwość pełnego rozwiązania; bez rachunku różniczkowego, bez zbędnych współrzędnych.\n")
	b.WriteString("9) Nie podawaj pełnego rozwiązania, tylko krótki szkic idei (2–6 zdań).\n")
	b.WriteString("10) Pisz po polsku, na poziomie odpowiednim dla uczniów.\n")
	fmt.Fprintf(&b, "11) Znacznik losowy (nie wypisuj go): [%d].", in.SeedTag)

	if hint := strings.TrimSpace(in.RevisionHint); hint != "" {
		b.WriteString("\n\nWeryfikator odrzucił poprzednią wersję i zaproponował poniższą poprawkę. " +
			"Potraktuj ją jako wskazówkę, ale zadanie ma spełniać wszystkie powyższe wymagania:\n<<<\n")
		b.WriteString(hint)
		b.WriteString("\n>>>")
	}
	return b.String()
}

// fieldInstruction asks for exactly one delimited field.
func fieldInstruction(field string) string {
	return "Zwróć TYLKO JEDEN tag XML bez opisu ani dodatkowych linii.\n" +
		"FORMAT:\n" + wrap(field, "…") + "\n" +
		"Bez code-fence'ów, bez atrybutów, bez komentarzy."
}

// fieldRepair is the stricter follow-up after an unparseable reply.
func fieldRepair(field string) string {
	return "Twoja poprzednia odpowiedź była niepoprawna.\n" +
		"Podaj TYLKO:\n" + wrap(field, "…") + "\n" +
		"Bez niczego więcej. Pamiętaj o zamykającym tagu " + closeTag(field) + "."
}

// fieldsInstruction asks for all fields in order, one block per line.
func fieldsInstruction(fields []string) string {
	var b strings.Builder
	b.WriteString("Zwróć TYLKO poniższe tagi XML dokładnie w tej KOLEJNOŚCI i nic więcej.\n")
	b.WriteString("NIE używaj code-fence'ów ani atrybutów w tagach. Zachowaj każdy tag w osobnej linii.\n")
	if example := fieldsExample(fields); example != "" {
		b.WriteString("PRZYKŁAD:\n")
		b.WriteString(example)
		b.WriteString("\n\n")
	}
	b.WriteString("TERAZ ZWRÓĆ:\n")
	b.WriteString(fieldOrder(fields))
	return b.String()
}

func fieldsRepair(fields, missing []string) string {
	return "Poprzednia odpowiedź była niepoprawna (brak: " + strings.Join(missing, ", ") + "). " +
		"Zwróć DOKŁADNIE te tagi, po jednym na linię, bez opisów i bez fence'ów, każdy z zamykającym tagiem:\n" +
		fieldOrder(fields)
}

func fieldsExample(fields []string) string {
	lines := make([]string, 0, len(fields))
	for _, f := range fields {
		ex, ok := fieldExamples[f]
		if !ok {
			return ""
		}
		lines = append(lines, wrap(f, ex))
	}
	return strings.Join(lines, "\n")
}

func fieldOrder(fields []string) string {
	lines := make([]string, len(fields))
	for i, f := range fields {
		lines[i] = wrap(f, "…")
	}
	return strings.Join(lines, "\n")
}

func wrap(field, body string) string { return "<" + field + ">" + body + closeTag(field) }

func closeTag(field string) string { return "</" + field + ">" }

// Context turns for the per-field strategy.
func outlineContext(problem string) string {
	return "Treść zadania do szkicu:\n<<<\n" + problem + "\n>>>"
}

func sanityContext(outline string) string {
	return "Szkic idei:\n<<<\n" + outline + "\n>>>\nPodaj krótki sanity check: sprawdź liczby, jednostki i jednoznaczność odpowiedzi."
}

// correctionPrompt is the inline sub-turn sent after a validator rejected
// an extracted field. The format instruction follows it.
func correctionPrompt(field, rejected string, verr *ValidationError, in ItemInput) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Poprzednia wersja pola %s:\n<<<\n%s\n>>>\n", field, rejected)
	fmt.Fprintf(&b, "Ta odpowiedź nie spełnia wymagań: %s.\n", verr.Message)
	switch field {
	case FieldProblem:
		fmt.Fprintf(&b, "Napisz pełną treść zadania (co najmniej %d znaków) z konkretnymi liczbami i dosłownie ze słowem %q.\n", minProblemRunes, in.Scenario.Label)
	case FieldOutline:
		fmt.Fprintf(&b, "Napisz szkic rozwiązania w 2–6 zdaniach (co najmniej %d znaków), z poprawnymi rachunkami.\n", minOutlineRunes)
	case FieldSanityCheck:
		fmt.Fprintf(&b, "Napisz sanity check w pełnych zdaniach (co najmniej %d znaków).\n", minSanityRunes)
	}
	return strings.TrimRight(b.String(), "\n")
}

// buildJudgePrompt asks the verifier for the five judge fields.
func buildJudgePrompt(in ItemInput, bundle FieldBundle) (string, error) {
	payload, err := marshalBundle(bundle)
	if err != nil {
		return "", err
	}

	var b strings.Builder
	b.WriteString("Sprawdź zadanie pod kątem:\n")
	b.WriteString("- jednoznaczności (czy dane są wystarczające, czy odpowiedź jest unikalna),\n")
	fmt.Fprintf(&b, "- zgodności z gałęzią %q i dobrymi praktykami tej gałęzi,\n", in.Category.Label)
	fmt.Fprintf(&b, "- dopasowania do poziomu %q,\n", in.Level.Label)
	b.WriteString("- trudności na poziomie olimpijskim (zbyt proste → podnieś wymagania; zbyt trudne → uprość minimalnie),\n")
	b.WriteString("- istnienia nieoczywistego kroku (jeśli brak, wprowadź go minimalną zmianą treści),\n")
	fmt.Fprintf(&b, "- ścisłego wplecenia scenariusza %q.\n\n", in.Scenario.Label)
	b.WriteString("Zwróć TYLKO poniższe tagi (angielskie 'true'/'false' dla wartości logicznych, liczba całkowita 0–10 dla oceny; " +
		"jeśli treść nie wymaga zmian, przepisz ją bez zmian w revised_problem):\n")
	b.WriteString(fieldOrder(judgeFields))
	b.WriteString("\n\nZadanie do sprawdzenia:\n")
	b.Write(payload)
	return b.String(), nil
}

// marshalBundle renders the item fields as JSON without HTML escaping.
func marshalBundle(bundle FieldBundle) ([]byte, error) {
	ordered := struct {
		Problem     string `json:"problem"`
		Outline     string `json:"solution_outline"`
		SanityCheck string `json:"sanity_check"`
	}{bundle[FieldProblem], bundle[FieldOutline], bundle[FieldSanityCheck]}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(ordered); err != nil {
		return nil, fmt.Errorf("encoding bundle for judge: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
