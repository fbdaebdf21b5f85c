package problemgen

import (
	"fmt"
	"math/rand/v2"
	"strings"

	"github.com/abhisek/olympiad/internal/catalog"
)

// maxDraws bounds the rejection-resample loops. Every template also has a
// known-good parameter set used if the loop runs dry.
const maxDraws = 1000

type fallbackKey struct {
	category string
	level    string
}

// fallbackTemplate builds item fields from random parameters. Output
// depends only on the scene and the rng stream.
type fallbackTemplate func(s scene, rng *rand.Rand) FieldBundle

var fallbackTemplates = map[fallbackKey]fallbackTemplate{
	{catalog.CategoryFractions, catalog.LevelLowerElementary}:   fractionsTwoParts,
	{catalog.CategoryFractions, catalog.LevelMiddleSchool}:      fractionsOfRemainder(false),
	{catalog.CategoryFractions, catalog.LevelHighSchool}:        fractionsOfRemainder(true),
	{catalog.CategoryPercentages, catalog.LevelLowerElementary}: percentRaiseDiscount,
	{catalog.CategoryPercentages, catalog.LevelMiddleSchool}:    percentRaiseDiscount,
	{catalog.CategoryPercentages, catalog.LevelHighSchool}:      percentRaiseDiscount,
}

// HasFallback reports whether a deterministic template exists for the pair.
func HasFallback(category, level string) bool {
	_, ok := fallbackTemplates[fallbackKey{category, level}]
	return ok
}

// Fallback synthesizes item fields without the model. category, level and
// scenario are canonical keys. The same rng state yields identical output.
func Fallback(category, level, scenario string, rng *rand.Rand) (FieldBundle, error) {
	tmpl, ok := fallbackTemplates[fallbackKey{category, level}]
	if !ok {
		return nil, fmt.Errorf("%w for %s / %s", ErrNoFallback, category, level)
	}
	return tmpl(sceneFor(scenario), rng), nil
}

// scene holds scenario wording that fits the templates' grammar: items is
// a genitive plural, priced a genitive singular.
type scene struct {
	label   string
	setting string
	items   string
	priced  string
}

var scenes = map[string]scene{
	catalog.ScenarioEngineering: {setting: "W hali montażowej zespół przygotowuje konstrukcję kładki dla pieszych.", items: "elementów konstrukcji", priced: "zestawu narzędzi pomiarowych"},
	"transport":                 {setting: "Przewoźnik planuje obsługę dalekobieżnego pociągu.", items: "miejsc w pociągu", priced: "biletu miesięcznego"},
	"sport":                     {setting: "Klub sportowy przygotowuje się do nowego sezonu.", items: "piłek treningowych", priced: "karnetu na halę"},
	"food and beverage":         {setting: "Restauracja przygotowuje się do dużego przyjęcia.", items: "porcji deseru", priced: "zestawu obiadowego"},
	"entertainment":             {setting: "Organizator planuje letni festiwal muzyczny.", items: "biletów na koncert", priced: "karnetu festiwalowego"},
	"family":                    {setting: "Rodzina robi zapasy na zimę.", items: "słoików z przetworami", priced: "nowej pralki"},
	"holidays":                  {setting: "Grupa przyjaciół planuje wspólny wyjazd.", items: "pocztówek z podróży", priced: "pakietu wycieczkowego"},
}

func sceneFor(scenario string) scene {
	s, ok := scenes[scenario]
	if !ok {
		s = scene{setting: "Rozważ następującą sytuację.", items: "przedmiotów", priced: "produktu"}
	}
	s.label = catalog.ScenarioLabel(scenario)
	return s
}

func (s scene) intro() string {
	return fmt.Sprintf("Scenariusz: %s. %s", s.label, s.setting)
}

func pick[T any](rng *rand.Rand, xs []T) T {
	return xs[rng.IntN(len(xs))]
}

// fractionsTwoParts: two distinct parts of a total with a common
// denominator; asks for the remainder as a count and a reduced fraction.
func fractionsTwoParts(s scene, rng *rand.Rand) FieldBundle {
	totals := []int64{12, 18, 20, 24, 30, 36, 40, 48, 60}
	dens := []int64{3, 4, 5, 6, 8, 10, 12}

	total, den, a, b := int64(24), int64(8), int64(3), int64(2)
	for range maxDraws {
		t, d := pick(rng, totals), pick(rng, dens)
		x, y := 1+rng.Int64N(d-1), 1+rng.Int64N(d-1)
		if t%d != 0 || x == y || x+y >= d {
			continue
		}
		total, den, a, b = t, d, x, y
		break
	}

	partA, partB := total*a/den, total*b/den
	rest := total - partA - partB
	restFrac, _ := newFraction(rest, total)

	problem := fmt.Sprintf(
		"%s Łączna liczba %s wynosi %d. Najpierw wykorzystano %d/%d wszystkich %s, a potem kolejne %d/%d wszystkich %s. "+
			"Ile %s pozostało i jaką częścią całości jest ta reszta? Podaj odpowiedź jako liczbę oraz jako ułamek nieskracalny.",
		s.intro(), s.items, total, a, den, s.items, b, den, s.items, s.items)

	outline := fmt.Sprintf(
		"Liczymy kolejno: 1) %d/%d · %d = %d; 2) %d/%d · %d = %d; 3) odejmujemy obie części od całości, co daje %d − %d − %d = %d. "+
			"Reszta stanowi %d/%d całości, a po skróceniu %s. Odpowiedź: pozostało %d, czyli %s całości.",
		a, den, total, partA, b, den, total, partB, total, partA, partB, rest, rest, total, restFrac, rest, restFrac)

	sanity := fmt.Sprintf(
		"Sprawdzenie: części %d, %d i %d sumują się do %d. Ułamki %d/%d, %d/%d oraz reszta %d/%d dają razem %d/%d, czyli całość.",
		partA, partB, rest, total, a, den, b, den, den-a-b, den, den, den)

	return FieldBundle{FieldProblem: problem, FieldOutline: outline, FieldSanityCheck: sanity}
}

// fractionsOfRemainder: a/b of the total, then c/d of what is left. The
// high-school variant also asks for the single equivalent fraction.
func fractionsOfRemainder(askEquivalent bool) fallbackTemplate {
	return func(s scene, rng *rand.Rand) FieldBundle {
		firstDens := []int64{3, 4, 5, 6}
		secondDens := []int64{2, 3, 4, 5}

		var a, b, c, d, total int64 = 1, 4, 2, 3, 48
		for range maxDraws {
			bb, dd := pick(rng, firstDens), pick(rng, secondDens)
			aa, cc := 1+rng.Int64N(bb-1), 1+rng.Int64N(dd-1)
			t := bb * dd * (2 + rng.Int64N(11))
			first := t * aa / bb
			second := (t - first) * cc / dd
			if first == second || first >= t || second >= t || t-first-second <= 0 {
				continue
			}
			a, b, c, d, total = aa, bb, cc, dd, t
			break
		}

		first := total * a / b
		left := total - first
		second := left * c / d
		rest := left - second
		restFrac, _ := newFraction(rest, total)
		usedFrac, _ := newFraction(first+second, total)

		question := fmt.Sprintf("Ile %s pozostało i jaką częścią całości jest ta reszta?", s.items)
		if askEquivalent {
			question += " Jakim jednym ułamkiem całości można zastąpić oba etapy zużycia?"
		}
		problem := fmt.Sprintf(
			"%s Łączna liczba %s wynosi %d. W pierwszym etapie wykorzystano %d/%d wszystkich %s. "+
				"W drugim etapie wykorzystano %d/%d tego, co zostało po pierwszym etapie. %s Odpowiedzi podaj jako liczby i ułamki nieskracalne.",
			s.intro(), s.items, total, a, b, s.items, c, d, question)

		var out strings.Builder
		fmt.Fprintf(&out, "W pierwszym etapie zużyto %d/%d · %d = %d, więc zostaje %d − %d = %d. ", a, b, total, first, total, first, left)
		fmt.Fprintf(&out, "W drugim etapie zużyto %d/%d · %d = %d, więc zostaje %d − %d = %d. ", c, d, left, second, left, second, rest)
		fmt.Fprintf(&out, "Reszta to %d/%d całości, czyli %s.", rest, total, restFrac)
		if askEquivalent {
			fmt.Fprintf(&out, " Zużyto łącznie %d/%d = %s całości, co jest jednym równoważnym ułamkiem.", first+second, total, usedFrac)
		}

		sanity := fmt.Sprintf(
			"Sprawdzenie: %d + %d + %d = %d, więc nic nie zginęło. Drugi ułamek liczymy od reszty %d, a nie od całości %d; "+
				"stąd reszta końcowa to (%d/%d)·(%d/%d) całości, czyli %s.",
			first, second, rest, total, left, total, b-a, b, d-c, d, restFrac)

		return FieldBundle{FieldProblem: problem, FieldOutline: out.String(), FieldSanityCheck: sanity}
	}
}

// percentRaiseDiscount: raise by p% then discount by q% (p != q), compare
// with the original price.
func percentRaiseDiscount(s scene, rng *rand.Rand) FieldBundle {
	rates := []int64{5, 10, 15, 20, 25, 30, 40, 50}

	var price, p, q int64 = 400, 25, 20
	for range maxDraws {
		pp, qq := pick(rng, rates), pick(rng, rates)
		pr := 100 * (2 + rng.Int64N(19))
		raised := pr * (100 + pp) / 100
		if pp == qq || raised*(100-qq)%100 != 0 {
			continue
		}
		price, p, q = pr, pp, qq
		break
	}

	raised := price * (100 + p) / 100
	final := raised * (100 - q) / 100
	factor, _ := newFraction((100+p)*(100-q), 10000)

	var verdict, diffClaim string
	switch {
	case final > price:
		verdict = fmt.Sprintf("wyższa od początkowej o %d zł", final-price)
		diffClaim = fmt.Sprintf("Różnica wynosi %d − %d = %d zł na korzyść sprzedawcy.", final, price, final-price)
	case final < price:
		verdict = fmt.Sprintf("niższa od początkowej o %d zł", price-final)
		diffClaim = fmt.Sprintf("Różnica wynosi %d − %d = %d zł na korzyść kupującego.", price, final, price-final)
	default:
		verdict = "równa początkowej"
		diffClaim = "Różnica wynosi 0 zł."
	}

	problem := fmt.Sprintf(
		"%s Cena %s wynosiła %d zł. Najpierw cenę podniesiono o %d%%, a później nową cenę obniżono o %d%%. "+
			"Czy cena końcowa jest wyższa, niższa czy równa początkowej i o ile złotych się różni? Jakim jednym mnożnikiem można zastąpić obie zmiany?",
		s.intro(), s.priced, price, p, q)

	outline := fmt.Sprintf(
		"Po podwyżce cena to %d/100 · %d = %d zł. Po obniżce cena to %d/100 · %d = %d zł. %s "+
			"Łączny mnożnik to %d/100 · %d/100 = %s, więc cena końcowa jest %s.",
		100+p, price, raised, 100-q, raised, final, diffClaim, 100+p, 100-q, factor, verdict)

	sanity := fmt.Sprintf(
		"Sprawdzenie: procenty liczymy od różnych podstaw, więc podwyżka o %d%% i obniżka o %d%% nie znoszą się wprost. "+
			"Mnożnik %s zastosowany do %d zł daje ponownie %d zł.",
		p, q, factor, price, final)

	return FieldBundle{FieldProblem: problem, FieldOutline: outline, FieldSanityCheck: sanity}
}
