package catalog

// Canonical keys referenced from code.
const (
	CategoryFractions   = "Fractions"
	CategoryPercentages = "Percentages"

	LevelLowerElementary = "lower elementary school (grades 1-5)"
	LevelMiddleSchool    = "higher elementary school / middle school (grades 6-8)"
	LevelHighSchool      = "high school (grades 9-12)"

	ScenarioEngineering = "engineering"
)

// Lookups fold case and diacritics, so aliases list each spelling only once.
var seedCategories = []Category{
	{
		Key:   "Numbers and operations",
		Label: "Arytmetyka",
		ChallengeTypes: []string{
			"złożone zadanie na NWD/NWW w kontekście praktycznym",
			"nietrywialne własności cyfr i sum cyfr",
			"równoważność arytmetyczna z ukrytym wzorem rekurencyjnym",
			"nietypowe dzielenie z resztą w historii słownej",
			"szacowanie błędów i zaokrągleń w ciągu operacji",
			"sprytne łamanie nawiasów i porządek działań",
			"balansowanie wyrażeń z nietypowymi działaniami (operatory zdefiniowane)",
		},
		QualityNote: "Preferuj własności NWD/NWW, niezmienniki parzystości/sum cyfr, sprytne reszty modulo; unikaj czystych długich rachunków.",
		Aliases:     []string{"arithmetic", "arithmetics", "liczby i działania"},
	},
	{
		Key:   "Algebraic expressions",
		Label: "Wyrażenia algebraiczne",
		ChallengeTypes: []string{
			"sprytne rozbijanie ułamków algebraicznych",
			"identyczność wielomianowa z parametrem",
			"zastępstwo zmiennych i homogenizacja",
			"minimalizacja wartości wyrażenia pod warunkiem",
			"nierówności AM-GM/CS w przebraniu wyrażeń",
			"teleskopowanie iloczynów/sum po faktoryzacji",
		},
		QualityNote: "Wymagaj nietrywialnej faktoryzacji/teleskopowania/zastąpienia zmiennych; unikaj podstawienia liczb i obliczeń na wprost.",
		Aliases:     []string{"wrażenia algebraiczne"},
	},
	{
		Key:   "Equations and inequalities",
		Label: "Równania i nierówności",
		ChallengeTypes: []string{
			"nierówność z parametrem i warunkami istnienia",
			"równanie nietypowe z wartością bezwzględną i przypadkami",
			"równania symetryczne wymagające podstawień",
			"zadanie optymalizacyjne z ograniczeniami",
			"nierówność funkcjonalna z oszacowaniami",
		},
		QualityNote: "Dodaj parametr/dziedzinę/|x|, użyj klasycznych nierówności (AM-GM/CS) lub sprytnego podstawienia; unikaj czystego algorytmu.",
	},
	{
		Key:   "Systems of equations",
		Label: "Układy równań",
		ChallengeTypes: []string{
			"układ nieliniowy z symetrią",
			"układ eksponencjalno-logarytmiczny",
			"układ z parametrem i analiza rozwiązań",
			"układ z warunkami całkowitości",
		},
		QualityNote: "Wykorzystaj symetrię, eliminację nieliniową lub własności całkowitości; unikaj wyłącznie długiej eliminacji.",
	},
	{
		Key:   "Functions",
		Label: "Funkcje",
		ChallengeTypes: []string{
			"funkcja o nietypowej definicji kawałkami",
			"równanie funkcyjne na R/Z",
			"monotoniczność i odwracalność funkcji z parametrem",
			"maksimum/minimum funkcji z ograniczeniami",
		},
		QualityNote: "Preferuj równania funkcyjne/iniekcję/surjekcję/monotoniczność z analizą dziedziny; unikaj wykresów „na oko”.",
	},
	{
		Key:   CategoryPercentages,
		Label: "Procenty",
		ChallengeTypes: []string{
			"sekwencyjne rabaty i podwyżki w cyklu",
			"mieszanie dwóch polityk procentowych",
			"zysk/strata z podatkami i napiętymi ograniczeniami",
			"odwracanie operacji procentowych (cofanie rabatów)",
		},
		QualityNote: "Składane operacje nieprzemienne, cofanie operacji, różne stawki; unikaj jednego prostego wzoru.",
	},
	{
		Key:   CategoryFractions,
		Label: "Ułamki",
		ChallengeTypes: []string{
			"łańcuchy ułamków i ułamki łańcuchowe (intuicyjnie)",
			"porównywanie ułamków przez krzyżowanie/estymaty",
			"złożone skracanie z warunkami całkowitości",
			"ułamki egipskie z ograniczeniami",
		},
		QualityNote: "Ułamki łańcuchowe/egipskie, skracanie pod warunkiem całkowitości, porównania bez wspólnego mianownika wprost.",
	},
	{
		Key:   "Powers and roots",
		Label: "Potęgi i pierwiastki",
		ChallengeTypes: []string{
			"ukryta potęga w równaniu diofantycznym",
			"nierówność potęgowa z normalizacją",
			"pierwiastki i racjonalizacja z parametrem",
			"granice i monotoniczność ciągów potęgowych (intuicyjnie)",
		},
		QualityNote: "Racjonalizacja, nierówności potęgowe, diofantyczne zależności potęg; unikaj mechanicznego podnoszenia potęg.",
	},
	{
		Key:   "Formulas of special products",
		Label: "Wzory skróconego mnożenia",
		ChallengeTypes: []string{
			"kreatywne użycie (a±b)^n i dwumianu Newtona",
			"różnica kwadratów z maskującą historyjką",
			"iloczyny skrócone i teleskopowanie",
			"faktoryzacja przez dodanie/odjęcie tego samego",
		},
		QualityNote: "Skracanie przez dodanie/odjęcie tego samego, (a±b)^n, teleskopowanie; unikaj czystej ekspansji.",
	},
	{
		Key:   "Plane geometry",
		Label: "Geometria płaska",
		ChallengeTypes: []string{
			"geometria euklidesowa z nieoczywistą konstrukcją pomocniczą",
			"twierdzenie o cięciwach/sekantach i potędze punktu",
			"geometria na siatce, parzystość i wektory",
			"maksymalny/minimalny obwód/pole przy ograniczeniach",
			"kąty wpisane i styczne z inwencją",
		},
		QualityNote: "Syntetycznie: kąty, podobieństwo, potęga punktu, konstrukcje; unikaj żmudnych współrzędnych.",
	},
	{
		Key:   "Solid geometry",
		Label: "Geometria przestrzenna",
		ChallengeTypes: []string{
			"przekroje brył i pole powierzchni/objętość",
			"optymalizacja wymiarów przy stałej objętości",
			"geometria przestrzenna z siatką bryły",
			"zastosowanie rzutów i tw. Pitagorasa w 3D",
		},
		QualityNote: "Przekroje, podobieństwo brył, 3D Pitagoras; unikaj czystych podstawień liczbowych.",
	},
	{
		Key:   "Statistics and probability",
		Label: "Statystyka i prawdopodobieństwo",
		ChallengeTypes: []string{
			"kombinatoryczne prawdopodobieństwo z warunkowaniem",
			"wartość oczekiwana z niestandardową zmienną",
			"paradoksy i pułapki klasyfikacyjne",
			"symulacja mentalna i niezmienniki losowań",
		},
		QualityNote: "Warunkowanie, całkowite prawdopodobieństwo, bijekcje; unikaj enumeracji całej przestrzeni.",
	},
	{
		Key:   "Combinatorics",
		Label: "Kombinatoryka",
		ChallengeTypes: []string{
			"zasada szufladkowa z twistem",
			"inwariant/monowariant w procesie",
			"liczenie konstruktywne i bijekcje",
			"ekstremalne argumenty i metoda przecięcia",
			"dwukrotne liczenie tej samej wielkości",
			"kolorowanie/niezmienniki parzystości",
		},
		QualityNote: "Szufladkowa, inwariant/monowariant, dwukrotne liczenie, ekstrema; unikaj liczenia przypadków „na piechotę”.",
	},
	{
		Key:   "Quadratic equations",
		Label: "Równania kwadratowe",
		ChallengeTypes: []string{
			"Vieta i warunki na pierwiastki",
			"równanie kwadratowe z parametrem i wartością bezwzględną",
			"skoki Vieety (Vieta jumping) w tle diofantycznym",
			"kwadratowa optymalizacja z ograniczeniami",
		},
		QualityNote: "Wykorzystaj wzory Viety/parametr/warunki na pierwiastki; unikaj ślepej formuły kwadratowej.",
	},
	{
		Key:   "Sequences and series",
		Label: "Ciągi i szeregi",
		ChallengeTypes: []string{
			"rekurencje nieliniowe z inwariantem",
			"granice ciągów",
			"szeregi geometryczne i arytmetyczne: zbieżność i suma",
			"ciągi definiowane przez warunek cyfr",
			"monotoniczność i ograniczoność z dowodem",
		},
		QualityNote: "Rekurencje z inwariantem/teleskopowaniem, monotoniczność+ograniczoność; unikaj kalkulatorowego sumowania.",
		Aliases:     []string{"ciągi"},
	},
	{
		Key:   "Trigonometry",
		Label: "Trygonometria",
		ChallengeTypes: []string{
			"tożsamości i przekształcenia kątów nietypowych",
			"nierówności trygonometryczne",
			"równania trygonometryczne z parametrem",
			"geometria + trygonometria (mieszane)",
		},
		QualityNote: "Tożsamości, podstawienia kątowe, miks z geometrią; unikaj bazowania na tabelach wartości.",
	},
	{
		Key:   "Logarithms",
		Label: "Logarytmy",
		ChallengeTypes: []string{
			"równania logarytmiczne z warunkami dziedziny",
			"nierówności logarytmiczne z parametrem",
			"logarytmy w modelu wzrostu/zaniku",
			"przekształcenia podstaw i zmienne",
		},
		QualityNote: "Dziedzina, zmiana podstawy, nierówności logarytmiczne; unikaj „przeklikania” logów bez idei.",
	},
}

var seedLevels = []Level{
	{
		Key:   LevelLowerElementary,
		Label: "SP-1-5",
		Guideline: "Poziom: klasy 1–5. Olimpijski charakter przez spryt (np. parzystość, niezmienniki, siatki). " +
			"Bez zaawansowanej algebry/trygonometrii/logarytmów. Zadanie powinno wymagać rozumowania, nie tylko rachunków.",
		Aliases: []string{
			"sp 1-5", "sp1-5", "grades 1-5",
			"szkoła podstawowa 1-5", "szkoła-podstawowa-1-5",
		},
	},
	{
		Key:   LevelMiddleSchool,
		Label: "SP-6-8",
		Guideline: "Poziom: klasy 6–8. Trudność olimpijska w granicach podstaw (np. elementarne nierówności, konstrukcje, szufladkowa, rekurencje, inwarianty). " +
			"Bez rachunku różniczkowego. Nie ograniczaj repertuaru poza działem.",
		Aliases: []string{
			"sp 6-8", "sp6-8", "grades 6-8",
			"szkoła podstawowa 6-8", "szkoła-podstawowa-6-8",
		},
	},
	{
		Key:   LevelHighSchool,
		Label: "Liceum-Technikum",
		Guideline: "Poziom: liceum (klasy 9–12). Zadanie olimpijskie (np. kombinatoryka, nietrywialne przekształcenia, tożsamości trygonometryczne, układy, analiza funkcji – bez całek). " +
			"Preferuj dowód/uzasadnienie; nie ograniczaj się do jednego schematu.",
		Aliases: []string{
			"liceum technikum", "liceum", "technikum", "grades 9-12",
			"liceum (9-12)", "liceum 9-12",
			"liceum/technikum", "liceum/technikum (klasy 9-12)", "liceum technikum (9-12)",
		},
	},
}

var seedScenarios = []Scenario{
	{Key: ScenarioEngineering, Label: "inżynieria", Hint: "Wykorzystaj ograniczenia materiałowe, tolerancje, wymiary lub kompromisy projektowe."},
	{Key: "transport", Label: "transport", Hint: "Wykorzystaj rozkłady jazdy, prędkości, opóźnienia, ograniczenia sieci/grafu lub przepływy."},
	{Key: "sport", Label: "sport", Hint: "Wykorzystaj turnieje, rankingi, terminarze meczów, plany treningowe lub limity czasu."},
	{Key: "food and beverage", Label: "gastronomia", Hint: "Wykorzystaj przepisy, proporcje, mieszanie, porcje lub ograniczenia zapasów."},
	{Key: "entertainment", Label: "rozrywka", Hint: "Wykorzystaj koncerty, kino, gry planszowe, streaming lub planowanie wydarzeń."},
	{Key: "family", Label: "rodzina", Hint: "Wykorzystaj zakupy, budżety, obowiązki domowe, plany dnia lub kieszonkowe."},
	{Key: "holidays", Label: "wakacje", Hint: "Wykorzystaj plany podróży, waluty, strefy czasowe, noclegi lub limity bagażu."},
}
