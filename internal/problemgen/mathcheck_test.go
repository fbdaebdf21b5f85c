package problemgen

import "testing"

func TestArithmeticValidator(t *testing.T) {
	tests := []struct {
		name  string
		text  string
		valid bool
	}{
		{"correct integer claim", "Razem daje to 12 + 15 = 27 elementów.", true},
		{"wrong integer claim", "Razem daje to 12 + 15 = 28 elementów.", false},
		{"unicode minus", "Zostaje 48 − 18 = 30.", true},
		{"wrong product", "Mamy 4 · 6 = 26, stąd wynik.", false},
		{"fraction of integer", "Zużyto 3/4 · 24 = 18 sztuk.", true},
		{"wrong fraction of integer", "Zużyto 3/4 · 24 = 16 sztuk.", false},
		{"fraction sum", "Razem 1/2 + 1/3 = 5/6 całości.", true},
		{"unreduced result", "Razem 1/4 + 1/4 = 2/4 całości.", true},
		{"fraction division", "Iloraz 3/4 : 1/2 = 3/2 jest większy od 1.", true},
		{"chain is skipped", "Suma 2 + 3 + 4 = 9 jest poprawna.", true},
		{"step label is not division", "Krok 1: 24 = 24, więc dalej.", true},
		{"decimal is skipped", "Cena 2,5 + 1 = 3,5 zł.", true},
		{"percent is skipped", "Razem 50 + 20 = 60%.", true},
		{"no claims", "Użyj zasady szufladkowej do pudełek.", true},
	}
	v := &ArithmeticValidator{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.Validate(tt.text, ItemInput{})
			if tt.valid && err != nil {
				t.Fatalf("expected valid, got %v", err)
			}
			if !tt.valid && err == nil {
				t.Fatal("expected wrong claim to be rejected")
			}
		})
	}
}

func TestFindClaims(t *testing.T) {
	claims := findClaims(validOutline)
	if len(claims) != 4 {
		t.Fatalf("expected 4 claims in outline, got %d", len(claims))
	}
}

func TestFraction(t *testing.T) {
	f, err := newFraction(6, -8)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.String() != "-3/4" {
		t.Errorf("got %s, want -3/4", f)
	}
	if _, err := newFraction(1, 0); err == nil {
		t.Error("expected zero denominator error")
	}
	got, err := f.apply("/", fraction{num: 0, den: 1})
	if err == nil {
		t.Errorf("expected division by zero, got %s", got)
	}
	whole, _ := newFraction(12, 4)
	if whole.String() != "3" {
		t.Errorf("got %s, want 3", whole)
	}
}
