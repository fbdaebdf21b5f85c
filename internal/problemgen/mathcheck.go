package problemgen

import (
	"fmt"
	"regexp"
)

// ArithmeticValidator recomputes simple "a op b = c" claims found in a
// solution outline and rejects the outline when one of them is wrong.
// Texts without checkable claims pass through silently.
type ArithmeticValidator struct{}

func (v *ArithmeticValidator) Name() string  { return "arithmetic" }
func (v *ArithmeticValidator) Field() string { return FieldOutline }

func (v *ArithmeticValidator) Validate(text string, _ ItemInput) *ValidationError {
	for _, c := range findClaims(text) {
		got, err := c.left.apply(c.op, c.right)
		if err != nil {
			continue
		}
		if got != c.result {
			return &ValidationError{
				Validator: v.Name(),
				Field:     v.Field(),
				Message:   fmt.Sprintf("%s: computed %s", c.raw, got),
				Retryable: true,
			}
		}
	}
	return nil
}

// Operands may not touch another operator, a decimal separator or an
// exponent, so chained expressions and decimals are never half-checked.
const (
	claimLead  = `(?:^|[^\d/.,+\-−*×·:=^%\s])\s*`
	claimTrail = `(?:\s*$|\s*[^\d/.,+\-−*×·:^%\s]|[.,](?:\s|$))`
)

var (
	// Integer claims: "12 + 15 = 27", "4 · 6 = 24". Colon division is
	// left out because "Krok 1: 24 = 24" would read as a claim.
	intClaimRe = regexp.MustCompile(claimLead + `(\d+)\s*([+\-−*×·])\s*(\d+)\s*=\s*(\d+)` + claimTrail)

	// Fraction claims: "3/4 · 24 = 18", "1/2 + 1/3 = 5/6", "3/4 : 1/2 = 3/2".
	fractionClaimRe = regexp.MustCompile(claimLead + `(\d+)/(\d+)\s*([+\-−*×·:])\s*(\d+)(?:/(\d+))?\s*=\s*(\d+)(?:/(\d+))?` + claimTrail)
)

type claim struct {
	raw         string
	left, right fraction
	op          string
	result      fraction
}

func findClaims(text string) []claim {
	var out []claim
	for _, m := range intClaimRe.FindAllStringSubmatch(text, -1) {
		if c, err := buildClaim(m[0], m[1], "", m[2], m[3], "", m[4], ""); err == nil {
			out = append(out, c)
		}
	}
	for _, m := range fractionClaimRe.FindAllStringSubmatch(text, -1) {
		if c, err := buildClaim(m[0], m[1], m[2], m[3], m[4], m[5], m[6], m[7]); err == nil {
			out = append(out, c)
		}
	}
	return out
}

func buildClaim(raw, aN, aD, op, bN, bD, rN, rD string) (claim, error) {
	left, err := parseFraction(aN, aD)
	if err != nil {
		return claim{}, err
	}
	right, err := parseFraction(bN, bD)
	if err != nil {
		return claim{}, err
	}
	result, err := parseFraction(rN, rD)
	if err != nil {
		return claim{}, err
	}
	return claim{raw: raw, left: left, right: right, op: normalizeOp(op), result: result}, nil
}

// normalizeOp normalizes multiplication, division and minus symbols.
func normalizeOp(op string) string {
	switch op {
	case "×", "·":
		return "*"
	case "÷", ":":
		return "/"
	case "−":
		return "-"
	default:
		return op
	}
}
