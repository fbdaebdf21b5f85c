package problemgen

import (
	"fmt"
	"strconv"
)

// fraction is an exact rational used to check arithmetic claims and to
// build fallback content.
type fraction struct {
	num, den int64
}

func newFraction(num, den int64) (fraction, error) {
	if den == 0 {
		return fraction{}, fmt.Errorf("zero denominator")
	}
	// Normalize sign: negative sign on numerator only.
	if den < 0 {
		num, den = -num, -den
	}
	g := gcd(abs(num), den)
	if g == 0 {
		g = 1
	}
	return fraction{num: num / g, den: den / g}, nil
}

func (f fraction) apply(op string, o fraction) (fraction, error) {
	switch op {
	case "+":
		return newFraction(f.num*o.den+o.num*f.den, f.den*o.den)
	case "-":
		return newFraction(f.num*o.den-o.num*f.den, f.den*o.den)
	case "*":
		return newFraction(f.num*o.num, f.den*o.den)
	case "/":
		if o.num == 0 {
			return fraction{}, fmt.Errorf("division by zero")
		}
		return newFraction(f.num*o.den, f.den*o.num)
	default:
		return fraction{}, fmt.Errorf("unsupported operator: %s", op)
	}
}

func (f fraction) String() string {
	if f.den == 1 {
		return strconv.FormatInt(f.num, 10)
	}
	return fmt.Sprintf("%d/%d", f.num, f.den)
}

// parseFraction parses "a" or "a/b" given as separate numerator and
// denominator strings; an empty denominator means 1.
func parseFraction(numStr, denStr string) (fraction, error) {
	num, err := strconv.ParseInt(numStr, 10, 64)
	if err != nil {
		return fraction{}, fmt.Errorf("invalid numerator: %w", err)
	}
	den := int64(1)
	if denStr != "" {
		den, err = strconv.ParseInt(denStr, 10, 64)
		if err != nil {
			return fraction{}, fmt.Errorf("invalid denominator: %w", err)
		}
	}
	return newFraction(num, den)
}

// gcd returns the greatest common divisor of a and b.
// Both a and b must be non-negative.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// abs returns the absolute value of n.
func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}
