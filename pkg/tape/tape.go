// Package tape converts decimal inch measurements into tape-measure
// friendly mixed numbers.
//
// A woodworker reading 4.72" off a calculator cannot mark it directly; a
// tape measure shows halves through thirty-seconds. This package finds the
// closest expressible graduation and, when asked, splits it into a coarse
// base plus a fine adjustment that is easy to eyeball:
//
//	m, _ := tape.Approximate(4.72, nil, true)
//	// m = 4 + 3/4 - 1/32  ("4 3/4 - 1/32")
//
// Fractions are kept exactly as approximated. A 2/4 result is not reduced
// to 1/2: the denominator records which graduation set produced it, and
// ties between equal-error candidates are broken toward the coarser
// denominator, so default sets behave the way a tape reads.
package tape

import (
	"fmt"

	"github.com/framewright/framewright/pkg/errors"
)

// DefaultDenominators is the standard imperial tape graduation set,
// halves through thirty-seconds.
var DefaultDenominators = []int{2, 4, 8, 16, 32}

// zeroTolerance is the threshold below which a fractional remainder is
// treated as exactly zero.
const zeroTolerance = 1e-9

// Fraction is an exact tape fraction. Num/Den are stored as approximated,
// never reduced.
type Fraction struct {
	Num int `json:"num"`
	Den int `json:"den"`
}

// Value returns the fraction as a float64.
func (f Fraction) Value() float64 {
	if f.Den == 0 {
		return 0
	}
	return float64(f.Num) / float64(f.Den)
}

// IsZero reports whether the fraction has a zero numerator.
func (f Fraction) IsZero() bool { return f.Num == 0 }

// Abs returns the fraction with a non-negative numerator.
func (f Fraction) Abs() Fraction {
	if f.Num < 0 {
		return Fraction{Num: -f.Num, Den: f.Den}
	}
	return f
}

// String renders the fraction as "num/den".
func (f Fraction) String() string {
	return fmt.Sprintf("%d/%d", f.Num, f.Den)
}

// sub returns the exact difference a-b in lowest terms. Unlike candidate
// fractions, a derived adjustment has no inherent graduation, so it is
// reduced to read naturally ("-1/32" rather than "-4/128").
func sub(a, b Fraction) Fraction {
	num := a.Num*b.Den - b.Num*a.Den
	den := a.Den * b.Den
	if num == 0 {
		return Fraction{Num: 0, Den: 1}
	}
	g := gcd(abs(num), den)
	return Fraction{Num: num / g, Den: den / g}
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func gcd(a, b int) int {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

// Measurement is a tape-measure reading: whole inches plus an optional
// fraction and an optional fine adjustment. Nil parts are genuinely
// absent, not zero: a whole-inch reading has Frac == nil.
type Measurement struct {
	Whole  int       `json:"whole"`
	Frac   *Fraction `json:"frac,omitempty"`
	Adjust *Fraction `json:"adjust,omitempty"`
}

// Value returns the measurement as decimal inches.
func (m Measurement) Value() float64 {
	v := float64(m.Whole)
	if m.Frac != nil {
		v += m.Frac.Value()
	}
	if m.Adjust != nil {
		v += m.Adjust.Value()
	}
	return v
}

// String renders the measurement without a unit suffix, e.g. "4 3/4 - 1/32".
func (m Measurement) String() string {
	if m.Frac == nil {
		return fmt.Sprintf("%d", m.Whole)
	}
	s := ""
	if m.Whole != 0 {
		s = fmt.Sprintf("%d ", m.Whole)
	}
	s += m.Frac.String()
	if m.Adjust != nil {
		sign := "+"
		if m.Adjust.Num < 0 {
			sign = "-"
		}
		s += fmt.Sprintf(" %s %s", sign, m.Adjust.Abs().String())
	}
	return s
}

// roundHalfUp rounds x with the round-half-up strategy. For positive x
// this is floor(x + 0.5); the conversion truncates toward zero.
func roundHalfUp(x float64) int {
	return int(x + 0.5)
}

// Approximate converts a decimal inch value to the closest tape-measure
// reading over the given denominators. A nil denoms slice uses
// [DefaultDenominators].
//
// The whole part is truncated off and the remainder matched against every
// allowed graduation with round-half-up; the candidate with the smallest
// absolute error wins, ties going to the smaller denominator. A remainder
// that rounds to a full unit carries into the whole part. Remainders too
// small for the finest graduation are forced up to one finest step rather
// than silently dropped.
//
// With segments enabled, the winning fraction is re-approximated over the
// coarser denominators (those below the finest) to produce a base reading
// plus a signed fine adjustment:
//
//	Approximate(4.72, nil, true)  = 4 + 3/4 - 1/32
//	Approximate(4.5, nil, true)   = 4 + 1/2
//	Approximate(4.99, nil, false) = 5
//	Approximate(0.015, nil, true) = 0 + 1/32
func Approximate(value float64, denoms []int, segments bool) (Measurement, error) {
	if denoms == nil {
		denoms = DefaultDenominators
	}
	if err := errors.ValidateDenominators(denoms); err != nil {
		return Measurement{}, err
	}

	whole := int(value)
	fracVal := value - float64(whole)

	if fracVal < zeroTolerance && fracVal > -zeroTolerance {
		return Measurement{Whole: whole}, nil
	}

	finest := denoms[0]
	for _, d := range denoms {
		if d > finest {
			finest = d
		}
	}

	// Remainders below half of the finest step cannot round to any
	// graduation; force them up to the smallest expressible fraction.
	threshold := 0.5 / float64(finest)
	if fracVal > 0 && fracVal < threshold {
		return Measurement{Whole: whole, Frac: &Fraction{Num: 1, Den: finest}}, nil
	}

	var best Fraction
	bestErr := 0.0
	found := false

	for _, d := range denoms {
		num := roundHalfUp(fracVal * float64(d))
		var candidate Fraction
		switch {
		case num >= d:
			// Rounds to or past the next whole graduation.
			candidate = Fraction{Num: 1, Den: 1}
		case num == 0:
			// A zero numerator reads the same on every graduation.
			candidate = Fraction{Num: 0, Den: 1}
		default:
			candidate = Fraction{Num: num, Den: d}
		}
		err := candidate.Value() - fracVal
		if err < 0 {
			err = -err
		}
		if !found || err < bestErr || (err == bestErr && d < best.Den) {
			bestErr = err
			best = candidate
			found = true
		}
	}

	if !found {
		return Measurement{}, errors.New(errors.ErrCodeUnresolvedApproximation,
			"no candidate fraction for %v over denominators %v", value, denoms)
	}

	if best.Num >= best.Den {
		return Measurement{Whole: whole + 1}, nil
	}

	if !segments {
		return Measurement{Whole: whole, Frac: &best}, nil
	}

	// Segmented output: approximate the winner again over the coarser
	// graduations and express the leftover as a fine adjustment.
	var coarser []int
	for _, d := range denoms {
		if d < finest {
			coarser = append(coarser, d)
		}
	}
	if len(coarser) == 0 {
		return Measurement{Whole: whole, Frac: &best}, nil
	}

	bestValue := best.Value()
	var base Fraction
	baseErr := 0.0
	baseFound := false

	for _, d := range coarser {
		num := roundHalfUp(bestValue * float64(d))
		candidate := Fraction{Num: num, Den: d}
		switch {
		case num >= d:
			// A winner just below the next whole graduation can round
			// up to a full unit on a coarse scale.
			candidate = Fraction{Num: 1, Den: 1}
		case num == 0:
			candidate = Fraction{Num: 0, Den: 1}
		}
		err := candidate.Value() - bestValue
		if err < 0 {
			err = -err
		}
		if !baseFound || err < baseErr || (err == baseErr && d < base.Den) {
			baseErr = err
			base = candidate
			baseFound = true
		}
	}

	if !baseFound {
		return Measurement{Whole: whole, Frac: &best}, nil
	}

	adjust := sub(best, base)
	if adjust.IsZero() {
		return Measurement{Whole: whole, Frac: &base}, nil
	}
	return Measurement{Whole: whole, Frac: &base, Adjust: &adjust}, nil
}
