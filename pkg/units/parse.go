package units

import (
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"github.com/framewright/framewright/pkg/errors"
)

// measurementLexer defines the tokens of tape-measure expressions such as
// `4 3/4"`, `4-3/4 in`, `3/8`, `120 mm`, or `4.72`.
var measurementLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `[ \t]+`},
	{Name: "Number", Pattern: `[0-9]+(\.[0-9]+)?`},
	{Name: "Unit", Pattern: `(?i)(mm|millimeters?|inches|inch|in)\b|"`},
	{Name: "Slash", Pattern: `/`},
	{Name: "Dash", Pattern: `-`},
})

// measurementExpr is the grammar for a single measurement. The leading
// number is either a bare value, the numerator of a plain fraction, or a
// whole part followed by an optional dash and a fraction.
type measurementExpr struct {
	First string    `parser:"@Number"`
	Den   *string   `parser:"( Slash @Number"`
	Tail  *fracExpr `parser:"| Dash? @@ )?"`
	Unit  string    `parser:"@Unit?"`
}

type fracExpr struct {
	Num string `parser:"@Number Slash"`
	Den string `parser:"@Number"`
}

var measurementParser = participle.MustBuild[measurementExpr](
	participle.Lexer(measurementLexer),
	participle.Elide("Whitespace"),
	participle.UseLookahead(2),
)

// ParseMeasurement parses a tape-measure expression and returns its value
// in inches. Accepted forms:
//
//	4.72         decimal
//	3/4          fraction
//	4 3/4        whole and fraction
//	4-3/4        dashed whole and fraction
//
// Each form takes an optional unit suffix (`"`, `in`, `inch`, `inches`,
// `mm`); without one the value is read in def. Negative values are
// rejected.
func ParseMeasurement(input string, def Unit) (float64, error) {
	expr, err := measurementParser.ParseString("", input)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidMeasurement, err, "cannot parse measurement %q", input)
	}

	value, err := expr.eval()
	if err != nil {
		return 0, err
	}

	unit := def
	if expr.Unit != "" {
		if unit, err = ParseUnit(expr.Unit); err != nil {
			return 0, err
		}
	}
	if unit == Millimeters {
		value = MMToInches(value)
	}
	return value, nil
}

func (e *measurementExpr) eval() (float64, error) {
	first, err := strconv.ParseFloat(e.First, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidMeasurement, err, "bad number %q", e.First)
	}

	switch {
	case e.Den != nil:
		return evalFraction(first, e.First, *e.Den)
	case e.Tail != nil:
		num, err := strconv.ParseFloat(e.Tail.Num, 64)
		if err != nil {
			return 0, errors.Wrap(errors.ErrCodeInvalidMeasurement, err, "bad numerator %q", e.Tail.Num)
		}
		frac, err := evalFraction(num, e.Tail.Num, e.Tail.Den)
		if err != nil {
			return 0, err
		}
		return first + frac, nil
	default:
		return first, nil
	}
}

func evalFraction(num float64, numText, denText string) (float64, error) {
	den, err := strconv.ParseFloat(denText, 64)
	if err != nil {
		return 0, errors.Wrap(errors.ErrCodeInvalidMeasurement, err, "bad denominator %q", denText)
	}
	if den == 0 {
		return 0, errors.New(errors.ErrCodeInvalidMeasurement, "fraction %s/%s has zero denominator", numText, denText)
	}
	return num / den, nil
}
