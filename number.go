package folio

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// numberNoise is the set of characters ignored by ToNumber.
var numberNoise = strings.NewReplacer(",", "", "$", "", "%", "", "(", "", ")", "")

// ToNumber parses a human formatted number like "$1,234.50", "12%" or
// "(123.45)". A value wrapped in parentheses is negative.
//
// It returns NaN for empty input or when anything but a number remains after
// removing the formatting noise.
func ToNumber(s string) float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return math.NaN()
	}
	neg := strings.HasPrefix(s, "(") && strings.HasSuffix(s, ")")
	cleaned := strings.Join(strings.Fields(numberNoise.Replace(s)), "")
	if cleaned == "" {
		return math.NaN()
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return math.NaN()
	}
	if neg {
		d = d.Neg()
	}
	return d.InexactFloat64()
}

// finite reports whether x is neither NaN nor infinite.
func finite(x float64) bool { return !math.IsNaN(x) && !math.IsInf(x, 0) }
