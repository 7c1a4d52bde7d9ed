package calc

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// numericPrefix matches the longest leading decimal literal of a buffer.
var numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)

// ParseNumber reads the leading numeric prefix of s the way a browser's
// parseFloat does. Trailing garbage is ignored ("3." is 3, "Infinity3" is
// +Inf) and a string with no numeric prefix ("-", ".") is NaN.
func ParseNumber(s string) float64 {
	m := numericPrefix.FindString(strings.TrimLeft(s, " \t\n\r\f\v"))
	if m == "" {
		return math.NaN()
	}
	v, err := strconv.ParseFloat(m, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}

// FormatNumber renders v as the shortest decimal that reads back to v.
// Magnitudes of at least 1e21 or below 1e-6 use exponent form ("1e+21",
// "1.5e-7"). Negative zero prints as "0".
func FormatNumber(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	case v == 0:
		return "0"
	}

	if abs := math.Abs(v); abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(v, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		return mant + "e" + exp[:1] + strings.TrimLeft(exp[1:], "0")
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}
