package calculator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const (
	scientificUpper = 1e10
	scientificLower = 1e-6

	// significantDigits is the rounding precision applied to results shown in plain notation.
	significantDigits = 12
	// scientificDigits is the mantissa length in scientific notation: one integer and six fractional digits.
	scientificDigits = 7

	// exactDigits is enough precision for strconv to print any float64 exactly.
	exactDigits = 800
)

var (
	trailingMantissaZeros = regexp.MustCompile(`\.?0+e`)

	// numericPrefix is the longest leading part of a buffer that reads as a number.
	numericPrefix = regexp.MustCompile(`^[+-]?(Infinity|(\d+\.?\d*|\.\d+)([eE][+-]?\d+)?)`)
)

// FormatResult renders the result of a calculation for display.
//
// Magnitudes above 1e10 or below 1e-6 use scientific notation with six
// fractional digits and trailing zeros removed from the mantissa. Everything
// else is rounded to twelve significant digits, which hides binary noise such
// as 0.1+0.2 printing as 0.30000000000000004. Ties round away from zero.
func FormatResult(result float64) string {
	if math.IsNaN(result) || math.IsInf(result, 0) || result == 0 {
		return FormatNumber(result)
	}

	abs := math.Abs(result)
	if abs > scientificUpper || abs < scientificLower {
		digits, exp := roundSignificant(result, scientificDigits)
		s := digits[:1] + "." + digits[1:] + "e" + exponent(exp)
		if result < 0 {
			s = "-" + s
		}
		return trailingMantissaZeros.ReplaceAllString(s, "e")
	}

	digits, exp := roundSignificant(result, significantDigits)
	rounded, err := strconv.ParseFloat(digits[:1]+"."+digits[1:]+"e"+exponent(exp), 64)
	if err != nil {
		return FormatNumber(result)
	}
	if result < 0 {
		rounded = -rounded
	}
	return FormatNumber(rounded)
}

// roundSignificant rounds |v| to n significant decimal digits, ties away
// from zero, using the exact decimal value of v. It returns the digits and
// the decimal exponent of the first one. v must be finite and nonzero.
func roundSignificant(v float64, n int) (string, int) {
	s := strconv.FormatFloat(math.Abs(v), 'e', exactDigits, 64)
	i := strings.IndexByte(s, 'e')
	exp, _ := strconv.Atoi(s[i+1:])
	mantissa := s[:1] + s[2:i]

	digits := []byte(mantissa[:n])
	if mantissa[n] >= '5' {
		j := n - 1
		for ; j >= 0 && digits[j] == '9'; j-- {
			digits[j] = '0'
		}
		if j < 0 {
			digits = append([]byte{'1'}, digits[:n-1]...)
			exp++
		} else {
			digits[j]++
		}
	}
	return string(digits), exp
}

// exponent renders a decimal exponent with an explicit sign and no padding
func exponent(exp int) string {
	if exp < 0 {
		return strconv.Itoa(exp)
	}
	return "+" + strconv.Itoa(exp)
}

// FormatNumber renders a number with the shortest digits that round-trip.
// Decimal exponents from -7 to 20 print in plain notation, anything outside
// that range in exponent form (1e+21, 1.5e-7).
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

	e := strconv.FormatFloat(v, 'e', -1, 64)
	exp, err := strconv.Atoi(e[strings.IndexByte(e, 'e')+1:])
	if err == nil && exp > -7 && exp < 21 {
		return strconv.FormatFloat(v, 'f', -1, 64)
	}
	return trimExponent(e)
}

// trimExponent drops leading zeros from the exponent, so e-07 becomes e-7.
func trimExponent(s string) string {
	i := strings.IndexByte(s, 'e')
	if i < 0 || i+2 > len(s) {
		return s
	}
	digits := strings.TrimLeft(s[i+2:], "0")
	if digits == "" {
		digits = "0"
	}
	return s[:i+2] + digits
}

// parseOperand reads the longest numeric prefix of a display buffer, so a
// buffer cut short by delete last ("1e-") still reads as 1. Buffers with no
// numeric prefix (a lone "." or "-") read as NaN; out of range values read as ±Inf.
func parseOperand(s string) float64 {
	prefix := numericPrefix.FindString(strings.TrimSpace(s))
	if prefix == "" {
		return math.NaN()
	}

	v, err := strconv.ParseFloat(prefix, 64)
	if err != nil && !errors.Is(err, strconv.ErrRange) {
		return math.NaN()
	}
	return v
}
