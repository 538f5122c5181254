package calculator

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatResult(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "zero", input: 0, expected: "0"},
		{name: "integer", input: 5, expected: "5"},
		{name: "negative integer", input: -42, expected: "-42"},
		{name: "floating point noise", input: 0.1 + 0.2, expected: "0.3"},
		{name: "repeating fraction", input: 2.0 / 3.0, expected: "0.666666666667"},
		{name: "upper bound is plain", input: 1e10, expected: "10000000000"},
		{name: "lower bound is plain", input: 1e-6, expected: "0.000001"},
		{name: "large product", input: 999999999.0 * 999999999.0, expected: "1e+18"},
		{name: "large with mantissa", input: 12345678901, expected: "1.234568e+10"},
		{name: "tiny quotient", input: 0.000001 / 1000000, expected: "1e-12"},
		{name: "tiny with mantissa", input: 1.5e-7, expected: "1.5e-7"},
		{name: "negative tiny", input: -2.5e-9, expected: "-2.5e-9"},
		{name: "plain tie rounds away from zero", input: 1000000000.125, expected: "1000000000.13"},
		{name: "negative plain tie rounds away from zero", input: -1000000000.125, expected: "-1000000000.13"},
		{name: "scientific tie rounds away from zero", input: 10000025000, expected: "1.000003e+10"},
		{name: "negative scientific tie", input: -10000025000, expected: "-1.000003e+10"},
		{name: "rounding carries into exponent", input: 99999995000, expected: "1e+11"},
		{name: "positive infinity", input: math.Inf(1), expected: "Infinity"},
		{name: "negative infinity", input: math.Inf(-1), expected: "-Infinity"},
		{name: "not a number", input: math.NaN(), expected: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatResult(tt.input))
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		expected string
	}{
		{name: "zero", input: 0, expected: "0"},
		{name: "negative zero", input: math.Copysign(0, -1), expected: "0"},
		{name: "half", input: 0.5, expected: "0.5"},
		{name: "keeps noise", input: 0.1 + 0.2, expected: "0.30000000000000004"},
		{name: "square root of two", input: math.Sqrt(2), expected: "1.4142135623730951"},
		{name: "small plain", input: 0.000001, expected: "0.000001"},
		{name: "small exponent", input: 1e-7, expected: "1e-7"},
		{name: "large plain", input: 1e20, expected: "100000000000000000000"},
		{name: "large exponent", input: 1e21, expected: "1e+21"},
		{name: "large exponent with mantissa", input: 1.5e300, expected: "1.5e+300"},
		{name: "infinity", input: math.Inf(1), expected: "Infinity"},
		{name: "nan", input: math.NaN(), expected: "NaN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, FormatNumber(tt.input))
		})
	}
}

func TestParseOperand(t *testing.T) {
	assert.Equal(t, 1.5, parseOperand("1.5"))
	assert.Equal(t, 5.0, parseOperand("5."))
	assert.Equal(t, -0.25, parseOperand("-.25"))
	assert.Equal(t, 1e-12, parseOperand("1e-12"))
	assert.True(t, math.IsInf(parseOperand("Infinity"), 1))
	assert.True(t, math.IsInf(parseOperand("1e999"), 1))
	assert.Equal(t, 1.0, parseOperand("1e-"))
	assert.Equal(t, 12.0, parseOperand("12abc"))
	assert.Equal(t, 0.0, parseOperand("0x10"))
	assert.True(t, math.IsInf(parseOperand("-Infinity"), -1))
	assert.True(t, math.IsNaN(parseOperand(".")))
	assert.True(t, math.IsNaN(parseOperand("NaN")))
	assert.True(t, math.IsNaN(parseOperand("-")))
}

func TestRoundSignificant(t *testing.T) {
	tests := []struct {
		name     string
		input    float64
		n        int
		digits   string
		exponent int
	}{
		{name: "no rounding", input: 1.5, n: 3, digits: "150", exponent: 0},
		{name: "tie rounds up", input: 0.125, n: 2, digits: "13", exponent: -1},
		{name: "below tie rounds down", input: 0.1, n: 12, digits: "100000000000", exponent: -1},
		{name: "carry adds digit", input: 9.99, n: 2, digits: "10", exponent: 1},
		{name: "sign ignored", input: -2.5, n: 1, digits: "3", exponent: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			digits, exp := roundSignificant(tt.input, tt.n)
			assert.Equal(t, tt.digits, digits)
			assert.Equal(t, tt.exponent, exp)
		})
	}
}
