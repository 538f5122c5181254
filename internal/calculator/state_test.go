package calculator

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run applies commands in order, failing the test on any error
func run(t *testing.T, s State, cmds ...Command) State {
	t.Helper()
	for _, cmd := range cmds {
		tr, err := Apply(s, cmd)
		require.NoError(t, err)
		s = tr.State
	}
	return s
}

func digit(v string) Command { return Command{Kind: CommandAppendDigit, Value: v} }

func op(o Operator) Command { return Command{Kind: CommandSetOperator, Value: string(o)} }

var calc = Command{Kind: CommandCalculate}

func TestNewState(t *testing.T) {
	s := NewState()
	assert.Equal(t, "0", s.Buffer)
	assert.Equal(t, OperatorNone, s.Operator)
	assert.False(t, s.HasOperand)
	assert.False(t, s.Reset)
}

func TestAppendDigit(t *testing.T) {
	tests := []struct {
		name     string
		digits   []string
		expected string
	}{
		{name: "single digit", digits: []string{"7"}, expected: "7"},
		{name: "several digits", digits: []string{"1", "2", "3"}, expected: "123"},
		{name: "leading zero suppressed", digits: []string{"0", "0", "4"}, expected: "4"},
		{name: "decimal after zero", digits: []string{"0", ".", "5"}, expected: "0.5"},
		{name: "decimal on initial zero", digits: []string{".", "2"}, expected: "0.2"},
		{name: "second decimal ignored", digits: []string{"1", ".", "5", "."}, expected: "1.5"},
		{name: "many decimals ignored", digits: []string{"1", ".", ".", "2", ".", "3"}, expected: "1.23"},
		{name: "zero after decimal kept", digits: []string{"1", ".", "0", "0"}, expected: "1.00"},
		{name: "multi character value", digits: []string{"123"}, expected: "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewState()
			for _, d := range tt.digits {
				s = run(t, s, digit(d))
			}
			assert.Equal(t, tt.expected, s.Buffer)
			assert.LessOrEqual(t, strings.Count(s.Buffer, "."), 1)
		})
	}
}

func TestAppendDigitAfterReset(t *testing.T) {
	s := run(t, NewState(), digit("9"), op(OperatorAdd))
	assert.True(t, s.Reset)

	s = run(t, s, digit("0"))
	assert.Equal(t, "0", s.Buffer)
	assert.False(t, s.Reset)

	s = run(t, s, digit("3"))
	assert.Equal(t, "3", s.Buffer)
}

func TestAppendDecimalAfterReset(t *testing.T) {
	s := run(t, NewState(), digit("1"), digit("."), digit("5"), op(OperatorAdd), digit("."), digit("5"))
	assert.Equal(t, ".5", s.Buffer)
}

func TestApplyDoesNotModifyInput(t *testing.T) {
	s := run(t, NewState(), digit("4"))
	before := s

	_, err := Apply(s, digit("2"))
	require.NoError(t, err)
	_, err = Apply(s, op(OperatorMultiply))
	require.NoError(t, err)

	assert.Equal(t, before, s)
}

func TestArithmetic(t *testing.T) {
	tests := []struct {
		name     string
		left     string
		operator Operator
		right    string
		expected string
		result   float64
	}{
		{name: "addition", left: "2", operator: OperatorAdd, right: "3", expected: "5", result: 5},
		{name: "subtraction", left: "5", operator: OperatorSubtract, right: "3", expected: "2", result: 2},
		{name: "multiplication", left: "4", operator: OperatorMultiply, right: "3", expected: "12", result: 12},
		{name: "division", left: "12", operator: OperatorDivide, right: "3", expected: "4", result: 4},
		{name: "negative result", left: "3", operator: OperatorSubtract, right: "5", expected: "-2", result: -2},
		{name: "floating point", left: "0.1", operator: OperatorAdd, right: "0.2", expected: "0.3", result: 0.1 + 0.2},
		{name: "very large", left: "999999999", operator: OperatorMultiply, right: "999999999", expected: "1e+18", result: 999999999.0 * 999999999.0},
		{name: "very small", left: "0.000001", operator: OperatorDivide, right: "1000000", expected: "1e-12", result: 0.000001 / 1000000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := run(t, NewState(), digit(tt.left), op(tt.operator), digit(tt.right))

			tr, err := Apply(s, calc)
			require.NoError(t, err)
			assert.Equal(t, tt.expected, tr.State.Buffer)
			assert.Equal(t, OperatorNone, tr.State.Operator)
			assert.False(t, tr.State.HasOperand)
			assert.True(t, tr.State.Reset)

			require.NotNil(t, tr.Record)
			assert.Equal(t, tt.left+" "+string(tt.operator)+" "+tt.right, tr.Record.Expression)
			assert.Equal(t, tt.result, tr.Record.Result)
		})
	}
}

func TestCalculateWithoutOperator(t *testing.T) {
	s := run(t, NewState(), digit("8"))

	first, err := Apply(s, calc)
	require.NoError(t, err)
	assert.Nil(t, first.Record)

	second, err := Apply(first.State, calc)
	require.NoError(t, err)
	assert.Nil(t, second.Record)

	assert.Equal(t, "8", first.State.Buffer)
	assert.Equal(t, first.State, second.State)
}

func TestChainedOperatorsEvaluateLeftToRight(t *testing.T) {
	s := run(t, NewState(), digit("2"), op(OperatorAdd), digit("3"))

	tr, err := Apply(s, op(OperatorMultiply))
	require.NoError(t, err)
	require.NotNil(t, tr.Record)
	assert.Equal(t, "2 + 3", tr.Record.Expression)
	assert.Equal(t, "5", tr.State.Buffer)
	assert.Equal(t, "5", tr.State.Operand)
	assert.Equal(t, OperatorMultiply, tr.State.Operator)

	s = run(t, tr.State, digit("4"), calc)
	assert.Equal(t, "20", s.Buffer)
}

func TestDivideByZero(t *testing.T) {
	s := run(t, NewState(), digit("5"), op(OperatorDivide), digit("0"))

	tr, err := Apply(s, calc)
	assert.ErrorIs(t, err, ErrDivideByZero)
	assert.Equal(t, Transition{}, tr)

	assert.Equal(t, "0", s.Buffer)
	assert.Equal(t, "5", s.Operand)
	assert.Equal(t, OperatorDivide, s.Operator)
}

func TestDivideByZeroDuringChain(t *testing.T) {
	s := run(t, NewState(), digit("5"), op(OperatorDivide), digit("0"))

	_, err := Apply(s, op(OperatorAdd))
	assert.ErrorIs(t, err, ErrDivideByZero)
}

func TestUnknownOperator(t *testing.T) {
	s := run(t, NewState(), digit("6"), op("^"), digit("2"))
	assert.Equal(t, Operator("^"), s.Operator)
	assert.False(t, s.Operator.IsValid())

	tr, err := Apply(s, calc)
	require.NoError(t, err)
	assert.Nil(t, tr.Record)
	assert.Equal(t, s, tr.State)
}

func TestClear(t *testing.T) {
	s := run(t, NewState(), digit("1"), op(OperatorAdd), digit("2"), Command{Kind: CommandClear})
	assert.Equal(t, NewState(), s)
}

func TestDeleteLast(t *testing.T) {
	tests := []struct {
		name     string
		buffer   string
		expected string
	}{
		{name: "multiple characters", buffer: "123", expected: "12"},
		{name: "single character", buffer: "5", expected: "0"},
		{name: "initial zero", buffer: "0", expected: "0"},
		{name: "trailing decimal", buffer: "1.", expected: "1"},
		{name: "negative number", buffer: "-5", expected: "-"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := run(t, State{Buffer: tt.buffer}, Command{Kind: CommandDeleteLast})
			assert.Equal(t, tt.expected, s.Buffer)
		})
	}
}

func TestToggleSign(t *testing.T) {
	s := run(t, NewState(), digit("5"), Command{Kind: CommandToggleSign})
	assert.Equal(t, "-5", s.Buffer)

	s = run(t, s, Command{Kind: CommandToggleSign})
	assert.Equal(t, "5", s.Buffer)

	s = run(t, NewState(), Command{Kind: CommandToggleSign})
	assert.Equal(t, "0", s.Buffer)
}

func TestUnaryOperations(t *testing.T) {
	tests := []struct {
		name     string
		buffer   string
		kind     CommandKind
		expected string
	}{
		{name: "percentage", buffer: "50", kind: CommandPercentage, expected: "0.5"},
		{name: "percentage of decimal", buffer: "0.3", kind: CommandPercentage, expected: "0.003"},
		{name: "square root", buffer: "16", kind: CommandSquareRoot, expected: "4"},
		{name: "square root is not rounded", buffer: "2", kind: CommandSquareRoot, expected: "1.4142135623730951"},
		{name: "square root of zero", buffer: "0", kind: CommandSquareRoot, expected: "0"},
		{name: "square", buffer: "4", kind: CommandSquare, expected: "16"},
		{name: "square of negative", buffer: "-3", kind: CommandSquare, expected: "9"},
		{name: "square is not rounded", buffer: "0.1", kind: CommandSquare, expected: "0.010000000000000002"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := run(t, State{Buffer: tt.buffer}, Command{Kind: tt.kind})
			assert.Equal(t, tt.expected, s.Buffer)
			assert.True(t, s.Reset)
		})
	}
}

func TestNegativeSquareRoot(t *testing.T) {
	s := run(t, NewState(), digit("-16"))

	tr, err := Apply(s, Command{Kind: CommandSquareRoot})
	assert.ErrorIs(t, err, ErrNegativeSquareRoot)
	assert.Equal(t, Transition{}, tr)
	assert.Equal(t, "-16", s.Buffer)
}

func TestUnknownCommand(t *testing.T) {
	_, err := Apply(NewState(), Command{Kind: "cube"})
	assert.ErrorIs(t, err, ErrUnknownCommand)
	assert.Contains(t, err.Error(), "cube")
}
