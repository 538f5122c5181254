package calculator

import (
	"fmt"
	"math"
	"strings"
)

const initialBuffer = "0"

// Operator is a binary arithmetic operator. The empty operator means none is pending.
type Operator string

const (
	OperatorNone     Operator = ""
	OperatorAdd      Operator = "+"
	OperatorSubtract Operator = "-"
	OperatorMultiply Operator = "*"
	OperatorDivide   Operator = "/"
)

// IsValid reports whether the operator is one calculate knows how to apply
func (o Operator) IsValid() bool {
	switch o {
	case OperatorAdd, OperatorSubtract, OperatorMultiply, OperatorDivide:
		return true
	default:
		return false
	}
}

// State is an immutable snapshot of a calculator session
type State struct {
	// Buffer is the number being entered or shown.
	Buffer string `json:"buffer"`
	// Operator is the operator waiting for its second operand.
	Operator Operator `json:"operator,omitempty"`
	// Operand is the buffer as it was when Operator was chosen.
	Operand    string `json:"operand,omitempty"`
	HasOperand bool   `json:"has_operand"`
	// Reset makes the next digit start a new number instead of extending Buffer.
	Reset bool `json:"reset"`
}

// NewState returns the state of a freshly cleared calculator
func NewState() State {
	return State{Buffer: initialBuffer}
}

// CommandKind names a state transition
type CommandKind string

const (
	CommandAppendDigit CommandKind = "append_digit"
	CommandSetOperator CommandKind = "set_operator"
	CommandCalculate   CommandKind = "calculate"
	CommandClear       CommandKind = "clear"
	CommandDeleteLast  CommandKind = "delete_last"
	CommandPercentage  CommandKind = "percentage"
	CommandToggleSign  CommandKind = "toggle_sign"
	CommandSquareRoot  CommandKind = "square_root"
	CommandSquare      CommandKind = "square"
)

// Command is a single input to the state machine. Value carries the digit
// for CommandAppendDigit and the operator for CommandSetOperator.
type Command struct {
	Kind  CommandKind
	Value string
}

// Transition is the outcome of applying a command
type Transition struct {
	State State
	// Record is set when the command completed a calculation.
	Record *Record
}

// Apply runs a command against a state. It never modifies s; on error the
// returned Transition is empty and the caller keeps its previous state.
func Apply(s State, cmd Command) (Transition, error) {
	switch cmd.Kind {
	case CommandAppendDigit:
		return Transition{State: s.appendDigit(cmd.Value)}, nil
	case CommandSetOperator:
		next, rec, err := s.setOperator(Operator(cmd.Value))
		if err != nil {
			return Transition{}, err
		}
		return Transition{State: next, Record: rec}, nil
	case CommandCalculate:
		next, rec, err := s.calculate()
		if err != nil {
			return Transition{}, err
		}
		return Transition{State: next, Record: rec}, nil
	case CommandClear:
		return Transition{State: NewState()}, nil
	case CommandDeleteLast:
		return Transition{State: s.deleteLast()}, nil
	case CommandPercentage:
		return Transition{State: s.unary(func(v float64) float64 { return v / 100 })}, nil
	case CommandToggleSign:
		return Transition{State: s.toggleSign()}, nil
	case CommandSquareRoot:
		if parseOperand(s.Buffer) < 0 {
			return Transition{}, ErrNegativeSquareRoot
		}
		return Transition{State: s.unary(math.Sqrt)}, nil
	case CommandSquare:
		return Transition{State: s.unary(func(v float64) float64 { return v * v })}, nil
	default:
		return Transition{}, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd.Kind)
	}
}

func (s State) appendDigit(value string) State {
	if s.Reset {
		s.Buffer = ""
		s.Reset = false
	}

	if value == "." && strings.Contains(s.Buffer, ".") {
		return s
	}

	if s.Buffer == initialBuffer && value != "." {
		s.Buffer = value
	} else {
		s.Buffer += value
	}
	return s
}

func (s State) setOperator(op Operator) (State, *Record, error) {
	var rec *Record
	if s.Operator != OperatorNone && s.HasOperand {
		next, r, err := s.calculate()
		if err != nil {
			return s, nil, err
		}
		s, rec = next, r
	}

	s.Operator = op
	s.Operand = s.Buffer
	s.HasOperand = true
	s.Reset = true
	return s, rec, nil
}

func (s State) calculate() (State, *Record, error) {
	if s.Operator == OperatorNone || !s.HasOperand {
		return s, nil, nil
	}

	prev := parseOperand(s.Operand)
	current := parseOperand(s.Buffer)

	var result float64
	switch s.Operator {
	case OperatorAdd:
		result = prev + current
	case OperatorSubtract:
		result = prev - current
	case OperatorMultiply:
		result = prev * current
	case OperatorDivide:
		if current == 0 {
			return s, nil, ErrDivideByZero
		}
		result = prev / current
	default:
		return s, nil, nil
	}

	rec := &Record{
		Expression: fmt.Sprintf("%s %s %s", s.Operand, s.Operator, s.Buffer),
		Result:     result,
	}
	next := State{
		Buffer: FormatResult(result),
		Reset:  true,
	}
	return next, rec, nil
}

func (s State) deleteLast() State {
	if len(s.Buffer) > 1 {
		s.Buffer = s.Buffer[:len(s.Buffer)-1]
	} else {
		s.Buffer = initialBuffer
	}
	return s
}

func (s State) toggleSign() State {
	if s.Buffer == initialBuffer {
		return s
	}
	if strings.HasPrefix(s.Buffer, "-") {
		s.Buffer = s.Buffer[1:]
	} else {
		s.Buffer = "-" + s.Buffer
	}
	return s
}

// unary replaces the buffer with f applied to it. The result is not rounded
// the way calculate rounds; it keeps every digit of the float.
func (s State) unary(f func(float64) float64) State {
	s.Buffer = FormatNumber(f(parseOperand(s.Buffer)))
	s.Reset = true
	return s
}
