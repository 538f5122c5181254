// Package keypad maps calculator keystrokes onto engine operations.
package keypad

import (
	"errors"
	"fmt"
	"unicode"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

var ErrUnknownKey = errors.New("unknown key")

// Action is what a key does. Undo is not a state machine command, so it is
// flagged separately from Command.
type Action struct {
	Command calculator.Command
	Undo    bool
}

// Lookup returns the action bound to a key
func Lookup(key rune) (Action, error) {
	switch {
	case key >= '0' && key <= '9', key == '.':
		return command(calculator.CommandAppendDigit, string(key)), nil
	}

	switch key {
	case '+', '-', '*', '/':
		return command(calculator.CommandSetOperator, string(key)), nil
	case 'x', 'X', '×':
		return command(calculator.CommandSetOperator, string(calculator.OperatorMultiply)), nil
	case '÷':
		return command(calculator.CommandSetOperator, string(calculator.OperatorDivide)), nil
	case '=', '\n', '\r':
		return command(calculator.CommandCalculate, ""), nil
	case 'c', 'C':
		return command(calculator.CommandClear, ""), nil
	case '<', '\b', 0x7f:
		return command(calculator.CommandDeleteLast, ""), nil
	case '%':
		return command(calculator.CommandPercentage, ""), nil
	case 'n', 'N', '±':
		return command(calculator.CommandToggleSign, ""), nil
	case 'r', 'R', '√':
		return command(calculator.CommandSquareRoot, ""), nil
	case 'q', 'Q', '²':
		return command(calculator.CommandSquare, ""), nil
	case 'u', 'U':
		return Action{Undo: true}, nil
	}

	return Action{}, fmt.Errorf("%w: %q", ErrUnknownKey, key)
}

func command(kind calculator.CommandKind, value string) Action {
	return Action{Command: calculator.Command{Kind: kind, Value: value}}
}

// Press applies one key to the engine and returns the display afterwards
func Press(e *calculator.Engine, key rune) (string, error) {
	action, err := Lookup(key)
	if err != nil {
		return e.CurrentInput(), err
	}

	if action.Undo {
		display, _ := e.Undo()
		return display, nil
	}
	return e.Apply(action.Command)
}

// PressSequence presses every key in keys in order, skipping spaces and
// tabs. It stops at the first key that fails and reports its position.
func PressSequence(e *calculator.Engine, keys string) (string, error) {
	display := e.CurrentInput()
	for i, key := range keys {
		if key != '\n' && key != '\r' && unicode.IsSpace(key) {
			continue
		}

		var err error
		display, err = Press(e, key)
		if err != nil {
			return display, fmt.Errorf("key %q at offset %d: %w", key, i, err)
		}
	}
	return display, nil
}
