package results

import (
	"errors"

	"github.com/averycrespi/calc-mcp/internal/calculator"
)

// ErrorMessage returns the user-facing text for an error
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, calculator.ErrDivideByZero):
		return "Cannot divide by zero!"
	case errors.Is(err, calculator.ErrNegativeSquareRoot):
		return "Cannot calculate square root of negative number!"
	default:
		return err.Error()
	}
}
