package calculator

import "errors"

var (
	// ErrDivideByZero is returned by calculate when the divisor is exactly zero.
	ErrDivideByZero = errors.New("divide by zero")
	// ErrNegativeSquareRoot is returned by square root when the operand is negative.
	ErrNegativeSquareRoot = errors.New("square root of negative number")
	// ErrUnknownCommand is returned by Apply for a command kind it does not know.
	ErrUnknownCommand = errors.New("unknown command")
)
