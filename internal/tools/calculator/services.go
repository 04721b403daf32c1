package calculator

import "errors"

var (
	ErrDivideByZero = errors.New("cannot divide by zero")
	ErrUnknownOp    = errors.New("unknown operation")
)

// Evaluate applies one binary arithmetic operation.
func Evaluate(a, b float64, op string) (float64, error) {
	switch op {
	case "+":
		return a + b, nil
	case "-":
		return a - b, nil
	case "*":
		return a * b, nil
	case "/":
		if b == 0 {
			return 0, ErrDivideByZero
		}
		return a / b, nil
	default:
		return 0, ErrUnknownOp
	}
}
