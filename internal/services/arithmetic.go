package services

import "errors"

// DivisionByZeroMessage is the value returned to clients instead of a failure status.
const DivisionByZeroMessage = "Error: Division by zero"

var ErrDivisionByZero = errors.New("division by zero")

func Sum(x, y int) int {
	return x + y
}

func Subtract(x, y int) int {
	return x - y
}

func Multiply(x, y int) int {
	return x * y
}

func Divide(x, y int) (float64, error) {
	if y == 0 {
		return 0, ErrDivisionByZero
	}
	return float64(x) / float64(y), nil
}
