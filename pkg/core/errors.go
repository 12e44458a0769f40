package core

import "errors"

// ErrDivisionByZero is returned by Vec3.Divide when the divisor is zero
var ErrDivisionByZero = errors.New("division by zero")
