package arith

import "golang.org/x/exp/constraints"

// Integral is any whole-number type, signed or unsigned, including named types
// whose underlying type is an integer.
type Integral interface {
	constraints.Integer
}

// Floating is any IEEE-754 floating-point type.
type Floating interface {
	constraints.Float
}

// Numeric is the union of Integral and Floating: every type that supports
// +, -, *, /, ordering and unary negation.
type Numeric interface {
	Integral | Floating
}

// Signed is the subset of Numeric that can hold negative values.
type Signed interface {
	constraints.Signed | constraints.Float
}

// isFloating reports whether N is a floating type.
// Integer division truncates, floating division does not: 1/2 is zero only
// for integers.
func isFloating[N Numeric]() bool {
	var half N = 1
	half /= 2
	return half != 0
}
