package arith

// Abs returns n if n >= 0, else -n.
//
// Unsigned values are returned unchanged. The most negative value of a signed
// integer type has no positive counterpart and wraps to itself.
func Abs[N Numeric](n N) N {
	if n < 0 {
		return -n
	}
	return n
}

// Signum returns n / Abs(n): 1 for positive n and -1 for negative n, in the
// type of n.
//
// Zero has no sign. For integral types Signum(0) panics with the runtime
// divide-by-zero error; for floating types it returns NaN. Use CheckedSignum
// when zero is a possible input.
//
// Mathematical property:
//
//	Signum(n) * Abs(n) == n for all n != 0
func Signum[N Numeric](n N) N {
	return n / Abs(n)
}

// Sum adds two or more values.
//
// The fold groups from the right, Sum(a, b, c) == a + (b + c), which is
// observable for floating types where addition is not associative.
func Sum[N Numeric](n1, n2 N, rest ...N) N {
	return reduceRight(add[N], n1, n2, rest)
}

// Difference returns n1 - n2.
func Difference[N Numeric](n1, n2 N) N {
	return n1 - n2
}

// Product multiplies two or more values, grouping from the right like Sum.
func Product[N Numeric](n1, n2 N, rest ...N) N {
	return reduceRight(mul[N], n1, n2, rest)
}

// Quotient returns n1 / n2.
//
// Integral division truncates toward zero and panics when n2 == 0. Floating
// division follows IEEE-754: a zero divisor yields ±Inf or NaN.
func Quotient[N Numeric](n1, n2 N) N {
	return n1 / n2
}

// Remainder returns i1 % i2 with the sign of i1. It panics when i2 == 0.
//
// Both operands share one type. Mixed-width callers convert to the wider type
// first, e.g. Remainder(int64(a), b).
func Remainder[I Integral](i1, i2 I) I {
	return i1 % i2
}

// Reciprocal returns 1/n in float64 precision. Reciprocal(0) is +Inf.
//
// Example:
//
//	arith.Reciprocal(4)   // 0.25
//	arith.Reciprocal(0.5) // 2
func Reciprocal[N Numeric](n N) float64 {
	return ReciprocalAs[float64](n)
}

// ReciprocalAs returns 1/n computed in the floating type F.
//
//	arith.ReciprocalAs[float32](3) // float32(0.33333334)
func ReciprocalAs[F Floating, N Numeric](n N) F {
	return 1 / F(n)
}

// Fact returns n! by recursion: Fact(0) == 1, Fact(n) == n * Fact(n-1).
//
// A negative argument panics with a *DomainError wrapping ErrNegativeFactorial
// rather than recursing until the stack is exhausted. Floating arguments that
// are not whole numbers step below zero and panic the same way.
//
// No overflow detection: Fact(21) wraps for int64.
func Fact[N Numeric](n N) N {
	if n == 0 {
		return 1
	}
	if n < 0 {
		panic(&DomainError{Op: "fact", Args: []any{n}, Err: ErrNegativeFactorial})
	}
	return n * Fact(n-1)
}

// Max returns the largest of two or more values.
//
// Reduction is pairwise from the right, Max(a, b, c) == max(a, max(b, c)).
// On ties the values are equal and either may be returned.
func Max[N Numeric](n1, n2 N, rest ...N) N {
	return reduceRight(max2[N], n1, n2, rest)
}

// Min returns the smallest of two or more values. See Max.
func Min[N Numeric](n1, n2 N, rest ...N) N {
	return reduceRight(min2[N], n1, n2, rest)
}

// Permutation returns the number of ordered arrangements of i2 items drawn
// from i1: i1! / (i1-i2)!.
//
// Requires 0 <= i2 <= i1. Outside that range Fact receives a negative
// argument and panics; CheckedPermutation reports it as an error instead.
func Permutation[I Integral](i1, i2 I) I {
	return Fact(i1) / Fact(i1-i2)
}

// Combination returns the number of unordered selections of i2 items from i1:
// i1! / (i2! * (i1-i2)!). Same domain as Permutation.
func Combination[I Integral](i1, i2 I) I {
	return Fact(i1) / (Fact(i2) * Fact(i1-i2))
}

// GCD returns the greatest common divisor of i1 and i2 by Euclid's algorithm.
//
//	GCD(i1, 0) == Abs(i1)
//	GCD(i1, i2) == GCD(Abs(i2), Abs(i1 % i2))
//
// The result is never negative and GCD(0, 0) == 0.
func GCD[I Integral](i1, i2 I) I {
	if i2 == 0 {
		return Abs(i1)
	}
	return GCD(Abs(i2), Abs(i1%i2))
}

// LCM returns the least common multiple Abs(i1*i2) / GCD(i1, i2).
//
// LCM(0, 0) divides by GCD(0, 0) == 0 and panics. When only one argument is
// zero the result is zero.
//
// Mathematical property:
//
//	LCM(a, b) * GCD(a, b) == Abs(a * b) for a, b != 0
func LCM[I Integral](i1, i2 I) I {
	return Abs(i1*i2) / GCD(i1, i2)
}

func add[N Numeric](a, b N) N { return a + b }
func mul[N Numeric](a, b N) N { return a * b }

func max2[N Numeric](a, b N) N {
	if a > b {
		return a
	}
	return b
}

func min2[N Numeric](a, b N) N {
	if a < b {
		return a
	}
	return b
}

// reduceRight computes op(n1, op(n2, op(rest[0], ... op(rest[k-1], rest[k])))).
func reduceRight[N Numeric](op func(a, b N) N, n1, n2 N, rest []N) N {
	if len(rest) == 0 {
		return op(n1, n2)
	}
	acc := rest[len(rest)-1]
	for i := len(rest) - 2; i >= 0; i-- {
		acc = op(rest[i], acc)
	}
	return op(n1, op(n2, acc))
}
