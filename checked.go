package arith

import "math"

// MaxFactArg is the largest argument the checked factorial functions accept.
// Fact recurses once per unit, so larger arguments (and +Inf) would exhaust
// the goroutine stack, which Go cannot recover from. Every result past 170!
// has long since overflowed any fixed-width type anyway.
const MaxFactArg = 1 << 16

// CheckedSignum is Signum returning ErrDivideByZero for zero instead of
// panicking or producing NaN.
func CheckedSignum[N Numeric](n N) (N, error) {
	if n == 0 {
		return 0, domainError("signum", ErrDivideByZero, n)
	}
	return Signum(n), nil
}

// CheckedQuotient is Quotient returning ErrDivideByZero when n2 == 0, for
// floating types too.
func CheckedQuotient[N Numeric](n1, n2 N) (N, error) {
	if n2 == 0 {
		return 0, domainError("quotient", ErrDivideByZero, n1, n2)
	}
	return Quotient(n1, n2), nil
}

// CheckedRemainder is Remainder returning ErrDivideByZero when i2 == 0.
func CheckedRemainder[I Integral](i1, i2 I) (I, error) {
	if i2 == 0 {
		return 0, domainError("remainder", ErrDivideByZero, i1, i2)
	}
	return Remainder(i1, i2), nil
}

// CheckedReciprocal is Reciprocal returning ErrDivideByZero instead of +Inf.
func CheckedReciprocal[N Numeric](n N) (float64, error) {
	if n == 0 {
		return 0, domainError("reciprocal", ErrDivideByZero, n)
	}
	return Reciprocal(n), nil
}

// CheckedFact is Fact with its domain checked up front: negative arguments
// return ErrNegativeFactorial; NaN, infinities, non-integral floating
// arguments and arguments above MaxFactArg return ErrOutOfDomain.
func CheckedFact[N Numeric](n N) (N, error) {
	if n < 0 {
		return 0, domainError("fact", ErrNegativeFactorial, n)
	}
	f := float64(n)
	if math.IsNaN(f) || math.IsInf(f, 0) || f > MaxFactArg {
		return 0, domainError("fact", ErrOutOfDomain, n)
	}
	if isFloating[N]() && f != math.Trunc(f) {
		return 0, domainError("fact", ErrOutOfDomain, n)
	}
	return Fact(n), nil
}

// CheckedPermutation is Permutation returning ErrOutOfDomain unless
// 0 <= i2 <= i1 <= MaxFactArg. A zero denominator caused by overflow is
// reported as ErrDivideByZero.
func CheckedPermutation[I Integral](i1, i2 I) (I, error) {
	if i2 < 0 || i2 > i1 || float64(i1) > MaxFactArg {
		return 0, domainError("permutation", ErrOutOfDomain, i1, i2)
	}
	return Try("permutation", func() I { return Permutation(i1, i2) })
}

// CheckedCombination is Combination with the same checks as
// CheckedPermutation.
func CheckedCombination[I Integral](i1, i2 I) (I, error) {
	if i2 < 0 || i2 > i1 || float64(i1) > MaxFactArg {
		return 0, domainError("combination", ErrOutOfDomain, i1, i2)
	}
	return Try("combination", func() I { return Combination(i1, i2) })
}

// CheckedLCM is LCM returning ErrDivideByZero for LCM(0, 0).
func CheckedLCM[I Integral](i1, i2 I) (I, error) {
	if i1 == 0 && i2 == 0 {
		return 0, domainError("lcm", ErrDivideByZero, i1, i2)
	}
	return LCM(i1, i2), nil
}
