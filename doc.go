// Package arith provides generic arithmetic over Go's numeric types.
//
// # Overview
//
// Every function is a pure, stateless mapping from arguments to a result,
// parameterized by the capability it needs:
//
//   - Numeric  - any integer or floating type (abs, signum, sum, difference,
//     product, quotient, reciprocal, fact, max, min)
//   - Integral - integer types only (remainder, permutation, combination,
//     gcd, lcm)
//   - Floating - float32 and float64 (the result type of ReciprocalAs)
//
// Untyped constant arguments infer int or float64, so arith.Sum(1, 2, 3) is
// an int and arith.Sum(1.5, 2) a float64.
//
// # Quick Start
//
//	arith.GCD(48, 18)          // 6
//	arith.LCM(4, 6)            // 12
//	arith.Combination(6, 3)    // 20
//	arith.Sum(1, 2, 3, 4)      // 10
//	arith.Max(3, -7, 9, 0)     // 9
//	arith.Reciprocal(5)        // 0.2
//
// # Variadic Folds
//
// Sum, Product, Max and Min take at least two arguments, enforced by their
// signatures. They reduce pairwise from the right:
//
//	Sum(a, b, c) == a + (b + c)
//
// For floating types the grouping is observable since addition does not
// associate exactly.
//
// # Domain Failures
//
// The core functions do not validate their inputs. Failures surface the way
// Go arithmetic surfaces them:
//
//   - Integral division by zero panics: Signum(0), Quotient(n, 0),
//     Remainder(i, 0), LCM(0, 0)
//   - Floating division by zero follows IEEE-754: Reciprocal(0) is +Inf,
//     Signum(0.0) is NaN
//   - Fact of a negative number panics with a *DomainError wrapping
//     ErrNegativeFactorial, as do Permutation and Combination with i2 > i1
//
// The Checked variants (CheckedQuotient, CheckedFact, ...) return the same
// failures as errors, and Try converts a domain panic from any expression:
//
//	v, err := arith.CheckedCombination(n, k)
//	if errors.Is(err, arith.ErrOutOfDomain) {
//	    // k > n or k < 0
//	}
//
// There is no overflow detection. Fact(21) wraps for int64. The checked
// factorial family does cap recursion depth: arguments above MaxFactArg,
// NaN and infinities return ErrOutOfDomain.
//
// # Laws
//
// LawChecker verifies algebraic laws (Associative, Commutative, Identity,
// Idempotent) of binary operations against sample values:
//
//	checker := arith.IntegralOps[int]()
//	for _, r := range checker.VerifyAll([]int{-6, -1, 0, 2, 9}) {
//	    fmt.Println(r.Op, r.Law, r.Err)
//	}
//
// # Testing
//
// The Assert helpers check the same laws from tests:
//
//	func TestMyOp(t *testing.T) {
//	    arith.AssertAssociative(t, myOp, samples)
//	    arith.AssertSignMagnitude(t, []float64{-2.5, 1, 3})
//	    arith.AssertGCDLCM(t, []int{-12, 0, 4, 18})
//	}
//
// # Concurrency
//
// Nothing in the package holds state except LawChecker, whose registry must
// not be mutated while it is being verified. All arithmetic functions are
// safe to call from any number of goroutines.
package arith
