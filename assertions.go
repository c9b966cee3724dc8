package arith

import (
	"testing"
)

// AssertLaws verifies every law declared for name in checker over samples.
//
// Use it to pin the algebra of an operation in a test:
//
//	func TestSumLaws(t *testing.T) {
//	    arith.AssertLaws(t, arith.StandardOps[int](), "sum", []int{-3, 0, 1, 7})
//	}
func AssertLaws[N Numeric](t testing.TB, checker *LawChecker[N], name string, samples []N) {
	t.Helper()

	s, ok := checker.Lookup(name)
	if !ok {
		t.Fatalf("Operation %q not registered", name)
	}

	for _, law := range AllLaws {
		if !s.Has(law) {
			continue
		}
		if err := checker.VerifyLaw(name, law, samples); err != nil {
			t.Errorf("%s: %v", law, err)
			continue
		}
		t.Logf("✓ %s is %s over %d samples", name, law, len(samples))
	}
}

// AssertAssociative verifies op(a, op(b, c)) == op(op(a, b), c) for every
// triple drawn from samples.
//
// Mathematical property:
//
//	a ∘ (b ∘ c) = (a ∘ b) ∘ c
func AssertAssociative[N Numeric](t testing.TB, op BinaryOp[N], samples []N) {
	t.Helper()
	assertLaw(t, LawSet[N]{Name: "op", Op: op}, Associative, samples)
}

// AssertCommutative verifies op(a, b) == op(b, a) for every pair.
func AssertCommutative[N Numeric](t testing.TB, op BinaryOp[N], samples []N) {
	t.Helper()
	assertLaw(t, LawSet[N]{Name: "op", Op: op}, Commutative, samples)
}

// AssertIdentity verifies that e is a two-sided identity of op.
func AssertIdentity[N Numeric](t testing.TB, op BinaryOp[N], e N, samples []N) {
	t.Helper()
	assertLaw(t, LawSet[N]{Name: "op", Op: op, Identity: e}, Identity, samples)
}

// AssertIdempotent verifies op(a, a) == a.
func AssertIdempotent[N Numeric](t testing.TB, op BinaryOp[N], samples []N) {
	t.Helper()
	assertLaw(t, LawSet[N]{Name: "op", Op: op}, Idempotent, samples)
}

func assertLaw[N Numeric](t testing.TB, s LawSet[N], law Law, samples []N) {
	t.Helper()

	s.Laws = []Law{law}
	checker := NewLawChecker[N]()
	checker.Register(s)

	if err := checker.VerifyLaw(s.Name, law, samples); err != nil {
		t.Errorf("%s law failed: %v", law, err)
		return
	}
	t.Logf("✓ %s over %d samples", law, len(samples))
}

// AssertSignMagnitude verifies Signum(n) * Abs(n) == n for every nonzero
// sample. Zero samples are skipped: zero has no sign.
func AssertSignMagnitude[N Signed](t testing.TB, samples []N) {
	t.Helper()

	checked := 0
	for _, n := range samples {
		if n == 0 {
			continue
		}
		checked++
		if got := Signum(n) * Abs(n); got != n {
			t.Errorf("Signum(%v) * Abs(%v) = %v, want %v", n, n, got, n)
		}
		if s := Signum(n); s != 1 && s != -1 {
			t.Errorf("Signum(%v) = %v, want ±1", n, s)
		}
	}
	t.Logf("✓ Sign/magnitude decomposition over %d nonzero samples", checked)
}

// AssertGCDLCM verifies the gcd/lcm contract for every pair of samples:
//
//	GCD(a, b) >= 0
//	GCD(a, b) == GCD(b, a)
//	GCD(a, 0) == Abs(a)
//	LCM(a, b) * GCD(a, b) == Abs(a * b)   for a, b != 0
func AssertGCDLCM[I Integral](t testing.TB, samples []I) {
	t.Helper()

	var failures int
	for _, a := range samples {
		if g := GCD(a, 0); g != Abs(a) {
			t.Errorf("GCD(%v, 0) = %v, want %v", a, g, Abs(a))
			failures++
		}
		for _, b := range samples {
			g := GCD(a, b)
			if g < 0 {
				t.Errorf("GCD(%v, %v) = %v, want non-negative", a, b, g)
				failures++
			}
			if r := GCD(b, a); r != g {
				t.Errorf("GCD not commutative: GCD(%v, %v) = %v, GCD(%v, %v) = %v", a, b, g, b, a, r)
				failures++
			}
			if a == 0 || b == 0 {
				continue
			}
			if l := LCM(a, b); l*g != Abs(a*b) {
				t.Errorf("LCM(%v, %v) * GCD = %v, want Abs(a*b) = %v", a, b, l*g, Abs(a*b))
				failures++
			}
		}
	}

	if failures == 0 {
		t.Logf("✓ GCD/LCM contract over %d pairs", len(samples)*len(samples))
	}
}
