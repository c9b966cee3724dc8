package arith

import (
	"errors"
	"math"
	"sync"
	"testing"
)

type celsius float64

// mustPanic runs fn and returns the recovered value, failing if fn returns
// normally.
func mustPanic(t *testing.T, fn func()) (r any) {
	t.Helper()
	defer func() {
		r = recover()
		if r == nil {
			t.Fatal("expected panic, got none")
		}
	}()
	fn()
	return nil
}

func TestAbs(t *testing.T) {
	if got := Abs(-5); got != 5 {
		t.Errorf("Abs(-5) = %d, want 5", got)
	}
	if got := Abs(5); got != 5 {
		t.Errorf("Abs(5) = %d, want 5", got)
	}
	if got := Abs(-3.5); got != 3.5 {
		t.Errorf("Abs(-3.5) = %v, want 3.5", got)
	}
	if got := Abs(uint8(200)); got != 200 {
		t.Errorf("Abs(uint8(200)) = %d, want 200", got)
	}
	if got := Abs(celsius(-12.5)); got != 12.5 {
		t.Errorf("Abs(celsius(-12.5)) = %v, want 12.5", got)
	}

	// No overflow detection: the most negative int64 wraps to itself.
	if got := Abs(int64(math.MinInt64)); got != math.MinInt64 {
		t.Errorf("Abs(MinInt64) = %d, want MinInt64", got)
	}
}

func TestSignum(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{7, 1}, {1, 1}, {-1, -1}, {-42, -1},
	}
	for _, tt := range tests {
		if got := Signum(tt.in); got != tt.want {
			t.Errorf("Signum(%d) = %d, want %d", tt.in, got, tt.want)
		}
	}

	if got := Signum(-0.25); got != -1 {
		t.Errorf("Signum(-0.25) = %v, want -1", got)
	}
}

func TestSignum_Zero(t *testing.T) {
	r := mustPanic(t, func() { Signum(0) })
	if err, ok := r.(error); !ok || err.Error() != "runtime error: integer divide by zero" {
		t.Errorf("Signum(0) panicked with %v, want integer divide by zero", r)
	}

	if got := Signum(0.0); !math.IsNaN(got) {
		t.Errorf("Signum(0.0) = %v, want NaN", got)
	}
}

func TestSignMagnitude(t *testing.T) {
	AssertSignMagnitude(t, []int{-100, -7, -1, 0, 1, 3, 250})
	AssertSignMagnitude(t, []float64{-2.5, -1e-9, 0, 0.125, 1e12})
	AssertSignMagnitude(t, []int8{-128 + 1, -3, 5, 127})
}

func TestSum(t *testing.T) {
	if got := Sum(1, 2); got != 3 {
		t.Errorf("Sum(1, 2) = %d, want 3", got)
	}
	if got := Sum(1, 2, 3, 4); got != 10 {
		t.Errorf("Sum(1, 2, 3, 4) = %d, want 10", got)
	}
	if got := Sum(-5, 5, 0); got != 0 {
		t.Errorf("Sum(-5, 5, 0) = %d, want 0", got)
	}
	if got := Sum(1.5, 2); got != 3.5 {
		t.Errorf("Sum(1.5, 2) = %v, want 3.5", got)
	}
}

// TestSum_RightGrouping pins the fold order where floating addition makes it
// observable: 0.1 + (0.2 + 0.3) != (0.1 + 0.2) + 0.3.
func TestSum_RightGrouping(t *testing.T) {
	a, b, c := 0.1, 0.2, 0.3

	got := Sum(a, b, c)
	if want := a + (b + c); got != want {
		t.Errorf("Sum(%v, %v, %v) = %v, want a + (b + c) = %v", a, b, c, got, want)
	}
	if left := (a + b) + c; got == left {
		t.Errorf("Sum grouped from the left: %v", got)
	}

	d := 1e-17
	if got, want := Sum(a, b, c, d), a+(b+(c+d)); got != want {
		t.Errorf("Sum of four = %v, want %v", got, want)
	}

	t.Logf("✓ Sum(0.1, 0.2, 0.3) = %v (left fold would give %v)", got, (a+b)+c)
}

func TestDifference(t *testing.T) {
	if got := Difference(10, 3); got != 7 {
		t.Errorf("Difference(10, 3) = %d, want 7", got)
	}
	if got := Difference(3, 10); got != -7 {
		t.Errorf("Difference(3, 10) = %d, want -7", got)
	}
	if got := Difference(uint(3), 10); got != math.MaxUint-6 {
		t.Errorf("Difference(uint(3), 10) = %d, want wraparound", got)
	}
}

func TestProduct(t *testing.T) {
	if got := Product(3, 4); got != 12 {
		t.Errorf("Product(3, 4) = %d, want 12", got)
	}
	if got := Product(2, 3, 4, 5); got != 120 {
		t.Errorf("Product(2, 3, 4, 5) = %d, want 120", got)
	}
	if got := Product(-2, 3, 0); got != 0 {
		t.Errorf("Product(-2, 3, 0) = %d, want 0", got)
	}

	a, b, c := 1.1, 3.3, 7.7
	if got, want := Product(a, b, c), a*(b*c); got != want {
		t.Errorf("Product(%v, %v, %v) = %v, want a * (b * c) = %v", a, b, c, got, want)
	}
}

func TestQuotient(t *testing.T) {
	if got := Quotient(7, 2); got != 3 {
		t.Errorf("Quotient(7, 2) = %d, want 3", got)
	}
	if got := Quotient(-7, 2); got != -3 {
		t.Errorf("Quotient(-7, 2) = %d, want -3 (truncation toward zero)", got)
	}
	if got := Quotient(7.0, 2); got != 3.5 {
		t.Errorf("Quotient(7.0, 2) = %v, want 3.5", got)
	}
}

func TestQuotient_ZeroDivisor(t *testing.T) {
	mustPanic(t, func() { Quotient(1, 0) })

	if got := Quotient(1.0, 0); !math.IsInf(got, 1) {
		t.Errorf("Quotient(1.0, 0) = %v, want +Inf", got)
	}
	if got := Quotient(-1.0, 0); !math.IsInf(got, -1) {
		t.Errorf("Quotient(-1.0, 0) = %v, want -Inf", got)
	}
	if got := Quotient(0.0, 0); !math.IsNaN(got) {
		t.Errorf("Quotient(0.0, 0) = %v, want NaN", got)
	}
}

func TestRemainder(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{7, 3, 1},
		{-7, 3, -1},
		{7, -3, 1},
		{9, 3, 0},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := Remainder(tt.a, tt.b); got != tt.want {
			t.Errorf("Remainder(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	if got := Remainder(int64(1)<<40+5, int64(8)); got != 5 {
		t.Errorf("Remainder(2^40+5, 8) = %d, want 5", got)
	}

	mustPanic(t, func() { Remainder(1, 0) })
}

func TestReciprocal(t *testing.T) {
	if got := Reciprocal(4); got != 0.25 {
		t.Errorf("Reciprocal(4) = %v, want 0.25", got)
	}
	if got := Reciprocal(0.5); got != 2 {
		t.Errorf("Reciprocal(0.5) = %v, want 2", got)
	}
	if got := Reciprocal(-8); got != -0.125 {
		t.Errorf("Reciprocal(-8) = %v, want -0.125", got)
	}
	if got := Reciprocal(5); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Reciprocal(5) = %v, want ≈0.2", got)
	}
	if got := Reciprocal(0); !math.IsInf(got, 1) {
		t.Errorf("Reciprocal(0) = %v, want +Inf", got)
	}
}

func TestReciprocalAs(t *testing.T) {
	got := ReciprocalAs[float32](4)
	if got != float32(0.25) {
		t.Errorf("ReciprocalAs[float32](4) = %v, want 0.25", got)
	}

	third := ReciprocalAs[float32](3)
	if third != float32(1)/3 {
		t.Errorf("ReciprocalAs[float32](3) = %v, want float32 1/3", third)
	}
	if float64(third) == Reciprocal(3) {
		t.Errorf("float32 and float64 reciprocals of 3 should differ")
	}
}

func TestFact(t *testing.T) {
	tests := []struct {
		n, want int64
	}{
		{0, 1},
		{1, 1},
		{2, 2},
		{5, 120},
		{10, 3628800},
		{20, 2432902008176640000},
	}
	for _, tt := range tests {
		if got := Fact(tt.n); got != tt.want {
			t.Errorf("Fact(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}

	if got := Fact(5.0); got != 120 {
		t.Errorf("Fact(5.0) = %v, want 120", got)
	}
	if got := Fact(uint8(5)); got != 120 {
		t.Errorf("Fact(uint8(5)) = %d, want 120", got)
	}
}

func TestFact_Negative(t *testing.T) {
	r := mustPanic(t, func() { Fact(-1) })

	err, ok := r.(error)
	if !ok {
		t.Fatalf("Fact(-1) panicked with %T, want error", r)
	}
	if !errors.Is(err, ErrNegativeFactorial) {
		t.Errorf("Fact(-1) panic = %v, want ErrNegativeFactorial", err)
	}

	var de *DomainError
	if !errors.As(err, &de) || de.Op != "fact" {
		t.Errorf("Fact(-1) panic = %#v, want *DomainError for fact", err)
	}

	t.Logf("✓ Fact(-1) panics: %v", err)
}

// TestFact_NonIntegralFloat: the recursion steps past zero and trips the
// negative guard.
func TestFact_NonIntegralFloat(t *testing.T) {
	r := mustPanic(t, func() { Fact(2.5) })
	if err, ok := r.(error); !ok || !errors.Is(err, ErrNegativeFactorial) {
		t.Errorf("Fact(2.5) panicked with %v, want ErrNegativeFactorial", r)
	}
}

func TestMaxMin(t *testing.T) {
	triples := [][3]int{
		{1, 2, 3},
		{3, 2, 1},
		{2, 3, 1},
		{-1, -2, -3},
		{-3, 0, 3},
		{0, 0, 0},
		{5, 5, 1},
		{1, 5, 5},
		{-7, 9, -7},
		{100, -100, 0},
		{0, -1, 1},
		{42, 42, 42},
	}

	for _, tr := range triples {
		wantMax, wantMin := tr[0], tr[0]
		for _, v := range tr[1:] {
			if v > wantMax {
				wantMax = v
			}
			if v < wantMin {
				wantMin = v
			}
		}

		if got := Max(tr[0], tr[1], tr[2]); got != wantMax {
			t.Errorf("Max%v = %d, want %d", tr, got, wantMax)
		}
		if got := Min(tr[0], tr[1], tr[2]); got != wantMin {
			t.Errorf("Min%v = %d, want %d", tr, got, wantMin)
		}
	}

	if got := Max(3, -7, 9, 0); got != 9 {
		t.Errorf("Max(3, -7, 9, 0) = %d, want 9", got)
	}
	if got := Min(3, -7, 9, 0); got != -7 {
		t.Errorf("Min(3, -7, 9, 0) = %d, want -7", got)
	}
	if got := Max(-0.5, -0.25); got != -0.25 {
		t.Errorf("Max(-0.5, -0.25) = %v, want -0.25", got)
	}
	if got := Min(uint(4), 2, 9); got != 2 {
		t.Errorf("Min(uint(4), 2, 9) = %d, want 2", got)
	}
}

func TestPermutationCombination(t *testing.T) {
	tests := []struct {
		n, k      int
		perm, com int
	}{
		{5, 2, 20, 10},
		{6, 3, 120, 20},
		{5, 0, 1, 1},
		{5, 5, 120, 1},
		{0, 0, 1, 1},
		{10, 3, 720, 120},
	}
	for _, tt := range tests {
		if got := Permutation(tt.n, tt.k); got != tt.perm {
			t.Errorf("Permutation(%d, %d) = %d, want %d", tt.n, tt.k, got, tt.perm)
		}
		if got := Combination(tt.n, tt.k); got != tt.com {
			t.Errorf("Combination(%d, %d) = %d, want %d", tt.n, tt.k, got, tt.com)
		}
	}
}

func TestPermutationCombination_OutOfRange(t *testing.T) {
	for _, fn := range []func(){
		func() { Permutation(3, 5) },
		func() { Combination(3, 5) },
		func() { Permutation(-1, 0) },
	} {
		r := mustPanic(t, fn)
		if err, ok := r.(error); !ok || !errors.Is(err, ErrNegativeFactorial) {
			t.Errorf("panic = %v, want ErrNegativeFactorial", r)
		}
	}
}

func TestGCD(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{48, 18, 6},
		{18, 48, 6},
		{-48, 18, 6},
		{48, -18, 6},
		{-48, -18, 6},
		{7, 0, 7},
		{-7, 0, 7},
		{0, 7, 7},
		{0, 0, 0},
		{17, 5, 1},
	}
	for _, tt := range tests {
		if got := GCD(tt.a, tt.b); got != tt.want {
			t.Errorf("GCD(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	if got := GCD(uint32(12), 8); got != 4 {
		t.Errorf("GCD(uint32(12), 8) = %d, want 4", got)
	}
}

func TestLCM(t *testing.T) {
	tests := []struct {
		a, b, want int
	}{
		{4, 6, 12},
		{-4, 6, 12},
		{21, 6, 42},
		{7, 1, 7},
		{0, 5, 0},
	}
	for _, tt := range tests {
		if got := LCM(tt.a, tt.b); got != tt.want {
			t.Errorf("LCM(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}

	mustPanic(t, func() { LCM(0, 0) })
}

func TestGCDLCMContract(t *testing.T) {
	AssertGCDLCM(t, []int{-36, -12, -1, 0, 1, 4, 9, 18, 35})
	AssertGCDLCM(t, []uint16{0, 1, 6, 15, 100})
}

// TestEndToEnd walks through the documented quick-start values.
func TestEndToEnd(t *testing.T) {
	if got := GCD(48, 18); got != 6 {
		t.Errorf("GCD(48, 18) = %d, want 6", got)
	}
	if got := LCM(4, 6); got != 12 {
		t.Errorf("LCM(4, 6) = %d, want 12", got)
	}
	if got := Combination(6, 3); got != 20 {
		t.Errorf("Combination(6, 3) = %d, want 20", got)
	}
	if got := Sum(1, 2, 3, 4); got != 10 {
		t.Errorf("Sum(1, 2, 3, 4) = %d, want 10", got)
	}
	if got := Max(3, -7, 9, 0); got != 9 {
		t.Errorf("Max(3, -7, 9, 0) = %d, want 9", got)
	}
	if got := Reciprocal(5); math.Abs(got-0.2) > 1e-9 {
		t.Errorf("Reciprocal(5) = %v, want ≈0.2", got)
	}

	t.Logf("✓ End-to-end scenario")
}

func TestConcurrentCalls(t *testing.T) {
	var wg sync.WaitGroup
	errs := make(chan string, 64)

	for w := 0; w < 16; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 1; i <= 200; i++ {
				if g := GCD(i*6, 18); g != GCD(18, i*6) {
					errs <- "GCD not stable across goroutines"
					return
				}
				if c := Combination(12, 4); c != 495 {
					errs <- "Combination(12, 4) != 495"
					return
				}
			}
		}()
	}

	wg.Wait()
	close(errs)
	for e := range errs {
		t.Error(e)
	}
}
