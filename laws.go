package arith

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
	"sort"
)

// Law names an algebraic property of a binary operation.
type Law string

const (
	Associative Law = "Associative" // op(a, op(b, c)) == op(op(a, b), c)
	Commutative Law = "Commutative" // op(a, b) == op(b, a)
	Identity    Law = "Identity"    // op(a, e) == op(e, a) == a
	Idempotent  Law = "Idempotent"  // op(a, a) == a
)

// AllLaws lists every law in the order they are verified.
var AllLaws = []Law{Associative, Commutative, Identity, Idempotent}

// DefaultTolerance is the relative tolerance used when comparing floating
// results. Integral results are always compared exactly.
const DefaultTolerance = 1e-9

// BinaryOp is a two-argument operation such as Difference or GCD. The
// variadic operations are adapted with Binary.
type BinaryOp[N Numeric] func(a, b N) N

// Binary adapts a variadic operation (Sum, Product, Max, Min) to a BinaryOp.
func Binary[N Numeric](fn func(n1, n2 N, rest ...N) N) BinaryOp[N] {
	return func(a, b N) N { return fn(a, b) }
}

// LawSet declares which laws an operation is expected to satisfy.
type LawSet[N Numeric] struct {
	Name     string      // Operation name used in reports
	Op       BinaryOp[N] // The operation under test
	Laws     []Law       // Declared laws
	Identity N           // Identity element, read only when Laws has Identity
}

// Has reports whether law is declared for the operation.
func (s LawSet[N]) Has(law Law) bool {
	for _, l := range s.Laws {
		if l == law {
			return true
		}
	}
	return false
}

// LawViolation is a counterexample to a declared law.
type LawViolation struct {
	Op   string
	Law  Law
	Args []any // Sample values that broke the law
	Got  any   // Left-hand side of the law
	Want any   // Right-hand side of the law
}

func (v *LawViolation) Error() string {
	return fmt.Sprintf("arith: %s violates %s law at %v: %v != %v",
		v.Op, v.Law, v.Args, v.Got, v.Want)
}

// ErrUnknownOp is returned when verifying an operation that was never
// registered.
var ErrUnknownOp = errors.New("unknown operation")

// LawChecker holds operations and their declared laws, and verifies the laws
// against sample values.
//
// Sample tuples on which the operation fails its own domain (LCM(0, 0), an
// integral division by zero) are skipped rather than reported.
//
// Example:
//
//	checker := arith.StandardOps[float64]()
//	if err := checker.Verify("sum", []float64{0.1, 0.2, 0.3, -4}); err != nil {
//	    log.Fatal(err)
//	}
type LawChecker[N Numeric] struct {
	ops       map[string]LawSet[N]
	tolerance float64
	logger    *slog.Logger
}

// CheckerOption configures a LawChecker.
type CheckerOption func(*checkerOptions)

type checkerOptions struct {
	tolerance float64
	logger    *slog.Logger
}

// WithTolerance sets the relative tolerance for floating comparisons.
func WithTolerance(tol float64) CheckerOption {
	return func(o *checkerOptions) { o.tolerance = tol }
}

// WithLogger logs each verification outcome. Passing outcomes are logged at
// debug level and violations at warn.
func WithLogger(logger *slog.Logger) CheckerOption {
	return func(o *checkerOptions) { o.logger = logger }
}

// NewLawChecker creates a checker with an empty registry.
func NewLawChecker[N Numeric](opts ...CheckerOption) *LawChecker[N] {
	o := checkerOptions{tolerance: DefaultTolerance}
	for _, opt := range opts {
		opt(&o)
	}
	return &LawChecker[N]{
		ops:       make(map[string]LawSet[N]),
		tolerance: o.tolerance,
		logger:    o.logger,
	}
}

// StandardOps returns a checker with the Numeric operations registered:
//
//	sum        Associative, Commutative, Identity(0)
//	product    Associative, Commutative, Identity(1)
//	max, min   Associative, Commutative, Idempotent
//	difference (no laws)
func StandardOps[N Numeric](opts ...CheckerOption) *LawChecker[N] {
	c := NewLawChecker[N](opts...)
	c.Register(LawSet[N]{Name: "sum", Op: Binary(Sum[N]), Laws: []Law{Associative, Commutative, Identity}, Identity: 0})
	c.Register(LawSet[N]{Name: "product", Op: Binary(Product[N]), Laws: []Law{Associative, Commutative, Identity}, Identity: 1})
	c.Register(LawSet[N]{Name: "max", Op: Binary(Max[N]), Laws: []Law{Associative, Commutative, Idempotent}})
	c.Register(LawSet[N]{Name: "min", Op: Binary(Min[N]), Laws: []Law{Associative, Commutative, Idempotent}})
	c.Register(LawSet[N]{Name: "difference", Op: Difference[N]})
	return c
}

// IntegralOps is StandardOps plus the integral-only operations:
//
//	gcd        Associative, Commutative
//	lcm        Associative, Commutative
//	remainder  (no laws)
func IntegralOps[I Integral](opts ...CheckerOption) *LawChecker[I] {
	c := StandardOps[I](opts...)
	c.Register(LawSet[I]{Name: "gcd", Op: GCD[I], Laws: []Law{Associative, Commutative}})
	c.Register(LawSet[I]{Name: "lcm", Op: LCM[I], Laws: []Law{Associative, Commutative}})
	c.Register(LawSet[I]{Name: "remainder", Op: Remainder[I]})
	return c
}

// Register adds or replaces an operation.
func (c *LawChecker[N]) Register(set LawSet[N]) {
	c.ops[set.Name] = set
}

// Lookup returns the registered operation with the given name.
func (c *LawChecker[N]) Lookup(name string) (LawSet[N], bool) {
	s, ok := c.ops[name]
	return s, ok
}

// Names returns the registered operation names in sorted order.
func (c *LawChecker[N]) Names() []string {
	names := make([]string, 0, len(c.ops))
	for name := range c.ops {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Require checks that name is registered and declares every law in laws.
func (c *LawChecker[N]) Require(name string, laws ...Law) error {
	s, ok := c.ops[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}
	for _, law := range laws {
		if !s.Has(law) {
			return fmt.Errorf("operation %s missing required law: %s (has: %v)", name, law, s.Laws)
		}
	}
	return nil
}

// Verify checks every declared law of name over samples and returns the
// first violation.
func (c *LawChecker[N]) Verify(name string, samples []N) error {
	s, ok := c.ops[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}
	for _, law := range AllLaws {
		if !s.Has(law) {
			continue
		}
		if err := c.verify(s, law, samples); err != nil {
			return err
		}
	}
	return nil
}

// VerifyLaw checks a single law of name over samples, whether or not the law
// is declared. It is how a caller probes an undeclared law.
func (c *LawChecker[N]) VerifyLaw(name string, law Law, samples []N) error {
	s, ok := c.ops[name]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownOp, name)
	}
	return c.verify(s, law, samples)
}

// LawResult is the outcome of verifying one declared law.
type LawResult struct {
	Op  string
	Law Law
	Err error // nil when the law held on every sample
}

// VerifyAll verifies every declared law of every registered operation, in
// name order.
func (c *LawChecker[N]) VerifyAll(samples []N) []LawResult {
	var results []LawResult
	for _, name := range c.Names() {
		s := c.ops[name]
		for _, law := range AllLaws {
			if s.Has(law) {
				results = append(results, LawResult{Op: name, Law: law, Err: c.verify(s, law, samples)})
			}
		}
	}
	return results
}

func (c *LawChecker[N]) verify(s LawSet[N], law Law, samples []N) error {
	var err error
	switch law {
	case Associative:
		err = c.associative(s, samples)
	case Commutative:
		err = c.commutative(s, samples)
	case Identity:
		err = c.identity(s, samples)
	case Idempotent:
		err = c.idempotent(s, samples)
	default:
		err = fmt.Errorf("unknown law %q", law)
	}

	if c.logger != nil {
		if err != nil {
			c.logger.Warn("law violated", "op", s.Name, "law", law, "error", err)
		} else {
			c.logger.Debug("law holds", "op", s.Name, "law", law, "samples", len(samples))
		}
	}
	return err
}

func (c *LawChecker[N]) associative(s LawSet[N], samples []N) error {
	for _, a := range samples {
		for _, b := range samples {
			for _, x := range samples {
				left, err := c.apply(s, func() N { return s.Op(a, s.Op(b, x)) })
				if err != nil {
					continue
				}
				right, err := c.apply(s, func() N { return s.Op(s.Op(a, b), x) })
				if err != nil {
					continue
				}
				if !c.equal(left, right) {
					return &LawViolation{Op: s.Name, Law: Associative, Args: []any{a, b, x}, Got: left, Want: right}
				}
			}
		}
	}
	return nil
}

func (c *LawChecker[N]) commutative(s LawSet[N], samples []N) error {
	for _, a := range samples {
		for _, b := range samples {
			left, err := c.apply(s, func() N { return s.Op(a, b) })
			if err != nil {
				continue
			}
			right, err := c.apply(s, func() N { return s.Op(b, a) })
			if err != nil {
				continue
			}
			if !c.equal(left, right) {
				return &LawViolation{Op: s.Name, Law: Commutative, Args: []any{a, b}, Got: left, Want: right}
			}
		}
	}
	return nil
}

func (c *LawChecker[N]) identity(s LawSet[N], samples []N) error {
	e := s.Identity
	for _, a := range samples {
		for _, v := range [][2]N{{a, e}, {e, a}} {
			got, err := c.apply(s, func() N { return s.Op(v[0], v[1]) })
			if err != nil {
				continue
			}
			if !c.equal(got, a) {
				return &LawViolation{Op: s.Name, Law: Identity, Args: []any{v[0], v[1]}, Got: got, Want: a}
			}
		}
	}
	return nil
}

func (c *LawChecker[N]) idempotent(s LawSet[N], samples []N) error {
	for _, a := range samples {
		got, err := c.apply(s, func() N { return s.Op(a, a) })
		if err != nil {
			continue
		}
		if !c.equal(got, a) {
			return &LawViolation{Op: s.Name, Law: Idempotent, Args: []any{a, a}, Got: got, Want: a}
		}
	}
	return nil
}

func (c *LawChecker[N]) apply(s LawSet[N], fn func() N) (N, error) {
	return Try(s.Name, fn)
}

// equal compares exactly for integral types and within the relative
// tolerance for floating types. Two NaNs compare equal.
func (c *LawChecker[N]) equal(a, b N) bool {
	if a == b {
		return true
	}
	if !isFloating[N]() {
		return false
	}
	fa, fb := float64(a), float64(b)
	if math.IsNaN(fa) && math.IsNaN(fb) {
		return true
	}
	diff := math.Abs(fa - fb)
	scale := math.Max(math.Abs(fa), math.Abs(fb))
	if scale == 0 || math.IsInf(scale, 0) {
		return false
	}
	return diff/scale <= c.tolerance
}
