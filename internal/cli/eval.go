package cli

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/arith"
)

// EvalResult is the output of the eval command.
type EvalResult struct {
	Op    string   `json:"op" yaml:"op"`
	Type  string   `json:"type" yaml:"type"`
	Args  []string `json:"args" yaml:"args"`
	Value any      `json:"value" yaml:"value"`
}

func (r EvalResult) String() string {
	return fmt.Sprint(r.Value)
}

var errNotIntegral = errors.New("operation requires an integral type")

// NewEvalCommand creates the eval command.
func NewEvalCommand(rootOpts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "eval <op> <args...>",
		Short: "Evaluate an operation",
		Long: `Evaluate an operation with arguments parsed as --type.

Domain errors (division by zero, negative factorial, k > n) are reported
instead of panicking. Run "arith ops" for the list of operations.`,
		Example: `  arith eval gcd 48 18
  arith eval sum 1 2 3 4
  arith eval reciprocal 5
  arith eval --type float64 max 3 -7.5 9 0
  arith eval max 3 -7 9 0`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runEval(rootOpts, cmd, args[0], args[1:])
		},
	}

	// Flags end at the operation name so negative arguments are not read as
	// shorthand flags.
	cmd.Flags().SetInterspersed(false)

	return cmd
}

func runEval(opts *RootOptions, cmd *cobra.Command, op string, raw []string) error {
	f := opts.formatter(cmd)

	spec, ok := LookupOp(op)
	if !ok {
		return f.fail(ExitCommandError, ErrCodeUsage, fmt.Errorf("%w: %s", arith.ErrUnknownOp, op))
	}
	if err := spec.CheckArity(len(raw)); err != nil {
		return f.fail(ExitCommandError, ErrCodeUsage, err)
	}

	value, err := Evaluate(opts.Type, op, raw)
	if err != nil {
		var de *arith.DomainError
		if errors.As(err, &de) {
			opts.Logger.Debug("domain error", "op", op, "args", raw, "error", err)
			return f.fail(ExitFailure, ErrCodeDomain, err)
		}
		return f.fail(ExitCommandError, ErrCodeUsage, err)
	}

	opts.Logger.Debug("evaluated", "op", op, "type", opts.Type, "args", raw, "value", value)
	return f.Success(EvalResult{Op: op, Type: opts.Type, Args: raw, Value: value})
}

// Evaluate parses raw as typ and applies op through the checked API, so
// domain failures come back as *arith.DomainError rather than panics.
func Evaluate(typ, op string, raw []string) (any, error) {
	switch typ {
	case "int":
		return evalTyped(op, raw, parseSigned[int](0))
	case "int64":
		return evalTyped(op, raw, parseSigned[int64](64))
	case "uint64":
		return evalTyped(op, raw, parseUint64)
	case "float64":
		return evalTyped(op, raw, parseFloat[float64](64))
	case "float32":
		return evalTyped(op, raw, parseFloat[float32](32))
	default:
		return nil, fmt.Errorf("unsupported type %q", typ)
	}
}

func evalTyped[N arith.Numeric](op string, raw []string, parse func(string) (N, error)) (any, error) {
	a, err := parseAll(raw, parse)
	if err != nil {
		return nil, err
	}
	if spec, ok := LookupOp(op); ok && spec.Integral {
		return evalIntegral(op, a)
	}
	return evalNumeric(op, a)
}

func evalNumeric[N arith.Numeric](op string, a []N) (any, error) {
	switch op {
	case "abs":
		return arith.Abs(a[0]), nil
	case "signum":
		return arith.CheckedSignum(a[0])
	case "sum":
		return arith.Sum(a[0], a[1], a[2:]...), nil
	case "difference":
		return arith.Difference(a[0], a[1]), nil
	case "product":
		return arith.Product(a[0], a[1], a[2:]...), nil
	case "quotient":
		return arith.CheckedQuotient(a[0], a[1])
	case "reciprocal":
		return arith.CheckedReciprocal(a[0])
	case "fact":
		return arith.CheckedFact(a[0])
	case "max":
		return arith.Max(a[0], a[1], a[2:]...), nil
	case "min":
		return arith.Min(a[0], a[1], a[2:]...), nil
	default:
		return nil, fmt.Errorf("%w: %s", arith.ErrUnknownOp, op)
	}
}

// evalIntegral dispatches the integral-only operations. N is checked at
// run time since the CLI picks the type from a flag.
func evalIntegral[N arith.Numeric](op string, a []N) (any, error) {
	switch ints := any(a).(type) {
	case []int:
		return integralOp(op, ints)
	case []int64:
		return integralOp(op, ints)
	case []uint64:
		return integralOp(op, ints)
	default:
		return nil, fmt.Errorf("%s: %w", op, errNotIntegral)
	}
}

func integralOp[I arith.Integral](op string, a []I) (any, error) {
	switch op {
	case "remainder":
		return arith.CheckedRemainder(a[0], a[1])
	case "permutation":
		return arith.CheckedPermutation(a[0], a[1])
	case "combination":
		return arith.CheckedCombination(a[0], a[1])
	case "gcd":
		return arith.GCD(a[0], a[1]), nil
	case "lcm":
		return arith.CheckedLCM(a[0], a[1])
	default:
		return nil, fmt.Errorf("%w: %s", arith.ErrUnknownOp, op)
	}
}

func parseAll[N arith.Numeric](raw []string, parse func(string) (N, error)) ([]N, error) {
	out := make([]N, len(raw))
	for i, s := range raw {
		v, err := parse(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("argument %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

// parseSigned parses base-10 integers; bitSize 0 means int.
func parseSigned[N int | int64](bitSize int) func(string) (N, error) {
	return func(s string) (N, error) {
		v, err := strconv.ParseInt(s, 10, bitSize)
		return N(v), err
	}
}

func parseUint64(s string) (uint64, error) {
	return strconv.ParseUint(s, 10, 64)
}

func parseFloat[N float32 | float64](bitSize int) func(string) (N, error) {
	return func(s string) (N, error) {
		v, err := strconv.ParseFloat(s, bitSize)
		return N(v), err
	}
}
