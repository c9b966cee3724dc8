package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/alexshd/arith"
)

// LawLine is one verified law in the laws report.
type LawLine struct {
	Op        string `json:"op" yaml:"op"`
	Law       string `json:"law" yaml:"law"`
	Holds     bool   `json:"holds" yaml:"holds"`
	Violation string `json:"violation,omitempty" yaml:"violation,omitempty"`
}

// LawsReport is the output of the laws command.
type LawsReport struct {
	Type    string    `json:"type" yaml:"type"`
	Samples []string  `json:"samples" yaml:"samples"`
	Laws    []LawLine `json:"laws" yaml:"laws"`
}

// Violations counts the laws that did not hold.
func (r LawsReport) Violations() int {
	n := 0
	for _, l := range r.Laws {
		if !l.Holds {
			n++
		}
	}
	return n
}

func (r LawsReport) String() string {
	var b strings.Builder
	for _, l := range r.Laws {
		if l.Holds {
			fmt.Fprintf(&b, "✓ %s %s\n", l.Op, l.Law)
		} else {
			fmt.Fprintf(&b, "✗ %s %s: %s\n", l.Op, l.Law, l.Violation)
		}
	}
	fmt.Fprintf(&b, "%d laws, %d violated (type %s, samples %s)",
		len(r.Laws), r.Violations(), r.Type, strings.Join(r.Samples, " "))
	return b.String()
}

// Default sample sets per type family. Floating samples are exact binary
// fractions so that exact laws stay exact.
var (
	defaultSignedSamples   = []string{"-12", "-3", "-1", "0", "1", "2", "5", "8"}
	defaultUnsignedSamples = []string{"0", "1", "2", "3", "5", "8", "12"}
	defaultFloatSamples    = []string{"-2.5", "-1", "0", "0.5", "1.5", "3.25"}
)

// NewLawsCommand creates the laws command.
func NewLawsCommand(rootOpts *RootOptions) *cobra.Command {
	var samples []string

	cmd := &cobra.Command{
		Use:   "laws [op...]",
		Short: "Verify the algebraic laws of the operations",
		Long: `Verify the declared laws of each binary operation over a sample set.

sum and product are associative and commutative with identities 0 and 1;
max and min are associative, commutative and idempotent; gcd and lcm are
associative and commutative (integral types only). With no arguments every
operation is checked.`,
		Example: `  arith laws
  arith laws --type float64 --samples 0.1,0.2,0.3 sum
  arith laws --tolerance 0 --type float64 --samples 0.1,0.2,0.3 sum`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLaws(rootOpts, cmd, args, samples)
		},
	}

	cmd.Flags().StringSliceVar(&samples, "samples", nil, "comma-separated sample values (default depends on --type)")

	return cmd
}

func runLaws(opts *RootOptions, cmd *cobra.Command, names, samples []string) error {
	f := opts.formatter(cmd)

	report, err := CheckLaws(opts, names, samples)
	if err != nil {
		return f.fail(ExitCommandError, ErrCodeUsage, err)
	}

	if err := f.Success(report); err != nil {
		return err
	}
	if n := report.Violations(); n > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d law(s) violated", n))
	}
	return nil
}

// CheckLaws builds the checker for opts.Type and verifies names (all
// operations when empty) over samples (the type's default set when empty).
func CheckLaws(opts *RootOptions, names, samples []string) (LawsReport, error) {
	checkerOpts := []arith.CheckerOption{
		arith.WithTolerance(opts.Tolerance),
		arith.WithLogger(opts.Logger),
	}

	switch opts.Type {
	case "int":
		return checkTyped(opts.Type, arith.IntegralOps[int](checkerOpts...), names, orDefault(samples, defaultSignedSamples), parseSigned[int](0))
	case "int64":
		return checkTyped(opts.Type, arith.IntegralOps[int64](checkerOpts...), names, orDefault(samples, defaultSignedSamples), parseSigned[int64](64))
	case "uint64":
		return checkTyped(opts.Type, arith.IntegralOps[uint64](checkerOpts...), names, orDefault(samples, defaultUnsignedSamples), parseUint64)
	case "float64":
		return checkTyped(opts.Type, arith.StandardOps[float64](checkerOpts...), names, orDefault(samples, defaultFloatSamples), parseFloat[float64](64))
	case "float32":
		return checkTyped(opts.Type, arith.StandardOps[float32](checkerOpts...), names, orDefault(samples, defaultFloatSamples), parseFloat[float32](32))
	default:
		return LawsReport{}, fmt.Errorf("unsupported type %q", opts.Type)
	}
}

func checkTyped[N arith.Numeric](typ string, checker *arith.LawChecker[N], names, raw []string, parse func(string) (N, error)) (LawsReport, error) {
	samples, err := parseAll(raw, parse)
	if err != nil {
		return LawsReport{}, fmt.Errorf("samples: %w", err)
	}

	if len(names) == 0 {
		names = checker.Names()
	}

	report := LawsReport{Type: typ, Samples: raw}
	for _, name := range names {
		s, ok := checker.Lookup(name)
		if !ok {
			return LawsReport{}, fmt.Errorf("%w: %s", arith.ErrUnknownOp, name)
		}
		for _, law := range arith.AllLaws {
			if !s.Has(law) {
				continue
			}
			line := LawLine{Op: name, Law: string(law), Holds: true}
			if err := checker.VerifyLaw(name, law, samples); err != nil {
				var v *arith.LawViolation
				if !errors.As(err, &v) {
					return LawsReport{}, err
				}
				line.Holds = false
				line.Violation = fmt.Sprintf("%v: %v != %v", v.Args, v.Got, v.Want)
			}
			report.Laws = append(report.Laws, line)
		}
	}
	return report, nil
}

func orDefault(values, def []string) []string {
	if len(values) == 0 {
		return def
	}
	return values
}
