package cli

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

// Arity values. Variadic operations take at least two arguments.
const (
	Unary    = 1
	BinaryOp = 2
	Variadic = -2
)

// OpSpec describes an operation the CLI can evaluate.
type OpSpec struct {
	Name     string `json:"name" yaml:"name"`
	Arity    int    `json:"arity" yaml:"arity"`
	Integral bool   `json:"integral" yaml:"integral"` // rejects floating types
	Summary  string `json:"summary" yaml:"summary"`
}

// ArityString renders the arity as "1", "2" or "2+".
func (s OpSpec) ArityString() string {
	if s.Arity == Variadic {
		return "2+"
	}
	return fmt.Sprint(s.Arity)
}

// CheckArity returns an error unless n arguments fit the operation.
func (s OpSpec) CheckArity(n int) error {
	switch {
	case s.Arity == Variadic && n >= 2:
		return nil
	case s.Arity == n:
		return nil
	default:
		return fmt.Errorf("%s takes %s argument(s), got %d", s.Name, s.ArityString(), n)
	}
}

// Ops lists every operation in documentation order.
var Ops = []OpSpec{
	{"abs", Unary, false, "absolute value"},
	{"signum", Unary, false, "sign: n / abs(n)"},
	{"sum", Variadic, false, "n1 + (n2 + ...)"},
	{"difference", BinaryOp, false, "n1 - n2"},
	{"product", Variadic, false, "n1 * (n2 * ...)"},
	{"quotient", BinaryOp, false, "n1 / n2"},
	{"remainder", BinaryOp, true, "i1 % i2"},
	{"reciprocal", Unary, false, "1 / n in float64"},
	{"fact", Unary, false, "n!"},
	{"max", Variadic, false, "largest argument"},
	{"min", Variadic, false, "smallest argument"},
	{"permutation", BinaryOp, true, "i1! / (i1-i2)!"},
	{"combination", BinaryOp, true, "i1! / (i2! (i1-i2)!)"},
	{"gcd", BinaryOp, true, "greatest common divisor"},
	{"lcm", BinaryOp, true, "least common multiple"},
}

// LookupOp finds an operation by name.
func LookupOp(name string) (OpSpec, bool) {
	for _, s := range Ops {
		if s.Name == name {
			return s, true
		}
	}
	return OpSpec{}, false
}

// OpsList is the output of the ops command.
type OpsList []OpSpec

func (l OpsList) String() string {
	var b strings.Builder
	w := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "OP\tARITY\tTYPES\tSUMMARY")
	for _, s := range l {
		types := "numeric"
		if s.Integral {
			types = "integral"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\n", s.Name, s.ArityString(), types, s.Summary)
	}
	w.Flush()
	return strings.TrimRight(b.String(), "\n")
}

// NewOpsCommand creates the ops command.
func NewOpsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "ops",
		Short: "List available operations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return rootOpts.formatter(cmd).Success(OpsList(Ops))
		},
	}
}
