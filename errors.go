package arith

import (
	"errors"
	"fmt"
	"runtime"
	"strings"
)

// Domain failures. The core functions panic (or follow IEEE-754) on these;
// the Checked variants return them wrapped in a *DomainError.
var (
	ErrDivideByZero      = errors.New("division by zero")
	ErrNegativeFactorial = errors.New("factorial of negative number")
	ErrOutOfDomain       = errors.New("argument out of domain")
)

// DomainError records the operation and arguments that fell outside an
// operation's domain.
type DomainError struct {
	Op   string // Operation name: "fact", "quotient", ...
	Args []any  // Arguments as passed by the caller
	Err  error  // One of the Err* sentinels
}

func (e *DomainError) Error() string {
	args := make([]string, len(e.Args))
	for i, a := range e.Args {
		args[i] = fmt.Sprint(a)
	}
	return fmt.Sprintf("arith: %s(%s): %v", e.Op, strings.Join(args, ", "), e.Err)
}

func (e *DomainError) Unwrap() error {
	return e.Err
}

func domainError(op string, err error, args ...any) *DomainError {
	return &DomainError{Op: op, Args: args, Err: err}
}

// Try runs fn and converts a domain panic into an error.
//
// A *DomainError panic is returned as is. The runtime's integer
// divide-by-zero panic becomes a *DomainError wrapping ErrDivideByZero. Any
// other panic is not a domain failure and is re-raised.
//
// Example:
//
//	v, err := arith.Try("lcm", func() int { return arith.LCM(a, b) })
//	if errors.Is(err, arith.ErrDivideByZero) {
//	    // a == b == 0
//	}
func Try[T any](op string, fn func() T) (result T, err error) {
	defer func() {
		r := recover()
		if r == nil {
			return
		}
		switch e := r.(type) {
		case *DomainError:
			err = e
		case runtime.Error:
			if !strings.Contains(e.Error(), "divide by zero") {
				panic(r)
			}
			err = domainError(op, ErrDivideByZero)
		default:
			panic(r)
		}
	}()
	return fn(), nil
}
