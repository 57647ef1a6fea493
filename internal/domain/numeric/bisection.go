package numeric

import (
	"errors"
	"fmt"
)

// Default tolerances and iteration caps for the iterative solvers. The caps
// double as the system's only bounded-time guarantee.
const (
	DefaultTolerance     = 1e-4
	DefaultMaxIterations = 100
)

// ErrInvalidBracket indica um intervalo inicial que não contém mudança de
// sinal; o chamador apresenta isso como "saldo sobrevive ao horizonte".
var ErrInvalidBracket = errors.New("bracket does not straddle a root")

// ConvergenceError reports a solver that hit its iteration cap before the
// bracket narrowed below tolerance. Low and High carry the best bracket
// achieved, so callers are told the bound actually reached.
type ConvergenceError struct {
	Low        float64
	High       float64
	Iterations int
}

func (e *ConvergenceError) Error() string {
	return fmt.Sprintf("no convergence after %d iterations; best bracket [%g, %g]", e.Iterations, e.Low, e.High)
}

// Bisect finds a root of f on [lo, hi] by bisection. It requires
// f(lo) <= 0 <= f(hi); an endpoint evaluating to exactly zero is returned
// without iterating. The bracket is halved until its width drops below tol
// and the midpoint of the final bracket is the result. When maxIter is
// exhausted first, the midpoint is returned together with a
// *ConvergenceError describing the bracket achieved.
func Bisect(f func(float64) float64, lo, hi, tol float64, maxIter int) (float64, error) {
	flo, fhi := f(lo), f(hi)
	if flo == 0 {
		return lo, nil
	}
	if fhi == 0 {
		return hi, nil
	}
	if flo > 0 || fhi < 0 {
		return 0, ErrInvalidBracket
	}

	for i := 0; i < maxIter; i++ {
		if hi-lo < tol {
			return (lo + hi) / 2, nil
		}
		mid := (lo + hi) / 2
		if f(mid) <= 0 {
			lo = mid
		} else {
			hi = mid
		}
	}

	if hi-lo < tol {
		return (lo + hi) / 2, nil
	}
	return (lo + hi) / 2, &ConvergenceError{Low: lo, High: hi, Iterations: maxIter}
}
