package numeric

import "math"

// invPhi é (√5−1)/2, a razão áurea inversa que posiciona os pontos interiores.
var invPhi = (math.Sqrt(5) - 1) / 2

// GoldenSectionMin locates the minimum of f on [a, b] by golden-section
// search, reusing one of the two interior evaluations per iteration. f must
// be unimodal on the interval; on a non-unimodal objective the search
// converges to a local minimum, a known limitation of the method rather than
// a detected failure. The midpoint of the final bracket is the result; when
// maxIter runs out first it is returned together with a *ConvergenceError
// carrying the bracket achieved.
func GoldenSectionMin(f func(float64) float64, a, b, tol float64, maxIter int) (float64, error) {
	c := b - invPhi*(b-a)
	d := a + invPhi*(b-a)
	fc, fd := f(c), f(d)

	for i := 0; i < maxIter; i++ {
		if b-a < tol {
			return (a + b) / 2, nil
		}
		if fc < fd {
			// O mínimo não pode estar em (d, b]; descarta a ponta direita.
			b, d, fd = d, c, fc
			c = b - invPhi*(b-a)
			fc = f(c)
		} else {
			a, c, fc = c, d, fd
			d = a + invPhi*(b-a)
			fd = f(d)
		}
	}

	if b-a < tol {
		return (a + b) / 2, nil
	}
	return (a + b) / 2, &ConvergenceError{Low: a, High: b, Iterations: maxIter}
}
