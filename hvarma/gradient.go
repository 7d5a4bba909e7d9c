package hvarma

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gohvarma/stats"
)

// Equations is the gauge-fixed normal-equations system Matrix * x = Indep.
//
// The unknown vector x has 3*Order+2 entries: the vertical coefficients
// a_1..a_p, followed by the real parts and then the imaginary parts of the
// horizontal coefficients b_0..b_p. The leading vertical coefficient a_0 is
// fixed to 1 and is not part of x.
type Equations struct {
	Matrix     *mat.Dense
	Indep      *mat.VecDense
	Weights    Weights // Weights actually used, after automatic selection
	Order      int
	Convention SignConvention
}

// GradientMatrix builds the full 3(order+1) system with CoefficientMatrix and
// IndependentTerm, then drops row, column and entry 0 (the fixed vertical
// coefficient) to produce the 3*order+2 system.
func GradientMatrix(cov *stats.CovarianceResult, order int, w Weights, conv SignConvention) (*Equations, error) {
	if err := checkSystem(cov, order, w, conv); err != nil {
		return nil, err
	}

	full := coefficientMatrix(cov, order, w, conv)
	fullIndep := independentTerm(cov, order, w, conv)

	n := 3 * (order + 1)
	return &Equations{
		Matrix:     mat.DenseCopyOf(full.Slice(1, n, 1, n)),
		Indep:      mat.VecDenseCopyOf(fullIndep.SliceVec(1, n)),
		Weights:    w,
		Order:      order,
		Convention: conv,
	}, nil
}

// Size returns the number of unknowns, 3*Order+2.
func (e *Equations) Size() int {
	r, _ := e.Matrix.Dims()
	return r
}

// Symmetric returns the coefficient matrix as a *mat.SymDense, suitable for
// Cholesky-based solvers. Each stored entry is the mean of m_ij and m_ji.
// It fails with ErrAsymmetric if any pair differs by more than tol.
func (e *Equations) Symmetric(tol float64) (*mat.SymDense, error) {
	if !mat.EqualApprox(e.Matrix, e.Matrix.T(), tol) {
		return nil, fmt.Errorf("%w: max |m_ij - m_ji| = %g exceeds %g", ErrAsymmetric, maxAsymmetry(e.Matrix), tol)
	}

	n := e.Size()
	sym := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			sym.SetSym(i, j, (e.Matrix.At(i, j)+e.Matrix.At(j, i))/2)
		}
	}
	return sym, nil
}

func maxAsymmetry(m mat.Matrix) float64 {
	r, _ := m.Dims()
	worst := 0.0
	for i := 0; i < r; i++ {
		for j := i + 1; j < r; j++ {
			worst = math.Max(worst, math.Abs(m.At(i, j)-m.At(j, i)))
		}
	}
	return worst
}
