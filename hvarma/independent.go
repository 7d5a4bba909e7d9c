package hvarma

import (
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gohvarma/stats"
)

// IndependentTerm builds the full right-hand side of the normal equations,
// with the same 3(order+1) layout as CoefficientMatrix. It is the negated
// contribution of the fixed unit coefficient a_0, moved across the equals
// sign; entry 0 is left at zero.
func IndependentTerm(cov *stats.CovarianceResult, order int, w Weights, conv SignConvention) (*mat.VecDense, error) {
	if err := checkSystem(cov, order, w, conv); err != nil {
		return nil, err
	}
	return independentTerm(cov, order, w, conv), nil
}

func independentTerm(cov *stats.CovarianceResult, p int, w Weights, conv SignConvention) *mat.VecDense {
	n := 3 * (p + 1)
	data := make([]float64, n)

	zcx, cv, zcxv := cov.Horizontal, cov.Vertical, cov.Cross
	mu, nu := w.Mu, w.Nu
	s := conv.imagSign()
	last := 2 * cov.MaxTau

	for i := 0; i <= p; i++ {
		ia, ib1, ib2 := i, p+i+1, 2*p+i+2
		for tau := p; tau <= last; tau++ {
			iti, itj := tau-i, tau
			crossHoriz := zcxv[iti] * cmplx.Conj(zcx[itj])

			if ia != 0 {
				data[ia] += -2 * (mu*real(zcxv[iti]*cmplx.Conj(zcxv[itj])) + nu*real(zcx[iti]*cmplx.Conj(zcx[itj])))
			}
			data[ib1] += 2 * (mu*cv[iti]*real(zcxv[itj]) + nu*real(crossHoriz))
			data[ib2] += 2 * (mu*cv[iti]*imag(zcxv[itj]) + s*nu*imag(crossHoriz))
		}
	}

	return mat.NewVecDense(n, data)
}
