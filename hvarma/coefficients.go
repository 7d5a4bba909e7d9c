package hvarma

import (
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/mat"

	"github.com/sartorproj/gohvarma/stats"
)

// CoefficientMatrix builds the full 3(order+1) square coefficient matrix of
// the normal equations, before the leading vertical coefficient is fixed.
//
// Unknowns are laid out in three blocks of order+1 entries: the vertical
// coefficients a (block A), then the real and imaginary parts of the
// horizontal coefficients b (blocks B1 and B2). Row and column 0 of block A
// belong to the gauge-fixed coefficient and are left at zero.
//
// Weights are used as given; see ResolveWeights for automatic selection.
func CoefficientMatrix(cov *stats.CovarianceResult, order int, w Weights, conv SignConvention) (*mat.Dense, error) {
	if err := checkSystem(cov, order, w, conv); err != nil {
		return nil, err
	}
	return coefficientMatrix(cov, order, w, conv), nil
}

// coefficientMatrix accumulates over tau = order..2*MaxTau, where the
// storage indices tau-i and tau-j stay inside [0, 2*MaxTau].
func coefficientMatrix(cov *stats.CovarianceResult, p int, w Weights, conv SignConvention) *mat.Dense {
	n := 3 * (p + 1)
	data := make([]float64, n*n)
	add := func(r, c int, x float64) {
		data[r*n+c] += x
	}

	zcx, cv, zcxv := cov.Horizontal, cov.Vertical, cov.Cross
	mu, nu := w.Mu, w.Nu
	s := conv.imagSign()
	last := 2 * cov.MaxTau

	for i := 0; i <= p; i++ {
		ia, ib1, ib2 := i, p+i+1, 2*p+i+2
		for j := 0; j <= p; j++ {
			ja, jb1, jb2 := j, p+j+1, 2*p+j+2
			for tau := p; tau <= last; tau++ {
				iti, itj := tau-i, tau-j

				crossCross := zcxv[iti] * cmplx.Conj(zcxv[itj])
				horizCross := zcx[iti] * cmplx.Conj(zcxv[itj])
				crossHoriz := zcxv[iti] * cmplx.Conj(zcx[itj])
				vv := cv[iti] * cv[itj]

				// Vertical coefficient rows
				if ia != 0 {
					if ja != 0 {
						add(ia, ja, 2*(mu*real(crossCross)+nu*real(zcx[iti]*cmplx.Conj(zcx[itj]))))
					}
					add(ia, jb1, -2*(mu*real(zcxv[iti])*cv[itj]+nu*real(horizCross)))
					add(ia, jb2, -2*(mu*imag(zcxv[iti])*cv[itj]+nu*imag(horizCross)))
				}

				// Real horizontal coefficient rows
				if ja != 0 {
					add(ib1, ja, -2*(mu*cv[iti]*real(zcxv[itj])+nu*real(crossHoriz)))
				}
				add(ib1, jb1, 2*(mu*vv+nu*real(crossCross)))
				add(ib1, jb2, -2*s*nu*imag(crossCross))

				// Imaginary horizontal coefficient rows
				if ja != 0 {
					add(ib2, ja, -2*(mu*cv[iti]*imag(zcxv[itj])+s*nu*imag(crossHoriz)))
				}
				add(ib2, jb1, -2*nu*imag(crossCross))
				add(ib2, jb2, 2*(mu*vv+nu*real(crossCross)))
			}
		}
	}

	return mat.NewDense(n, n, data)
}

// checkSystem validates the inputs shared by the matrix and vector builders.
func checkSystem(cov *stats.CovarianceResult, order int, w Weights, conv SignConvention) error {
	if cov == nil {
		return fmt.Errorf("%w: nil covariances", ErrInvalidArgument)
	}
	if cov.MaxTau < 0 {
		return fmt.Errorf("%w: maxTau %d must not be negative", ErrInvalidArgument, cov.MaxTau)
	}
	size := cov.Len()
	if len(cov.Horizontal) != size || len(cov.Vertical) != size || len(cov.Cross) != size {
		return fmt.Errorf("%w: covariance sequences must have length %d", ErrInvalidArgument, size)
	}
	if order < 0 || order > cov.MaxTau {
		return fmt.Errorf("%w: order %d must be in [0, %d]", ErrInvalidArgument, order, cov.MaxTau)
	}
	if err := w.validate(); err != nil {
		return err
	}
	return conv.validate()
}
