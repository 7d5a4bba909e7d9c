package hvarma

import (
	"fmt"
	"math"

	"github.com/sartorproj/gohvarma/stats"
)

// Weights are the prediction-error weights of the objective. Mu weights the
// vertical equation, Nu the horizontal one.
type Weights struct {
	Mu float64
	Nu float64
}

func (w Weights) validate() error {
	if !isFiniteNonNegative(w.Mu) {
		return fmt.Errorf("%w: mu %v must be finite and non-negative", ErrInvalidArgument, w.Mu)
	}
	if !isFiniteNonNegative(w.Nu) {
		return fmt.Errorf("%w: nu %v must be finite and non-negative", ErrInvalidArgument, w.Nu)
	}
	return nil
}

// ResolveWeights replaces each zero field of requested by the inverse of the
// matching zero-lag variance: Mu = 1/cv(0) and Nu = 1/Re(zcx(0)). This makes
// the vertical and horizontal error terms commensurable. Non-zero fields are
// returned unchanged.
func ResolveWeights(cov *stats.CovarianceResult, requested Weights) (Weights, error) {
	if cov == nil {
		return Weights{}, fmt.Errorf("%w: nil covariances", ErrInvalidArgument)
	}
	if err := requested.validate(); err != nil {
		return Weights{}, err
	}

	resolved := requested
	if resolved.Mu == 0 {
		mu, err := inverseVariance(cov.VerticalAt(0))
		if err != nil {
			return Weights{}, fmt.Errorf("mu: %w", err)
		}
		resolved.Mu = mu
	}
	if resolved.Nu == 0 {
		nu, err := inverseVariance(real(cov.HorizontalAt(0)))
		if err != nil {
			return Weights{}, fmt.Errorf("nu: %w", err)
		}
		resolved.Nu = nu
	}
	return resolved, nil
}

func inverseVariance(variance float64) (float64, error) {
	if variance == 0 {
		return 0, fmt.Errorf("%w: zero-lag variance is zero", ErrUndefinedWeight)
	}
	w := 1 / variance
	if !isFiniteNonNegative(w) {
		return 0, fmt.Errorf("%w: 1/%v is not a usable weight", ErrUndefinedWeight, variance)
	}
	return w, nil
}

func isFiniteNonNegative(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0) && x >= 0
}
