package hvarma

import (
	"fmt"

	"github.com/sartorproj/gohvarma/stats"
)

// Params are the model parameters of a single assembly.
type Params struct {
	Order      int            // Model order p (lags per component)
	MaxTau     int            // Maximum covariance lag
	Weights    Weights        // Zero fields select inverse-variance weights
	Convention SignConvention // Sign convention of the imaginary cross terms
}

// Size returns the number of free unknowns, 3*Order+2.
func (p Params) Size() int {
	return 3*p.Order + 2
}

func (p Params) validate() error {
	if p.MaxTau < 0 {
		return fmt.Errorf("%w: maxTau %d must not be negative", ErrInvalidArgument, p.MaxTau)
	}
	if p.Order < 0 || p.Order > p.MaxTau {
		return fmt.Errorf("%w: order %d must be in [0, maxTau=%d]", ErrInvalidArgument, p.Order, p.MaxTau)
	}
	if err := p.Weights.validate(); err != nil {
		return err
	}
	return p.Convention.validate()
}

// ComputeEquations estimates the covariances of x1 + i*x2 and v over their
// full length, resolves automatic weights and assembles the gauge-fixed
// normal equations. size must equal 3*params.Order+2.
//
// The inputs are not modified. The returned matrix and vector are freshly
// allocated and owned by the caller.
func ComputeEquations(x1, x2, v []float64, size int, params Params) (*Equations, error) {
	n := len(v)
	if len(x1) != n || len(x2) != n {
		return nil, fmt.Errorf("%w: signal lengths x1=%d x2=%d v=%d", ErrInvalidArgument, len(x1), len(x2), n)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty signals", ErrInvalidArgument)
	}
	if err := params.validate(); err != nil {
		return nil, err
	}
	if params.MaxTau >= n {
		return nil, fmt.Errorf("%w: maxTau %d must be less than signal length %d", ErrInvalidArgument, params.MaxTau, n)
	}
	if size != params.Size() {
		return nil, fmt.Errorf("%w: got %d, order %d needs %d", ErrSizeMismatch, size, params.Order, params.Size())
	}

	cov, err := stats.Covariance(x1, x2, v, params.MaxTau)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidArgument, err)
	}

	weights, err := ResolveWeights(cov, params.Weights)
	if err != nil {
		return nil, err
	}

	return GradientMatrix(cov, params.Order, weights, params.Convention)
}
