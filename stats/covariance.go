// Package stats provides covariance estimators for three-component records.
package stats

import (
	"errors"
	"fmt"
	"math/cmplx"

	"gonum.org/v1/gonum/cmplxs"
	"gonum.org/v1/gonum/floats"

	"github.com/sartorproj/gohvarma/timeseries"
)

// ErrInvalidArgument is returned when signal lengths or the lag window are
// inconsistent with each other.
var ErrInvalidArgument = errors.New("stats: invalid argument")

// CovarianceResult holds lagged covariances for lags -MaxTau..MaxTau.
// Entry k of each slice corresponds to lag tau = k - MaxTau.
type CovarianceResult struct {
	MaxTau int
	N      int // Sample size used as the divisor

	Horizontal []complex128 // Autocovariance of zx = x1 + i*x2 (Hermitian)
	Vertical   []float64    // Autocovariance of v (even)
	Cross      []complex128 // Cross-covariance of zx against v
}

// Covariance estimates the horizontal autocovariance, vertical autocovariance
// and horizontal-vertical cross-covariance for lags in [-maxTau, maxTau].
//
// All sums are divided by the full sample size N (biased estimator):
//
//	Horizontal[tau] = 1/N sum_t zx[t+tau] * conj(zx[t])
//	Vertical[tau]   = 1/N sum_t v[t+tau] * v[t]
//	Cross[tau]      = 1/N sum_t zx[t+tau] * v[t]        (tau >= 0)
//	Cross[tau]      = 1/N sum_t zx[t] * v[t-tau]        (tau < 0)
//
// Negative lags of the autocovariances are filled by symmetry; the
// cross-covariance is summed independently for each sign of tau.
func Covariance(x1, x2, v []float64, maxTau int) (*CovarianceResult, error) {
	n := len(v)
	if len(x1) != n || len(x2) != n {
		return nil, fmt.Errorf("%w: component lengths x1=%d x2=%d v=%d", ErrInvalidArgument, len(x1), len(x2), n)
	}
	if n == 0 {
		return nil, fmt.Errorf("%w: empty signal", ErrInvalidArgument)
	}
	if maxTau < 0 || maxTau >= n {
		return nil, fmt.Errorf("%w: maxTau %d must be in [0, %d)", ErrInvalidArgument, maxTau, n)
	}

	zx := make([]complex128, n)
	vz := make([]complex128, n)
	for i := range zx {
		zx[i] = complex(x1[i], x2[i])
		vz[i] = complex(v[i], 0)
	}

	size := 2*maxTau + 1
	res := &CovarianceResult{
		MaxTau:     maxTau,
		N:          n,
		Horizontal: make([]complex128, size),
		Vertical:   make([]float64, size),
		Cross:      make([]complex128, size),
	}

	nf := float64(n)
	nc := complex(nf, 0)

	// cmplxs.Dot conjugates its first argument; vz is real so that is a no-op.
	for tau := 0; tau <= maxTau; tau++ {
		res.Cross[maxTau+tau] = cmplxs.Dot(vz[:n-tau], zx[tau:]) / nc
		res.Vertical[maxTau+tau] = floats.Dot(v[tau:], v[:n-tau]) / nf
		res.Horizontal[maxTau+tau] = cmplxs.Dot(zx[:n-tau], zx[tau:]) / nc
	}
	for tau := 1; tau <= maxTau; tau++ {
		res.Cross[maxTau-tau] = cmplxs.Dot(vz[tau:], zx[:n-tau]) / nc
		res.Vertical[maxTau-tau] = res.Vertical[maxTau+tau]
		res.Horizontal[maxTau-tau] = cmplx.Conj(res.Horizontal[maxTau+tau])
	}

	return res, nil
}

// RecordCovariance estimates the covariances of a record.
func RecordCovariance(r *timeseries.Record, maxTau int) (*CovarianceResult, error) {
	if r == nil {
		return nil, fmt.Errorf("%w: nil record", ErrInvalidArgument)
	}
	return Covariance(r.X1, r.X2, r.V, maxTau)
}

// Len returns the number of stored lags, 2*MaxTau+1.
func (c *CovarianceResult) Len() int {
	return 2*c.MaxTau + 1
}

// HorizontalAt returns the horizontal autocovariance at lag tau.
func (c *CovarianceResult) HorizontalAt(tau int) complex128 {
	return c.Horizontal[c.MaxTau+tau]
}

// VerticalAt returns the vertical autocovariance at lag tau.
func (c *CovarianceResult) VerticalAt(tau int) float64 {
	return c.Vertical[c.MaxTau+tau]
}

// CrossAt returns the horizontal-vertical cross-covariance at lag tau.
func (c *CovarianceResult) CrossAt(tau int) complex128 {
	return c.Cross[c.MaxTau+tau]
}

// HorizontalLags returns a copy of the horizontal autocovariance for lags 0..MaxTau.
func (c *CovarianceResult) HorizontalLags() []complex128 {
	out := make([]complex128, c.MaxTau+1)
	copy(out, c.Horizontal[c.MaxTau:])
	return out
}

// VerticalLags returns a copy of the vertical autocovariance for lags 0..MaxTau.
func (c *CovarianceResult) VerticalLags() []float64 {
	out := make([]float64, c.MaxTau+1)
	copy(out, c.Vertical[c.MaxTau:])
	return out
}

// ForwardCross returns the cross-covariance with the horizontal signal
// leading, Cross(tau) for tau = 0..MaxTau.
func (c *CovarianceResult) ForwardCross() []complex128 {
	out := make([]complex128, c.MaxTau+1)
	copy(out, c.Cross[c.MaxTau:])
	return out
}

// BackwardCross returns the cross-covariance with the vertical signal
// leading, Cross(-tau) for tau = 0..MaxTau.
func (c *CovarianceResult) BackwardCross() []complex128 {
	out := make([]complex128, c.MaxTau+1)
	for tau := range out {
		out[tau] = c.Cross[c.MaxTau-tau]
	}
	return out
}
