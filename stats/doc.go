// Package stats provides covariance estimators for three-component records.
//
// The horizontal components of a record are combined into the complex signal
// zx = x1 + i*x2 and correlated with themselves and with the real vertical
// signal v over a symmetric lag window [-maxTau, maxTau].
//
// # Covariances
//
// Estimate all three sequences at once:
//
//	cov, err := stats.Covariance(x1, x2, v, 16)
//	if err != nil {
//	    log.Fatal(err) // unequal lengths or maxTau >= len(v)
//	}
//
//	variance := cov.VerticalAt(0)
//	lagged := cov.HorizontalAt(-3) // == cmplx.Conj(cov.HorizontalAt(3))
//	cross := cov.CrossAt(2)
//
// Or directly from a record:
//
//	cov, err := stats.RecordCovariance(rec.Center(), 16)
//
// The estimator divides every lag by the full sample size N rather than
// N-|tau|, so the implied Toeplitz matrices are positive semi-definite.
//
// # One-sided Views
//
// Lags 0..maxTau of each sequence are available as copies:
//
//	cov.HorizontalLags() // zx against zx
//	cov.VerticalLags()   // v against v
//	cov.ForwardCross()   // zx leads v
//	cov.BackwardCross()  // v leads zx
package stats
