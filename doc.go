// Package gohvarma estimates joint horizontal/vertical ARMA models of
// three-component ground motion.
//
// The two horizontal components are combined into a complex signal and
// predicted jointly with the vertical component. The model coefficients
// minimize a weighted prediction error written in terms of lagged
// covariances, which leads to a real linear system. This module assembles
// that system.
//
// # Features
//
//   - Three-component records with centering, windowing and CSV loading
//   - Horizontal, vertical and cross covariance estimation over a lag window
//   - Normal-equation assembly with automatic inverse-variance weights
//   - Parameter files and a logging windowed Estimator
//
// # Quick Start
//
// Assemble and solve the equations for a record:
//
//	rec, _ := timeseries.LoadCSV("trace.csv", nil)
//	c := rec.Center()
//	params := hvarma.Params{Order: 10, MaxTau: 64}
//	eq, _ := hvarma.ComputeEquations(c.X1, c.X2, c.V, params.Size(), params)
//
//	var coef mat.VecDense
//	coef.SolveVec(eq.Matrix, eq.Indep)
//
// Process a long record window by window:
//
//	est, _ := hvarma.NewEstimator(logger, hvarma.DefaultConfig())
//	systems, _ := est.WindowEquations(rec)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - hvarma: Normal-equation assembly, configuration and the Estimator
//   - stats: Lagged covariance estimation
//   - timeseries: Three-component records and utilities
package gohvarma
