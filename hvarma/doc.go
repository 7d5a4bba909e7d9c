// Package hvarma assembles the normal equations of a joint horizontal/vertical
// ARMA model of three-component ground motion.
//
// The model predicts the vertical component v and the complex horizontal
// component zx = x1 + i*x2 from each other through order p filters: real
// vertical coefficients a_0..a_p (with a_0 fixed to 1) and complex horizontal
// coefficients b_0..b_p. The coefficients minimize a weighted sum of the two
// squared prediction errors, expressed through the lagged covariances
// computed by the stats package. Setting the gradient to zero yields a real
// linear system of 3p+2 equations.
//
// The package builds that system; solving it is left to the caller.
//
// # Basic Usage
//
// Assemble the system for a single record:
//
//	params := hvarma.Params{Order: 10, MaxTau: 64}
//	eq, err := hvarma.ComputeEquations(x1, x2, v, params.Size(), params)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	var coef mat.VecDense
//	if err := coef.SolveVec(eq.Matrix, eq.Indep); err != nil {
//	    log.Fatal(err)
//	}
//
// Zero weights select the inverse zero-lag variance of each component.
// The weights that were actually used are reported in eq.Weights.
//
// # Windowed Processing
//
// An Estimator splits long records into overlapping windows, removes the
// mean of each window and assembles one system per window:
//
//	cfg, err := hvarma.LoadConfigFile("params.txt")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	est, err := hvarma.NewEstimator(logger, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	systems, err := est.WindowEquations(record)
//
// # Sign Convention
//
// The Symmetric convention produces the exact Hessian of the objective,
// so Equations.Symmetric can hand it to a Cholesky solver. The Reference
// convention reproduces an older sign pattern whose matrix is not
// symmetric in general.
package hvarma
