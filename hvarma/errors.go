package hvarma

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidArgument is returned when inputs violate a precondition of the
	// assembly: unequal signal lengths, maxTau >= signal length, order > maxTau,
	// negative or non-finite weights, or an unknown sign convention.
	ErrInvalidArgument = errors.New("hvarma: invalid argument")

	// ErrSizeMismatch is returned when the declared system size is not 3*order+2.
	// It matches ErrInvalidArgument under errors.Is.
	ErrSizeMismatch = fmt.Errorf("%w: system size must be 3*order+2", ErrInvalidArgument)

	// ErrUndefinedWeight is returned when an automatic prediction-error weight
	// is requested but the corresponding zero-lag variance is zero, or its
	// inverse is not finite.
	ErrUndefinedWeight = errors.New("hvarma: undefined prediction-error weight")

	// ErrAsymmetric is returned when a symmetric view is requested for a
	// coefficient matrix that is not symmetric within the given tolerance.
	ErrAsymmetric = errors.New("hvarma: coefficient matrix is not symmetric")

	// ErrInvalidConfig is returned for malformed parameter files and for
	// configurations that fail validation.
	ErrInvalidConfig = errors.New("hvarma: invalid configuration")
)
