package hvarma

import (
	"fmt"
	"strings"
)

// SignConvention selects the sign of the nu-weighted imaginary cross terms
// that couple the imaginary horizontal coefficients to the rest of the system.
type SignConvention int

const (
	// Symmetric assembles the exact gradient of the weighted objective. The
	// coefficient matrix is its Hessian and is symmetric.
	Symmetric SignConvention = iota

	// Reference uses the legacy sign pattern, for comparison with previously
	// computed systems: the B1xB2 block, the nu part of the B2xA block and
	// the nu part of the B2 independent term carry the opposite sign. The
	// resulting matrix is not symmetric when the cross-covariance has a
	// non-trivial phase.
	Reference
)

// String returns the configuration name of the convention.
func (c SignConvention) String() string {
	switch c {
	case Symmetric:
		return "symmetric"
	case Reference:
		return "reference"
	default:
		return fmt.Sprintf("SignConvention(%d)", int(c))
	}
}

// ParseSignConvention parses "symmetric" or "reference" (case-insensitive).
func ParseSignConvention(s string) (SignConvention, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "symmetric":
		return Symmetric, nil
	case "reference":
		return Reference, nil
	default:
		return 0, fmt.Errorf("%w: unknown sign convention %q", ErrInvalidArgument, s)
	}
}

func (c SignConvention) validate() error {
	if c != Symmetric && c != Reference {
		return fmt.Errorf("%w: unknown sign convention %d", ErrInvalidArgument, int(c))
	}
	return nil
}

// imagSign is the factor applied to the convention-dependent terms.
func (c SignConvention) imagSign() float64 {
	if c == Reference {
		return 1
	}
	return -1
}
