package derivative

import "errors"

// Sentinel errors. Call sites wrap them with the offending value via
// fmt.Errorf("%w: ...", ErrX); callers match with errors.Is.
var (
	// ErrInvalidPosition indicates the target index lies outside the samples.
	ErrInvalidPosition = errors.New("derivative: invalid position")

	// ErrInvalidFormula indicates an unsupported accuracy order.
	ErrInvalidFormula = errors.New("derivative: no formula for the given accuracy order")

	// ErrInvalidDerivativeOrder indicates a derivative order outside 1..4.
	ErrInvalidDerivativeOrder = errors.New("derivative: no implementation for derivatives greater than 4")

	// ErrMissingNeighbors indicates required stencil samples are absent for h.
	ErrMissingNeighbors = errors.New("derivative: required neighbors not defined")

	// ErrInvalidStep indicates a non-positive or non-finite step h.
	ErrInvalidStep = errors.New("derivative: step h must be > 0")
)
