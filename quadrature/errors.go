package quadrature

import "errors"

var (
	// ErrUnknownMethod indicates a method other than Trapezium or Simpson.
	ErrUnknownMethod = errors.New("quadrature: unknown integration method")

	// ErrInvalidPartitionCount indicates M < 1, or an even M for Simpson.
	ErrInvalidPartitionCount = errors.New("quadrature: invalid partition count")

	// ErrNilFunction is returned when the integrand is nil.
	ErrNilFunction = errors.New("quadrature: nil integrand")
)
