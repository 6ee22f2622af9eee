// SPDX-License-Identifier: MIT

package numeric

import "errors"

var (
	// ErrNilVector is returned when a required Vector argument is nil.
	ErrNilVector = errors.New("numeric: nil vector")

	// ErrLengthMismatch indicates two paired sequences (X and Y) differ in length.
	ErrLengthMismatch = errors.New("numeric: length mismatch")

	// ErrNonFinite indicates a NaN or infinite value where a finite one is required.
	ErrNonFinite = errors.New("numeric: non-finite value")
)
