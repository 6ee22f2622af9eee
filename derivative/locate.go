package derivative

import (
	"fmt"

	"github.com/katalvlaran/lvnum/numeric"
)

// Locate builds the Stencil Window for X[position].
//
// Algorithm:
//  1. Center slot ← Y[position]; target ← X[position].
//  2. Scan i = position−1 … 0 with expected ← h. When |target − X[i]|
//     equals expected (ops.Equal), store Y[i] in the next negative slot
//     (−1, then −2, then −3) and advance expected by h. A sample that does
//     not match is skipped. Stop after 3 matches or at index 0.
//  3. Mirror step 2 for i = position+1 … len−1 into slots +1..+3.
//
// The side (negative/positive slot) is decided by index order, not by the
// sign of X[i] − target.
//
// A NaN or infinite abscissa met by the scan, or a non-finite ordinate
// stored in the window, aborts the call.
//
// Errors: numeric.ErrNilVector / numeric.ErrLengthMismatch (wrapped),
// ErrInvalidPosition, ErrInvalidStep, numeric.ErrNonFinite (wrapped).
//
// Complexity: O(len(X)) time, O(1) extra space.
func (e *Engine[T]) Locate(x, y numeric.Vector[T], position int, h T) (Window[T], error) {
	var w Window[T]
	if err := numeric.ValidatePair(x, y); err != nil {
		return w, fmt.Errorf("derivative: %w", err)
	}
	n := y.Len()
	if position < 0 || position >= n {
		return w, fmt.Errorf("%w: %d (samples: %d)", ErrInvalidPosition, position, n)
	}
	if err := e.checkStep(h); err != nil {
		return w, err
	}

	target := x.At(position)
	if err := e.checkFinite("X", position, target); err != nil {
		return w, err
	}
	if err := e.place(&w, 0, y, position); err != nil {
		return w, err
	}

	expected, slot := h, 1
	for i := position - 1; i >= 0 && slot <= Reach; i-- {
		match, err := e.matches(x, i, target, expected)
		if err != nil {
			return w, err
		}
		if match {
			if err = e.place(&w, -slot, y, i); err != nil {
				return w, err
			}
			slot++
			expected = e.ops.Add(expected, h)
		}
	}

	expected, slot = h, 1
	for i := position + 1; i < n && slot <= Reach; i++ {
		match, err := e.matches(x, i, target, expected)
		if err != nil {
			return w, err
		}
		if match {
			if err = e.place(&w, slot, y, i); err != nil {
				return w, err
			}
			slot++
			expected = e.ops.Add(expected, h)
		}
	}

	return w, nil
}

// matches reports whether |target − X[i]| equals expected.
func (e *Engine[T]) matches(x numeric.Vector[T], i int, target, expected T) (bool, error) {
	xi := x.At(i)
	if err := e.checkFinite("X", i, xi); err != nil {
		return false, err
	}

	return e.ops.Equal(e.ops.Abs(e.ops.Sub(target, xi)), expected), nil
}

// place stores Y[i] at offset.
func (e *Engine[T]) place(w *Window[T], offset int, y numeric.Vector[T], i int) error {
	yi := y.At(i)
	if err := e.checkFinite("Y", i, yi); err != nil {
		return err
	}
	w.set(offset, yi)

	return nil
}

// checkStep requires a finite h > 0.
func (e *Engine[T]) checkStep(h T) error {
	if e.ops.Sign(h) <= 0 || !e.ops.Finite(h) {
		return fmt.Errorf("%w: h = %s", ErrInvalidStep, e.ops.String(h))
	}

	return nil
}

func (e *Engine[T]) checkFinite(name string, i int, v T) error {
	if e.ops.Finite(v) {
		return nil
	}

	return fmt.Errorf("derivative: %w: %s[%d] = %s", numeric.ErrNonFinite, name, i, e.ops.String(v))
}
