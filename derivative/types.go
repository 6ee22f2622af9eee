package derivative

import (
	"fmt"
	"strconv"
	"strings"
)

// Accuracy selects the truncation order of the centered-difference formula.
type Accuracy int

const (
	// H2 selects the O(h²) formulas (3- and 5-point stencils).
	H2 Accuracy = 2

	// H4 selects the O(h⁴) formulas (5- and 7-point stencils).
	H4 Accuracy = 4
)

// String renders the accuracy as "O(h^n)".
func (a Accuracy) String() string { return "O(h^" + strconv.Itoa(int(a)) + ")" }

// Reach is the maximum |offset| (in units of h) a stencil may use.
const Reach = 3

// WindowSize is the number of slots in a Window: offsets −Reach..+Reach.
const WindowSize = 2*Reach + 1

// Slot is one tagged optional value of a Window. Present distinguishes a
// sample that exists (possibly 0) from a hole.
type Slot[T any] struct {
	Value   T
	Present bool
}

// Window holds y at offsets −3h..+3h around the target sample.
// Index i of the array stores offset i−Reach. The center slot is always
// present once built by Locate.
type Window[T any] [WindowSize]Slot[T]

// At returns the value stored at offset (−3..+3) and whether it is present.
// Offsets outside the window report absent.
func (w *Window[T]) At(offset int) (T, bool) {
	if offset < -Reach || offset > Reach {
		var zero T

		return zero, false
	}
	s := w[offset+Reach]

	return s.Value, s.Present
}

// Has reports whether every listed offset is present.
func (w *Window[T]) Has(offsets ...int) bool {
	return len(w.Missing(offsets...)) == 0
}

// Missing returns the listed offsets that are absent, in argument order.
func (w *Window[T]) Missing(offsets ...int) []int {
	var missing []int
	for _, off := range offsets {
		if _, ok := w.At(off); !ok {
			missing = append(missing, off)
		}
	}

	return missing
}

// Count returns the number of present slots (center included).
func (w *Window[T]) Count() int {
	n := 0
	for _, s := range w {
		if s.Present {
			n++
		}
	}

	return n
}

func (w *Window[T]) set(offset int, v T) {
	w[offset+Reach] = Slot[T]{Value: v, Present: true}
}

// Point is one stencil location: the sample at Offset·h weighted by Coeff.
type Point struct {
	Offset int
	Coeff  int
}

// Formula is a centered finite-difference formula
//
//	f⁽ᵏ⁾(x) ≈ Σ Coeff_i · f(x + Offset_i·h) / (Scale · h^Order).
type Formula struct {
	Order    int
	Accuracy Accuracy
	Stencil  []Point
	Scale    int
}

// Required returns the non-center offsets the formula reads, ascending.
func (f Formula) Required() []int {
	req := make([]int, 0, len(f.Stencil))
	for _, p := range f.Stencil {
		if p.Offset != 0 {
			req = append(req, p.Offset)
		}
	}

	return req
}

// String renders the formula as e.g. "(-1·f(-1h) + 1·f(+1h)) / (2·h^1)".
func (f Formula) String() string {
	var sb strings.Builder
	sb.WriteByte('(')
	for i, p := range f.Stencil {
		if i > 0 {
			sb.WriteString(" + ")
		}
		fmt.Fprintf(&sb, "%d·f(%+dh)", p.Coeff, p.Offset)
	}
	fmt.Fprintf(&sb, ") / (%d·h^%d)", f.Scale, f.Order)

	return sb.String()
}

// Result is the outcome for one index of DerivateAll.
type Result[T any] struct {
	Position int
	Value    T
	Err      error
}
