package derivative

import (
	"fmt"
	"slices"
)

// bankH2 holds the O(h²) centered formulas indexed by order-1.
var bankH2 = [4]Formula{
	{Order: 1, Accuracy: H2, Scale: 2, Stencil: []Point{
		{-1, -1}, {1, 1},
	}},
	{Order: 2, Accuracy: H2, Scale: 1, Stencil: []Point{
		{-1, 1}, {0, -2}, {1, 1},
	}},
	{Order: 3, Accuracy: H2, Scale: 2, Stencil: []Point{
		{-2, -1}, {-1, 2}, {1, -2}, {2, 1},
	}},
	{Order: 4, Accuracy: H2, Scale: 1, Stencil: []Point{
		{-2, 1}, {-1, -4}, {0, 6}, {1, -4}, {2, 1},
	}},
}

// bankH4 holds the O(h⁴) centered formulas indexed by order-1.
var bankH4 = [4]Formula{
	{Order: 1, Accuracy: H4, Scale: 12, Stencil: []Point{
		{-2, 1}, {-1, -8}, {1, 8}, {2, -1},
	}},
	{Order: 2, Accuracy: H4, Scale: 12, Stencil: []Point{
		{-2, -1}, {-1, 16}, {0, -30}, {1, 16}, {2, -1},
	}},
	{Order: 3, Accuracy: H4, Scale: 8, Stencil: []Point{
		{-3, 1}, {-2, -8}, {-1, 13}, {1, -13}, {2, 8}, {3, -1},
	}},
	{Order: 4, Accuracy: H4, Scale: 6, Stencil: []Point{
		{-3, -1}, {-2, 12}, {-1, -39}, {0, 56}, {1, -39}, {2, 12}, {3, -1},
	}},
}

// Lookup returns a copy of the formula for (order, acc).
//
// Errors: ErrInvalidFormula for acc ∉ {H2, H4}, then
// ErrInvalidDerivativeOrder for order ∉ 1..4.
func Lookup(order int, acc Accuracy) (Formula, error) {
	f, err := lookup(order, acc)
	if err != nil {
		return Formula{}, err
	}
	f.Stencil = slices.Clone(f.Stencil)

	return f, nil
}

// lookup shares the bank's stencil slice; callers must not modify it.
func lookup(order int, acc Accuracy) (Formula, error) {
	var bank *[4]Formula
	switch acc {
	case H2:
		bank = &bankH2
	case H4:
		bank = &bankH4
	default:
		return Formula{}, fmt.Errorf("%w: O(h^%d)", ErrInvalidFormula, int(acc))
	}
	if order < 1 || order > len(bank) {
		return Formula{}, fmt.Errorf("%w: order %d", ErrInvalidDerivativeOrder, order)
	}

	return bank[order-1], nil
}
