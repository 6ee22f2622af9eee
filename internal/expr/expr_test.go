package expr_test

import (
	"math"
	"sync"
	"testing"

	"github.com/katalvlaran/lvnum/internal/expr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompile_Eval(t *testing.T) {
	tests := []struct {
		src  string
		x    float64
		want float64
	}{
		{"2 + sin(2*sqrt(x))", 1, 2 + math.Sin(2)},
		{"Math.cos(x)", 0.8, math.Cos(0.8)},
		{"x * 2", 3, 6},
		{"pow(x, 3) - 2*x", 2, 4},
		{"PI", 0, math.Pi},
	}
	for _, tc := range tests {
		t.Run(tc.src, func(t *testing.T) {
			e, err := expr.Compile(tc.src)
			require.NoError(t, err)
			got, err := e.Eval(tc.x)
			require.NoError(t, err)
			assert.InDelta(t, tc.want, got, 1e-15)
		})
	}
}

func TestCompile_Errors(t *testing.T) {
	for _, src := range []string{"", "   ", "2 +", "x +* 2"} {
		_, err := expr.Compile(src)
		assert.ErrorIs(t, err, expr.ErrCompile, "%q", src)
	}
}

func TestEval_NotNumeric(t *testing.T) {
	for _, src := range []string{"'a'", "x > 1", "sqrt(-x)", "1 / (x - 1)"} {
		e, err := expr.Compile(src)
		require.NoError(t, err)
		_, err = e.Eval(1)
		assert.ErrorIs(t, err, expr.ErrNotNumeric, "%q", src)
	}

	e, err := expr.Compile("missing + x")
	require.NoError(t, err)
	_, err = e.Eval(1)
	assert.Error(t, err)
	assert.NotErrorIs(t, err, expr.ErrNotNumeric)
}

func TestFunc(t *testing.T) {
	e, err := expr.Compile("sqrt(x)")
	require.NoError(t, err)
	f, check := e.Func()

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Equal(t, 2.0, f(4))
		}()
	}
	wg.Wait()
	require.NoError(t, check())

	assert.Equal(t, 0.0, f(-1))
	assert.ErrorIs(t, check(), expr.ErrNotNumeric)
	assert.Equal(t, "sqrt(x)", e.String())
}
