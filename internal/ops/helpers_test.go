package ops_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/ops"
)

// weightedSum returns sum(op(x) * g), whose gradient with respect to x is
// exactly what op.Backward(g) must return.
func weightedSum(t *testing.T, op ops.Operation, x, g *mat.Dense) float64 {
	t.Helper()
	out, err := op.Forward(x)
	require.NoError(t, err)

	var prod mat.Dense
	prod.MulElem(out, g)
	return mat.Sum(&prod)
}

// numericGrad estimates d sum(op(x) * g) / d target by central differences,
// where target is x itself or the operation's parameter.
func numericGrad(t *testing.T, op ops.Operation, x, g, target *mat.Dense) *mat.Dense {
	t.Helper()
	rows, cols := target.Dims()
	raw := target.RawMatrix()
	original := append([]float64(nil), raw.Data...)

	f := func(v []float64) float64 {
		copy(raw.Data, v)
		return weightedSum(t, op, x, g)
	}
	grad := fd.Gradient(nil, f, original, &fd.Settings{Formula: fd.Central, Step: 1e-6})

	copy(raw.Data, original)
	return mat.NewDense(rows, cols, grad)
}

func assertMatrixInDelta(t *testing.T, want, got mat.Matrix, delta float64) {
	t.Helper()
	wr, wc := want.Dims()
	gr, gc := got.Dims()
	require.Equal(t, []int{wr, wc}, []int{gr, gc}, "shape")
	for i := 0; i < wr; i++ {
		for j := 0; j < wc; j++ {
			assert.InDelta(t, want.At(i, j), got.At(i, j), delta, "element (%d, %d)", i, j)
		}
	}
}
