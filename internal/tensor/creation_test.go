package tensor

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func TestCreation(t *testing.T) {
	z := Zeros(2, 2)
	assert.True(t, mat.Equal(z, mat.NewDense(2, 2, []float64{0, 0, 0, 0})))

	o := Ones(1, 3)
	assert.True(t, mat.Equal(o, mat.NewDense(1, 3, []float64{1, 1, 1})))

	f := Full(2, 1, 2.5)
	assert.True(t, mat.Equal(f, mat.NewDense(2, 1, []float64{2.5, 2.5})))
}

func TestFromSlice(t *testing.T) {
	m, err := FromSlice([]float64{1, 2, 3, 4, 5, 6}, Shape{2, 3})
	require.NoError(t, err)
	assert.Equal(t, 6.0, m.At(1, 2))

	_, err = FromSlice([]float64{1, 2, 3}, Shape{2, 2})
	assert.Error(t, err)

	_, err = FromSlice([]float64{1, 2}, Shape{2})
	assert.Error(t, err)

	_, err = FromSlice(nil, Shape{0, 2})
	assert.Error(t, err)
}

func TestRandn_Seeded(t *testing.T) {
	a := Randn(3, 4, NewSource(7))
	b := Randn(3, 4, NewSource(7))
	c := Randn(3, 4, NewSource(8))

	assert.True(t, mat.Equal(a, b), "same seed must give the same values")
	assert.False(t, mat.Equal(a, c))
}

func TestColSums(t *testing.T) {
	m := mat.NewDense(3, 2, []float64{
		1, 2,
		3, 4,
		5, 6,
	})

	sums := ColSums(m)
	assert.Equal(t, Shape{1, 2}, ShapeOf(sums))
	assert.True(t, mat.Equal(sums, mat.NewDense(1, 2, []float64{9, 12})))
}

func TestClone(t *testing.T) {
	m := mat.NewDense(1, 2, []float64{1, 2})
	c := Clone(m)
	c.Set(0, 0, 5)
	assert.Equal(t, 1.0, m.At(0, 0))
}
