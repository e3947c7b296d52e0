package tensor

import (
	"math/rand/v2"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

// Zeros creates a rows×cols matrix filled with zeros.
func Zeros(rows, cols int) *mat.Dense {
	return mat.NewDense(rows, cols, nil)
}

// Ones creates a rows×cols matrix filled with ones.
func Ones(rows, cols int) *mat.Dense {
	return Full(rows, cols, 1)
}

// Full creates a rows×cols matrix filled with value.
func Full(rows, cols int, value float64) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = value
	}
	return mat.NewDense(rows, cols, data)
}

// FromSlice creates a matrix from row-major data.
//
// The slice is used as backing storage, not copied.
//
// Example:
//
//	x, err := tensor.FromSlice([]float64{1, 2, 3, 4}, tensor.Shape{2, 2})
func FromSlice(data []float64, shape Shape) (*mat.Dense, error) {
	if len(shape) != 2 {
		return nil, errors.Errorf("FromSlice: expected 2D shape [rows, cols], got %v", shape)
	}
	if err := shape.Validate(); err != nil {
		return nil, err
	}
	if len(data) != shape.NumElements() {
		return nil, errors.Errorf("FromSlice: data length %d does not match shape %v (%d elements)",
			len(data), shape, shape.NumElements())
	}
	return mat.NewDense(shape[0], shape[1], data), nil
}

// NewSource returns a random source for parameter initialization.
//
// A zero seed yields a source seeded from the runtime's global generator, so
// every call differs. Any other seed is deterministic across runs.
func NewSource(seed uint64) *rand.Rand {
	if seed == 0 {
		//nolint:gosec // G404: weight initialization is not security-critical
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	//nolint:gosec // G404: weight initialization is not security-critical
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Randn creates a rows×cols matrix with values drawn from N(0, 1).
func Randn(rows, cols int, src *rand.Rand) *mat.Dense {
	data := make([]float64, rows*cols)
	for i := range data {
		data[i] = src.NormFloat64()
	}
	return mat.NewDense(rows, cols, data)
}

// Clone returns a deep copy of m.
func Clone(m mat.Matrix) *mat.Dense {
	return mat.DenseCopyOf(m)
}

// ColSums sums m over its rows, returning a 1×cols matrix.
func ColSums(m mat.Matrix) *mat.Dense {
	rows, cols := m.Dims()
	out := mat.NewDense(1, cols, nil)
	for j := 0; j < cols; j++ {
		var sum float64
		for i := 0; i < rows; i++ {
			sum += m.At(i, j)
		}
		out.Set(0, j, sum)
	}
	return out
}
