package ops

import (
	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/tensor"
)

// BiasAdd adds a single-row bias parameter to every row of the input.
//
// Backward pass:
//   - dX = G
//   - db = sum of G over the batch dimension, shaped [1, features]
type BiasAdd struct{}

// NewBiasAdd creates a BiasAdd operation owning bias.
//
// The bias must have exactly one row; any other shape is rejected with a
// *tensor.ShapeMismatchError.
func NewBiasAdd(bias *mat.Dense) (*ParamOp, error) {
	rows, cols := bias.Dims()
	if rows != 1 {
		return nil, &tensor.ShapeMismatchError{
			Op:       "NewBiasAdd: bias",
			Expected: tensor.Shape{1, cols},
			Actual:   tensor.Shape{rows, cols},
		}
	}
	return NewParam("BiasAdd", bias, BiasAdd{}), nil
}

// Output computes X + b with b broadcast over rows.
func (BiasAdd) Output(input, bias *mat.Dense) (*mat.Dense, error) {
	rows, cols := input.Dims()
	_, bCols := bias.Dims()
	if cols != bCols {
		return nil, &tensor.ShapeMismatchError{
			Op:       "BiasAdd.Forward: input",
			Expected: tensor.Shape{rows, bCols},
			Actual:   tensor.Shape{rows, cols},
		}
	}

	var out mat.Dense
	out.Apply(func(_, j int, v float64) float64 {
		return v + bias.At(0, j)
	}, input)
	return &out, nil
}

// InputGrad passes the output gradient through, expanded to the input's shape.
func (BiasAdd) InputGrad(input, _, _, outputGrad *mat.Dense) *mat.Dense {
	var grad mat.Dense
	grad.MulElem(tensor.Ones(input.Dims()), outputGrad)
	return &grad
}

// ParamGrad sums the output gradient over the batch dimension.
func (BiasAdd) ParamGrad(_, _, outputGrad *mat.Dense) *mat.Dense {
	return tensor.ColSums(outputGrad)
}
