package nn_test

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/nn"
	"github.com/namdori61/DLFS/tensor"
)

func ExampleNewDense() {
	layer := nn.NewDense(3, nn.DenseConfig{Seed: 1})

	out, err := layer.Forward(tensor.Ones(4, 5))
	if err != nil {
		panic(err)
	}

	fmt.Println(tensor.ShapeOf(out))
	for _, p := range layer.Params() {
		fmt.Println(tensor.ShapeOf(p))
	}

	_, err = layer.Forward(tensor.Ones(4, 6))
	if sm, ok := tensor.IsShapeMismatch(err); ok {
		fmt.Println("expected", sm.Expected, "got", sm.Actual)
	}
	// Output:
	// (4, 3)
	// (5, 3)
	// (1, 3)
	// expected (4, 5) got (4, 6)
}

func ExampleNewMeanSquaredError() {
	loss := nn.NewMeanSquaredError()

	value, err := loss.Forward(mat.NewDense(1, 1, []float64{3}), mat.NewDense(1, 1, []float64{1}))
	if err != nil {
		panic(err)
	}
	grad, err := loss.Backward()
	if err != nil {
		panic(err)
	}

	fmt.Println(value, grad.At(0, 0))
	// Output: 4 4
}
