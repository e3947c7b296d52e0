package nn

import (
	"math"
	"math/rand/v2"

	"gonum.org/v1/gonum/mat"

	"github.com/namdori61/DLFS/internal/tensor"
)

// Initializer creates a freshly initialized fanIn×fanOut weight matrix.
type Initializer func(fanIn, fanOut int, src *rand.Rand) *mat.Dense

// StandardNormal draws every weight from N(0, 1).
func StandardNormal(fanIn, fanOut int, src *rand.Rand) *mat.Dense {
	return tensor.Randn(fanIn, fanOut, src)
}

// Xavier (Glorot) initialization for weights.
//
// Initializes weights with values drawn from a uniform distribution:
// U(-sqrt(6/(fan_in + fan_out)), sqrt(6/(fan_in + fan_out)))
//
// This initialization helps maintain variance of activations across layers.
func Xavier(fanIn, fanOut int, src *rand.Rand) *mat.Dense {
	bound := math.Sqrt(6.0 / float64(fanIn+fanOut))

	data := make([]float64, fanIn*fanOut)
	for i := range data {
		data[i] = (src.Float64()*2.0 - 1.0) * bound
	}
	return mat.NewDense(fanIn, fanOut, data)
}
