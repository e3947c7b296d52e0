package nn

import (
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/mat"
)

// SoftmaxCrossEntropy computes cross-entropy between softmax(prediction) and
// one-hot (or any row-stochastic) targets, averaged over the batch.
//
// Mathematical Formulation:
//
//	loss = -sum(target * LogSoftmax(prediction)) / batch_size
//	grad = (Softmax(prediction) - target) / batch_size
//
// The prediction is expected to hold raw logits, e.g. from a Dense layer with
// a Linear activation. LogSoftmax uses the log-sum-exp trick, so large logits
// neither overflow nor underflow.
type SoftmaxCrossEntropy struct{}

// NewSoftmaxCrossEntropy creates a new softmax cross-entropy loss.
func NewSoftmaxCrossEntropy() *Loss {
	return NewLoss("SoftmaxCrossEntropy", SoftmaxCrossEntropy{})
}

// Output computes the batch-averaged cross-entropy.
func (SoftmaxCrossEntropy) Output(prediction, target *mat.Dense) float64 {
	rows, _ := prediction.Dims()
	var total float64
	for i := 0; i < rows; i++ {
		logits := prediction.RawRowView(i)
		lse := floats.LogSumExp(logits)
		for j, t := range target.RawRowView(i) {
			if t != 0 {
				total -= t * (logits[j] - lse)
			}
		}
	}
	return total / float64(rows)
}

// InputGrad computes (Softmax(prediction) - target) / batch_size.
func (SoftmaxCrossEntropy) InputGrad(prediction, target *mat.Dense) *mat.Dense {
	rows, cols := prediction.Dims()
	grad := mat.NewDense(rows, cols, nil)
	for i := 0; i < rows; i++ {
		logits := prediction.RawRowView(i)
		lse := floats.LogSumExp(logits)
		for j, logit := range logits {
			grad.Set(i, j, (math.Exp(logit-lse)-target.At(i, j))/float64(rows))
		}
	}
	return grad
}
