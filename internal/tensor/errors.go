package tensor

import (
	"fmt"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/mat"
)

var (
	// ErrNotImplemented is returned when a variant hook (kernel, layer
	// builder, optimizer step) has no concrete implementation.
	ErrNotImplemented = errors.New("not implemented")

	// ErrBackwardBeforeForward is returned when Backward is called on an
	// instance that has not completed a Forward call.
	ErrBackwardBeforeForward = errors.New("backward called before forward")
)

// ShapeMismatchError reports two tensors that were required to share a shape.
type ShapeMismatchError struct {
	Op       string // Where the check failed, e.g. "WeightMultiply.Backward: input grad"
	Expected Shape
	Actual   Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: shape mismatch: expected %v, got %v", e.Op, e.Expected, e.Actual)
}

// CheckSameShape returns a *ShapeMismatchError if want and got differ in shape.
func CheckSameShape(op string, want, got mat.Matrix) error {
	return CheckShape(op, ShapeOf(want), ShapeOf(got))
}

// CheckShape returns a *ShapeMismatchError if the two shapes differ.
func CheckShape(op string, want, got Shape) error {
	if want == nil || !want.Equal(got) {
		return &ShapeMismatchError{Op: op, Expected: want.Clone(), Actual: got.Clone()}
	}
	return nil
}

// IsShapeMismatch reports whether err (or anything it wraps) is a
// *ShapeMismatchError, and returns it.
func IsShapeMismatch(err error) (*ShapeMismatchError, bool) {
	var sm *ShapeMismatchError
	if errors.As(err, &sm) {
		return sm, true
	}
	return nil, false
}
