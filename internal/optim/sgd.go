package optim

import (
	"gonum.org/v1/gonum/mat"
)

// SGD implements gradient descent with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// Example:
//
//	optimizer := optim.NewSGD([]optim.ParamSource{layer1, layer2}, optim.SGDConfig{
//	    LR:       0.01,
//	    Momentum: 0.9,
//	})
type SGD struct {
	*Base
	sources    []ParamSource
	momentum   float64
	velocities map[*mat.Dense]*mat.Dense
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given sources.
func NewSGD(sources []ParamSource, config SGDConfig) *SGD {
	return &SGD{
		Base:       NewBase(Config{LR: config.LR}),
		sources:    sources,
		momentum:   config.Momentum,
		velocities: make(map[*mat.Dense]*mat.Dense),
	}
}

// Step performs a single optimization step, updating every parameter in place.
//
// The sources are validated first; on error no parameter is modified.
func (s *SGD) Step() error {
	pairs, err := collect("SGD.Step", s.sources)
	if err != nil {
		return err
	}

	for _, p := range pairs {
		if s.momentum == 0 {
			s.updateParameter(p.param, p.grad)
		} else {
			s.updateParameterWithMomentum(p.param, p.grad)
		}
	}
	return nil
}

// updateParameter performs param -= lr * grad.
func (s *SGD) updateParameter(param, grad *mat.Dense) {
	var update mat.Dense
	update.Scale(s.lr, grad)
	param.Sub(param, &update)
}

// updateParameterWithMomentum performs SGD update with momentum.
func (s *SGD) updateParameterWithMomentum(param, grad *mat.Dense) {
	rows, cols := param.Dims()
	velocity, exists := s.velocities[param]
	if !exists {
		velocity = mat.NewDense(rows, cols, nil)
		s.velocities[param] = velocity
	}

	// velocity = momentum * velocity + grad
	velocity.Scale(s.momentum, velocity)
	velocity.Add(velocity, grad)

	// param -= lr * velocity
	var update mat.Dense
	update.Scale(s.lr, velocity)
	param.Sub(param, &update)
}

// Momentum returns the momentum factor.
func (s *SGD) Momentum() float64 {
	return s.momentum
}
