package optim

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// Adam implements the Adam (Adaptive Moment Estimation) optimizer.
//
// Update rule:
//
//	m_t = beta1 * m_{t-1} + (1-beta1) * gradient       // First moment
//	v_t = beta2 * v_{t-1} + (1-beta2) * gradient²      // Second moment
//	m_hat = m_t / (1 - beta1^t)                        // Bias correction
//	v_hat = v_t / (1 - beta2^t)                        // Bias correction
//	param = param - lr * m_hat / (sqrt(v_hat) + eps)  // Parameter update
//
// Reference: "Adam: A Method for Stochastic Optimization" (Kingma & Ba, 2014)
type Adam struct {
	*Base
	sources []ParamSource
	beta1   float64
	beta2   float64
	eps     float64
	t       int                       // Timestep for bias correction
	m       map[*mat.Dense]*mat.Dense // First moment estimates
	v       map[*mat.Dense]*mat.Dense // Second moment estimates
}

// AdamConfig holds configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over the given sources.
func NewAdam(sources []ParamSource, config AdamConfig) *Adam {
	if config.LR == 0 {
		config.LR = 0.001
	}
	if config.Betas[0] == 0 {
		config.Betas[0] = 0.9
	}
	if config.Betas[1] == 0 {
		config.Betas[1] = 0.999
	}
	if config.Eps == 0 {
		config.Eps = 1e-8
	}

	return &Adam{
		Base:    NewBase(Config{LR: config.LR}),
		sources: sources,
		beta1:   config.Betas[0],
		beta2:   config.Betas[1],
		eps:     config.Eps,
		m:       make(map[*mat.Dense]*mat.Dense),
		v:       make(map[*mat.Dense]*mat.Dense),
	}
}

// Step performs a single optimization step using Adam algorithm.
//
// The sources are validated first; on error no parameter is modified and the
// timestep does not advance.
func (a *Adam) Step() error {
	pairs, err := collect("Adam.Step", a.sources)
	if err != nil {
		return err
	}

	a.t++
	biasCorrection1 := 1.0 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1.0 - math.Pow(a.beta2, float64(a.t))

	for _, p := range pairs {
		rows, cols := p.param.Dims()
		m, ok := a.m[p.param]
		if !ok {
			m = mat.NewDense(rows, cols, nil)
			a.m[p.param] = m
		}
		v, ok := a.v[p.param]
		if !ok {
			v = mat.NewDense(rows, cols, nil)
			a.v[p.param] = v
		}

		for i := 0; i < rows; i++ {
			for j := 0; j < cols; j++ {
				g := p.grad.At(i, j)
				mi := a.beta1*m.At(i, j) + (1.0-a.beta1)*g
				vi := a.beta2*v.At(i, j) + (1.0-a.beta2)*g*g
				m.Set(i, j, mi)
				v.Set(i, j, vi)

				mHat := mi / biasCorrection1
				vHat := vi / biasCorrection2
				p.param.Set(i, j, p.param.At(i, j)-a.lr*mHat/(math.Sqrt(vHat)+a.eps))
			}
		}
	}
	return nil
}

// Timestep returns the number of completed steps.
func (a *Adam) Timestep() int {
	return a.t
}
