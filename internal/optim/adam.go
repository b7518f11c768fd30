package optim

import (
	"math"

	"github.com/born-ml/scalarad/internal/autodiff"
	"github.com/pkg/errors"
)

// Adam implements the Adam optimizer with bias correction.
//
// For each parameter, with g its gradient at step t:
//
//	m = beta1*m + (1-beta1)*g
//	v = beta2*v + (1-beta2)*g²
//	param -= lr * (m/(1-beta1^t)) / (sqrt(v/(1-beta2^t)) + eps)
type Adam struct {
	params []*autodiff.Var
	lr     float64
	beta1  float64
	beta2  float64
	eps    float64
	t      int                       // Timestep for bias correction
	m      map[*autodiff.Var]float64 // First moment estimates
	v      map[*autodiff.Var]float64 // Second moment estimates
}

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig struct {
	LR    float64    // Learning rate (default: 0.001)
	Betas [2]float64 // Coefficients for computing running averages (default: [0.9, 0.999])
	Eps   float64    // Term for numerical stability (default: 1e-8)
}

// NewAdam creates a new Adam optimizer over the given leaf Vars.
func NewAdam(params []*autodiff.Var, config AdamConfig) (*Adam, error) {
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
	if config.LR < 0 {
		return nil, errors.Errorf("invalid Adam learning rate %g", config.LR)
	}
	for i, beta := range config.Betas {
		if beta < 0 || beta >= 1 {
			return nil, errors.Errorf("invalid Adam beta%d %g, must be in [0, 1)", i+1, beta)
		}
	}
	if err := checkParams(params); err != nil {
		return nil, errors.WithMessage(err, "NewAdam")
	}
	return &Adam{
		params: params,
		lr:     config.LR,
		beta1:  config.Betas[0],
		beta2:  config.Betas[1],
		eps:    config.Eps,
		m:      make(map[*autodiff.Var]float64),
		v:      make(map[*autodiff.Var]float64),
	}, nil
}

// Step performs a single optimization step.
func (a *Adam) Step() {
	a.t++
	biasCorrection1 := 1 - math.Pow(a.beta1, float64(a.t))
	biasCorrection2 := 1 - math.Pow(a.beta2, float64(a.t))
	for _, p := range a.params {
		if !p.HasGrad() {
			continue
		}
		g := p.Grad()
		m := a.beta1*a.m[p] + (1-a.beta1)*g
		v := a.beta2*a.v[p] + (1-a.beta2)*g*g
		a.m[p], a.v[p] = m, v
		mHat := m / biasCorrection1
		vHat := v / biasCorrection2
		p.Set(p.Val() - a.lr*mHat/(math.Sqrt(vHat)+a.eps))
	}
}

// ZeroGrad clears gradients for all parameters.
func (a *Adam) ZeroGrad() {
	zeroGrad(a.params)
}

// Params returns the parameters being optimized.
func (a *Adam) Params() []*autodiff.Var {
	return a.params
}

// GetLR returns the current learning rate.
func (a *Adam) GetLR() float64 {
	return a.lr
}
