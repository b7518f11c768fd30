package optim

import (
	"github.com/born-ml/scalarad/internal/autodiff"
	"github.com/pkg/errors"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
type SGD struct {
	params     []*autodiff.Var
	lr         float64
	momentum   float64
	velocities map[*autodiff.Var]float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR       float64 // Learning rate (default: 0.01)
	Momentum float64 // Momentum factor (default: 0.0, range: [0, 1))
}

// NewSGD creates a new SGD optimizer over the given leaf Vars.
func NewSGD(params []*autodiff.Var, config SGDConfig) (*SGD, error) {
	if config.LR == 0 {
		config.LR = 0.01
	}
	if config.LR < 0 {
		return nil, errors.Errorf("invalid SGD learning rate %g", config.LR)
	}
	if config.Momentum < 0 || config.Momentum >= 1 {
		return nil, errors.Errorf("invalid SGD momentum %g, must be in [0, 1)", config.Momentum)
	}
	if err := checkParams(params); err != nil {
		return nil, errors.WithMessage(err, "NewSGD")
	}
	return &SGD{
		params:     params,
		lr:         config.LR,
		momentum:   config.Momentum,
		velocities: make(map[*autodiff.Var]float64),
	}, nil
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	for _, p := range s.params {
		if !p.HasGrad() {
			continue
		}
		update := p.Grad()
		if s.momentum != 0 {
			update += s.momentum * s.velocities[p]
			s.velocities[p] = update
		}
		p.Set(p.Val() - s.lr*update)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// Params returns the parameters being optimized.
func (s *SGD) Params() []*autodiff.Var {
	return s.params
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}
