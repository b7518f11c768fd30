// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package optim

import (
	"context"

	"github.com/born-ml/scalarad/autodiff"
	"github.com/born-ml/scalarad/internal/optim"
)

// Optimizer interface defines the common interface for all optimizers.
type Optimizer = optim.Optimizer

// ErrNonFinite is returned by Minimize when the loss becomes Inf or NaN.
var ErrNonFinite = optim.ErrNonFinite

// SGD (Stochastic Gradient Descent)

// SGD represents the SGD optimizer with optional momentum.
type SGD = optim.SGD

// SGDConfig contains configuration for SGD optimizer.
type SGDConfig = optim.SGDConfig

// NewSGD creates a new SGD optimizer over leaf Vars.
//
// Example:
//
//	x := autodiff.Named("x", 5)
//	optimizer, err := optim.NewSGD(
//	    []*autodiff.Var{x},
//	    optim.SGDConfig{
//	        LR:       0.1,
//	        Momentum: 0.9,
//	    },
//	)
func NewSGD(params []*autodiff.Var, config SGDConfig) (*SGD, error) {
	return optim.NewSGD(params, config)
}

// Adam (Adaptive Moment Estimation)

// Adam represents the Adam optimizer.
type Adam = optim.Adam

// AdamConfig contains configuration for Adam optimizer.
type AdamConfig = optim.AdamConfig

// NewAdam creates a new Adam optimizer with bias correction.
//
// Example:
//
//	optimizer, err := optim.NewAdam(
//	    []*autodiff.Var{x, y},
//	    optim.AdamConfig{
//	        LR:    0.01,
//	        Betas: [2]float64{0.9, 0.999},
//	    },
//	)
func NewAdam(params []*autodiff.Var, config AdamConfig) (*Adam, error) {
	return optim.NewAdam(params, config)
}

// Minimize repeatedly evaluates loss, backpropagates and steps opt, and
// returns the loss at the final parameters.
func Minimize(ctx context.Context, loss *autodiff.Var, opt Optimizer, steps int) (float64, error) {
	return optim.Minimize(ctx, loss, opt, steps)
}
