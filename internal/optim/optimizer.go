// Package optim implements gradient-based optimizers over scalar leaves.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation
//   - Minimize: the evaluate / zero-grad / backward / step loop
//
// Example usage:
//
//	x := autodiff.Named("x", 5)
//	loss := x.Sub(autodiff.New(2)).Square()
//
//	sgd, err := optim.NewSGD([]*autodiff.Var{x}, optim.SGDConfig{LR: 0.1})
//	if err != nil {
//	    return err
//	}
//	final, err := optim.Minimize(ctx, loss, sgd, 100)
package optim

import (
	"context"
	"math"

	"github.com/born-ml/scalarad/internal/autodiff"
	"github.com/pkg/errors"
	"k8s.io/klog/v2"
)

// ErrNonFinite is returned by Minimize when the loss becomes Inf or NaN.
var ErrNonFinite = errors.New("loss is not finite")

// Optimizer is the base interface for all optimization algorithms.
//
// Optimizers update leaf Vars in place, using the gradients accumulated on
// them by the last backward pass.
type Optimizer interface {
	// Step applies one update to every parameter.
	//
	// Parameters whose gradient was never initialized (not reachable from
	// the differentiated output) are skipped.
	Step()

	// ZeroGrad resets the gradient of every parameter.
	ZeroGrad()

	// Params returns the parameters being optimized.
	Params() []*autodiff.Var

	// GetLR returns the current learning rate.
	GetLR() float64
}

// checkParams returns an error if a parameter is nil or is not a leaf: the
// stored value of a derived Var would be overwritten by the next Evaluate.
func checkParams(params []*autodiff.Var) error {
	for i, p := range params {
		if p == nil {
			return errors.Errorf("parameter #%d is nil", i)
		}
		if !p.IsLeaf() {
			return errors.Errorf("parameter #%d (%s) is not a leaf", i, p)
		}
	}
	return nil
}

// zeroGrad resets the gradients of params.
func zeroGrad(params []*autodiff.Var) {
	for _, p := range params {
		p.ZeroGrad()
	}
}

// Minimize runs steps iterations of: refresh loss, reset the gradients of the
// graph and of the optimizer's parameters, backpropagate, update parameters.
// It returns the loss evaluated at the final parameters.
//
// The context is checked between steps. Minimize stops with ErrNonFinite if
// the loss becomes Inf or NaN.
func Minimize(ctx context.Context, loss *autodiff.Var, opt Optimizer, steps int) (float64, error) {
	if steps < 0 {
		return math.NaN(), errors.Errorf("invalid number of steps %d", steps)
	}
	tape := autodiff.NewTape(loss)
	for step := 0; step < steps; step++ {
		if err := ctx.Err(); err != nil {
			return tape.Output().Val(), errors.Wrapf(err, "minimize interrupted at step %d", step)
		}
		value := tape.Evaluate()
		if math.IsInf(value, 0) || math.IsNaN(value) {
			return value, errors.Wrapf(ErrNonFinite, "step %d: loss=%g", step, value)
		}
		// Parameters outside the loss graph are not reached by the tape.
		tape.ZeroGrad()
		opt.ZeroGrad()
		tape.Backward(1)
		opt.Step()
		klog.V(2).Infof("step %d: loss=%g lr=%g", step, value, opt.GetLR())
	}
	return tape.Evaluate(), nil
}
