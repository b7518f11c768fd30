// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides gradient-based optimizers over scalar leaves.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//   - Minimize: the standard optimization loop
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/scalarad/autodiff"
//	    "github.com/born-ml/scalarad/optim"
//	)
//
//	func main() {
//	    x := autodiff.Named("x", 5)
//	    loss := x.Sub(autodiff.New(2)).Square()
//
//	    optimizer, err := optim.NewSGD(
//	        []*autodiff.Var{x},
//	        optim.SGDConfig{LR: 0.1},
//	    )
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    final, err := optim.Minimize(context.Background(), loss, optimizer, 100)
//	    // x.Val() is now close to 2
//	}
//
// # Training Loop Pattern
//
// Minimize is equivalent to:
//
//	for range steps {
//	    // 1. Refresh the loss for the current parameters
//	    loss.Evaluate()
//
//	    // 2. Zero gradients, including parameters outside the loss graph
//	    loss.ZeroGrad()
//	    optimizer.ZeroGrad()
//
//	    // 3. Backward pass
//	    loss.Backward(1)
//
//	    // 4. Update parameters
//	    optimizer.Step()
//	}
package optim
