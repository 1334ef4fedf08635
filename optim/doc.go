// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package optim provides optimization algorithms for training scalar networks.
//
// # Overview
//
// This package contains:
//   - SGD: Stochastic Gradient Descent with momentum and gradient clipping
//   - Adam: Adaptive Moment Estimation with bias correction
//   - Optimizer interface for custom optimizers
//
// # Optimizers
//
// SGD (Stochastic Gradient Descent):
//
//	optimizer := optim.NewSGD(
//	    model.Parameters(),
//	    optim.SGDConfig{
//	        LR:          0.05,
//	        Momentum:    0.9,
//	        MaxGradNorm: 5,
//	    },
//	)
//
// Adam (Adaptive Moment Estimation):
//
//	optimizer := optim.NewAdam(
//	    model.Parameters(),
//	    optim.AdamConfig{
//	        LR:    0.01,
//	        Betas: [2]float64{0.9, 0.999},
//	        Eps:   1e-8,
//	    },
//	)
//
// # Training Loop Pattern
//
//	for step := range numSteps {
//	    // 1. Forward pass (rebuilt every step: nodes never recompute)
//	    loss, _ := nn.MSE(predictions(model, xs), ys)
//
//	    // 2. Zero gradients
//	    optimizer.ZeroGrad()
//
//	    // 3. Backward pass
//	    autodiff.Backward(loss)
//
//	    // 4. Update parameters
//	    optimizer.Step()
//	}
package optim
