// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package nn provides neurons, layers and multi-layer perceptrons built on
// the scalar autodiff engine.
//
// # Overview
//
// This package contains:
//   - Neuron: act(Σ wᵢ·xᵢ + b) with tanh, relu or linear activation
//   - Layer: neurons sharing one input
//   - MLP: layers evaluated in sequence
//   - Initializers: Uniform, Xavier, Constant, Sequence
//   - Loss functions: SumSquaredError, MSE, Hinge
//
// # Basic Usage
//
//	import (
//	    "math/rand"
//
//	    "github.com/born-ml/scalar/autodiff"
//	    "github.com/born-ml/scalar/nn"
//	)
//
//	func main() {
//	    rng := rand.New(rand.NewSource(42))
//	    model := nn.NewMLP(3, []int{4, 4, 1}, nn.Uniform(rng, -1, 1))
//
//	    pred := model.Output(nn.Inputs(2.0, 3.0, -1.0))
//	    loss, _ := nn.MSE([]*autodiff.Value{pred}, []float64{1.0})
//
//	    nn.ZeroGrad(model.Parameters())
//	    autodiff.Backward(loss)
//	}
//
// Parameters are leaf Values. Their gradients accumulate across Backward
// calls, so training loops clear them with ZeroGrad (or an optimizer's
// ZeroGrad) before every pass.
//
// MLP.Save and MLP.Load checkpoint parameter values in SafeTensors format.
package nn
