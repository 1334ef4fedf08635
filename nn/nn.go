// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package nn

import (
	"math/rand"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/nn"
)

// Module interface defines the common interface for all neural network modules.
type Module = nn.Module

// Neuron computes act(Σ wᵢ·xᵢ + b).
type Neuron = nn.Neuron

// Layer is a set of neurons evaluated on the same input.
type Layer = nn.Layer

// MLP is a multi-layer perceptron.
type MLP = nn.MLP

// Activation selects a neuron's nonlinearity.
type Activation = nn.Activation

// Activations.
const (
	Tanh   = nn.Tanh
	ReLU   = nn.ReLU
	Linear = nn.Linear
)

// Initializer supplies initial parameter values.
type Initializer = nn.Initializer

// Errors.
var (
	ErrLengthMismatch = nn.ErrLengthMismatch
	ErrStateMismatch  = nn.ErrStateMismatch
)

// Layers

// NewNeuron creates a neuron with nin inputs.
func NewNeuron(nin int, activation Activation, init Initializer) *Neuron {
	return nn.NewNeuron(nin, activation, init)
}

// NewLayer creates a layer of nout neurons with nin inputs each.
func NewLayer(nin, nout int, activation Activation, init Initializer) *Layer {
	return nn.NewLayer(nin, nout, activation, init)
}

// NewMLP creates a tanh MLP with nin inputs and the given layer sizes.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.Uniform(rng, -1, 1))
func NewMLP(nin int, sizes []int, init Initializer) *MLP {
	return nn.NewMLP(nin, sizes, init)
}

// NewSequential chains already-built layers into an MLP.
func NewSequential(layers ...*Layer) *MLP {
	return nn.NewSequential(layers...)
}

// Initialization

// Uniform draws initial values from U(lo, hi).
func Uniform(rng *rand.Rand, lo, hi float64) Initializer {
	return nn.Uniform(rng, lo, hi)
}

// Xavier draws initial values with Glorot uniform scaling.
func Xavier(rng *rand.Rand, fanIn, fanOut int) Initializer {
	return nn.Xavier(rng, fanIn, fanOut)
}

// Constant initializes every parameter to v.
func Constant(v float64) Initializer {
	return nn.Constant(v)
}

// Sequence initializes parameters from values, in order.
func Sequence(values ...float64) Initializer {
	return nn.Sequence(values...)
}

// Loss functions

// SumSquaredError computes Σ (predictionᵢ - targetᵢ)².
func SumSquaredError(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	return nn.SumSquaredError(predictions, targets)
}

// MSE computes mean((predictions - targets)²).
func MSE(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	return nn.MSE(predictions, targets)
}

// Hinge computes the mean max-margin loss for ±1 targets.
func Hinge(predictions []*autodiff.Value, targets []float64) (*autodiff.Value, error) {
	return nn.Hinge(predictions, targets)
}

// Helpers

// Inputs wraps raw numbers as leaf nodes.
func Inputs(xs ...float64) []*autodiff.Value {
	return nn.Inputs(xs...)
}

// Values returns the forward values of nodes.
func Values(nodes []*autodiff.Value) []float64 {
	return nn.Values(nodes)
}

// Grads returns the gradients of nodes.
func Grads(nodes []*autodiff.Value) []float64 {
	return nn.Grads(nodes)
}

// ZeroGrad clears the gradients of params.
func ZeroGrad(params []*autodiff.Value) {
	nn.ZeroGrad(params)
}
