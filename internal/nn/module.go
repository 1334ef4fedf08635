// Package nn implements neural network modules on top of the scalar autodiff engine.
//
// This package provides building blocks for small networks:
//   - Module interface: Base interface for all NN components
//   - Neuron: tanh(Σ wᵢ·xᵢ + b) over scalar inputs
//   - Layer: Neurons sharing one input
//   - MLP: Layers evaluated in sequence
//   - Initializers: Injected sources of initial parameter values
//   - Loss functions: SumSquaredError, MSE, Hinge
//
// Every module is built only from autodiff.Value operations, so a loss
// computed from a module's output can be differentiated with autodiff.Backward
// and the gradients read back from Parameters().
package nn

import (
	"github.com/born-ml/scalar/internal/autodiff"
)

// Module is the base interface for all neural network components.
//
// Every NN module must implement:
//   - Forward: Compute outputs from inputs
//   - Parameters: Return all trainable parameters
//
// Modules can be composed to build larger networks:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.Uniform(rng, -1, 1))
//	out := model.Forward(nn.Inputs(2.0, 3.0, -1.0))
type Module interface {
	// Forward builds the module's computation on top of the input nodes.
	//
	// The number of inputs must match the module's input arity.
	// Returns one node per output unit.
	Forward(inputs []*autodiff.Value) []*autodiff.Value

	// Parameters returns every trainable leaf node the module owns, in a
	// stable order. Optimizers update these through Value.SetData.
	Parameters() []*autodiff.Value
}
