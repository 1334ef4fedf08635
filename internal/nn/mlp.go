package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/scalar/internal/autodiff"
)

// MLP is a multi-layer perceptron: layers chained so that each layer's
// outputs become the next layer's inputs.
//
// Example:
//
//	model := nn.NewMLP(3, []int{4, 4, 1}, nn.Uniform(rng, -1, 1))
//	pred := model.Output(nn.Inputs(2.0, 3.0, -1.0))
//
// This is equivalent to:
//
//	h1 := layer1.Forward(x)
//	h2 := layer2.Forward(h1)
//	pred := layer3.Forward(h2)[0]
type MLP struct {
	layers []*Layer
}

// NewMLP creates an MLP with nin inputs and one tanh layer per entry in sizes.
//
// Parameters:
//   - nin: Number of inputs
//   - sizes: Neuron count of each layer, first to last
//   - init: Source of initial weights and biases
//
// Panics if sizes is empty or contains a non-positive size.
func NewMLP(nin int, sizes []int, init Initializer) *MLP {
	if len(sizes) == 0 {
		panic("nn: MLP needs at least one layer")
	}

	layers := make([]*Layer, len(sizes))
	in := nin
	for i, size := range sizes {
		layers[i] = NewLayer(in, size, Tanh, init)
		in = size
	}

	return &MLP{layers: layers}
}

// NewSequential chains already-built layers.
//
// Panics if adjacent arities do not match.
func NewSequential(layers ...*Layer) *MLP {
	if len(layers) == 0 {
		panic("nn: MLP needs at least one layer")
	}
	for i := 1; i < len(layers); i++ {
		if layers[i].NumInputs() != layers[i-1].NumOutputs() {
			panic(fmt.Sprintf("nn: layer %d expects %d inputs, layer %d produces %d",
				i, layers[i].NumInputs(), i-1, layers[i-1].NumOutputs()))
		}
	}
	return &MLP{layers: append([]*Layer(nil), layers...)}
}

// Forward applies all layers in sequence.
func (m *MLP) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	output := inputs
	for _, layer := range m.layers {
		output = layer.Forward(output)
	}
	return output
}

// Output evaluates the network and returns its single output node.
//
// Panics if the last layer has more than one neuron.
func (m *MLP) Output(inputs []*autodiff.Value) *autodiff.Value {
	if n := m.NumOutputs(); n != 1 {
		panic(fmt.Sprintf("nn: Output on MLP with %d outputs", n))
	}
	return m.Forward(inputs)[0]
}

// Layers returns the network's layers, first to last.
func (m *MLP) Layers() []*Layer {
	return append([]*Layer(nil), m.layers...)
}

// NumInputs returns the network's input arity.
func (m *MLP) NumInputs() int {
	return m.layers[0].NumInputs()
}

// NumOutputs returns the network's output arity.
func (m *MLP) NumOutputs() int {
	return m.layers[len(m.layers)-1].NumOutputs()
}

// Parameters returns all trainable parameters, layer by layer.
func (m *MLP) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, layer := range m.layers {
		params = append(params, layer.Parameters()...)
	}
	return params
}

// String implements fmt.Stringer.
func (m *MLP) String() string {
	parts := make([]string, len(m.layers))
	for i, l := range m.layers {
		parts[i] = l.String()
	}
	return "MLP of [" + strings.Join(parts, ", ") + "]"
}
