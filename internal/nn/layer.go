package nn

import (
	"fmt"
	"strings"

	"github.com/born-ml/scalar/internal/autodiff"
)

// Layer is a set of neurons evaluated on the same input.
//
// The layer's output arity equals its neuron count.
type Layer struct {
	neurons []*Neuron
}

// NewLayer creates nout neurons, each with nin inputs.
//
// Panics if nin or nout is not positive.
func NewLayer(nin, nout int, activation Activation, init Initializer) *Layer {
	if nout <= 0 {
		panic(fmt.Sprintf("nn: layer needs at least one neuron, got %d", nout))
	}

	neurons := make([]*Neuron, nout)
	for i := range neurons {
		neurons[i] = NewNeuron(nin, activation, init)
	}

	return &Layer{neurons: neurons}
}

// Forward evaluates every neuron on inputs, in neuron order.
func (l *Layer) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	outs := make([]*autodiff.Value, len(l.neurons))
	for i, n := range l.neurons {
		outs[i] = n.Activate(inputs)
	}
	return outs
}

// Neurons returns the layer's neurons.
func (l *Layer) Neurons() []*Neuron {
	return append([]*Neuron(nil), l.neurons...)
}

// NumInputs returns the layer's input arity.
func (l *Layer) NumInputs() int {
	return l.neurons[0].NumInputs()
}

// NumOutputs returns the layer's output arity.
func (l *Layer) NumOutputs() int {
	return len(l.neurons)
}

// Parameters returns the concatenated parameters of all neurons.
func (l *Layer) Parameters() []*autodiff.Value {
	var params []*autodiff.Value
	for _, n := range l.neurons {
		params = append(params, n.Parameters()...)
	}
	return params
}

// String implements fmt.Stringer.
func (l *Layer) String() string {
	parts := make([]string, len(l.neurons))
	for i, n := range l.neurons {
		parts[i] = n.String()
	}
	return "Layer of [" + strings.Join(parts, ", ") + "]"
}
