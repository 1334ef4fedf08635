package nn

import (
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff"
)

// Neuron computes act(Σ wᵢ·xᵢ + b) over scalar inputs.
//
// Weights and bias are leaf nodes created once and reused by every Forward
// call, so gradients from successive passes land on the same parameters.
//
// Example:
//
//	n := nn.NewNeuron(2, nn.Tanh, nn.Uniform(rng, -1, 1))
//	out := n.Forward(nn.Inputs(2.0, 0.0))[0]
type Neuron struct {
	weights    []*autodiff.Value
	bias       *autodiff.Value
	activation Activation
}

// NewNeuron creates a neuron with nin weights and one bias.
//
// Weights are drawn from init in order, then the bias.
// Panics if nin is not positive.
func NewNeuron(nin int, activation Activation, init Initializer) *Neuron {
	if nin <= 0 {
		panic(fmt.Sprintf("nn: neuron needs at least one input, got %d", nin))
	}

	weights := make([]*autodiff.Value, nin)
	for i := range weights {
		weights[i] = autodiff.NewLabeled(init(), fmt.Sprintf("w%d", i))
	}

	return &Neuron{
		weights:    weights,
		bias:       autodiff.NewLabeled(init(), "b"),
		activation: activation,
	}
}

// Forward returns a single node: act(Σ wᵢ·xᵢ + b).
//
// Panics if len(inputs) differs from the neuron's input arity.
func (n *Neuron) Forward(inputs []*autodiff.Value) []*autodiff.Value {
	return []*autodiff.Value{n.Activate(inputs)}
}

// Activate is Forward for callers that want the node itself.
func (n *Neuron) Activate(inputs []*autodiff.Value) *autodiff.Value {
	if len(inputs) != len(n.weights) {
		panic(fmt.Sprintf("nn: neuron expects %d inputs, got %d", len(n.weights), len(inputs)))
	}

	act := n.bias
	for i, w := range n.weights {
		act = w.Mul(inputs[i]).Add(act)
	}

	return n.activation.Apply(act)
}

// Weights returns the weight nodes in input order.
func (n *Neuron) Weights() []*autodiff.Value {
	return append([]*autodiff.Value(nil), n.weights...)
}

// Bias returns the bias node.
func (n *Neuron) Bias() *autodiff.Value {
	return n.bias
}

// NumInputs returns the neuron's input arity.
func (n *Neuron) NumInputs() int {
	return len(n.weights)
}

// Parameters returns the weights followed by the bias.
func (n *Neuron) Parameters() []*autodiff.Value {
	params := make([]*autodiff.Value, 0, len(n.weights)+1)
	params = append(params, n.weights...)
	return append(params, n.bias)
}

// String implements fmt.Stringer.
func (n *Neuron) String() string {
	return fmt.Sprintf("%sNeuron(%d)", n.activation, len(n.weights))
}
