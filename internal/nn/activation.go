package nn

import (
	"fmt"

	"github.com/born-ml/scalar/internal/autodiff"
)

// Activation selects the nonlinearity a Neuron applies to its weighted sum.
type Activation uint8

// Supported activations. Tanh is the zero value.
const (
	Tanh Activation = iota
	ReLU
	Linear
)

// String implements fmt.Stringer.
func (a Activation) String() string {
	switch a {
	case Tanh:
		return "tanh"
	case ReLU:
		return "relu"
	case Linear:
		return "linear"
	default:
		return fmt.Sprintf("Activation(%d)", uint8(a))
	}
}

// Apply builds the activation on top of x.
func (a Activation) Apply(x *autodiff.Value) *autodiff.Value {
	switch a {
	case Tanh:
		return x.Tanh()
	case ReLU:
		return x.ReLU()
	case Linear:
		return x
	default:
		panic(fmt.Sprintf("nn: unknown activation %v", a))
	}
}
