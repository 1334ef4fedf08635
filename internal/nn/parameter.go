package nn

import (
	"github.com/born-ml/scalar/internal/autodiff"
)

// Inputs wraps raw numbers as leaf nodes, ready to feed into Forward.
func Inputs(xs ...float64) []*autodiff.Value {
	out := make([]*autodiff.Value, len(xs))
	for i, x := range xs {
		out[i] = autodiff.NewValue(x)
	}
	return out
}

// Values returns the forward values of nodes.
func Values(nodes []*autodiff.Value) []float64 {
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = n.Data()
	}
	return out
}

// Grads returns the accumulated gradients of nodes.
func Grads(nodes []*autodiff.Value) []float64 {
	out := make([]float64, len(nodes))
	for i, n := range nodes {
		out[i] = n.Grad()
	}
	return out
}

// ZeroGrad clears the gradient of every parameter.
//
// Backward accumulates, so this should be called before each training
// iteration to avoid mixing gradients from previous iterations.
func ZeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
