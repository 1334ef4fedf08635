// Package optim implements optimization algorithms for training scalar networks.
//
// This package provides:
//   - Optimizer interface: Base interface for all optimizers
//   - SGD: Stochastic Gradient Descent with momentum and gradient clipping
//   - Adam: Adaptive Moment Estimation
//
// Optimizers read each parameter's accumulated gradient and write the new
// value back with Value.SetData. Parameters are leaves, so the forward graph
// has to be rebuilt after every Step.
//
// Example usage:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{LR: 0.05})
//
//	for step := range steps {
//	    loss, _ := nn.MSE(predict(model, xs), ys)
//
//	    optimizer.ZeroGrad()
//	    autodiff.Backward(loss)
//	    optimizer.Step()
//	}
package optim

import (
	"gonum.org/v1/gonum/floats"

	"github.com/born-ml/scalar/internal/autodiff"
)

// Optimizer is the base interface for all optimization algorithms.
//
// All optimizers must implement:
//   - Step: Apply gradient updates to parameters
//   - ZeroGrad: Clear gradients before next iteration
//   - GetLR: Get current learning rate (for monitoring/scheduling)
type Optimizer interface {
	// Step applies one update to every parameter using its current gradient.
	Step()

	// ZeroGrad clears all parameter gradients.
	//
	// Backward accumulates, so this should be called before each backward
	// pass to prevent mixing gradients from previous iterations.
	ZeroGrad()

	// GetLR returns the current learning rate.
	GetLR() float64
}

// gradients copies the current gradient of each parameter.
func gradients(params []*autodiff.Value) []float64 {
	grads := make([]float64, len(params))
	for i, p := range params {
		grads[i] = p.Grad()
	}
	return grads
}

// GradNorm returns the global L2 norm of the parameters' gradients.
func GradNorm(params []*autodiff.Value) float64 {
	if len(params) == 0 {
		return 0
	}
	return floats.Norm(gradients(params), 2)
}

// clipByNorm rescales grads in place so their L2 norm is at most maxNorm.
// Returns the norm before clipping.
func clipByNorm(grads []float64, maxNorm float64) float64 {
	norm := floats.Norm(grads, 2)
	if norm > maxNorm && norm > 0 {
		floats.Scale(maxNorm/norm, grads)
	}
	return norm
}

func zeroGrad(params []*autodiff.Value) {
	for _, p := range params {
		p.ZeroGrad()
	}
}
