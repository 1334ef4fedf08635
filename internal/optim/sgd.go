package optim

import (
	"github.com/born-ml/scalar/internal/autodiff"
)

// SGD implements Stochastic Gradient Descent optimizer with optional momentum.
//
// Update rule without momentum:
//
//	param = param - lr * gradient
//
// Update rule with momentum:
//
//	velocity = momentum * velocity + gradient
//	param = param - lr * velocity
//
// When MaxGradNorm is set, the gradients of all parameters are first scaled
// together so that their global L2 norm does not exceed it.
//
// Example:
//
//	optimizer := optim.NewSGD(model.Parameters(), optim.SGDConfig{
//	    LR:       0.05,
//	    Momentum: 0.9,
//	})
type SGD struct {
	params      []*autodiff.Value
	lr          float64
	momentum    float64
	maxGradNorm float64
	velocities  []float64
	lastNorm    float64
}

// SGDConfig holds configuration for SGD optimizer.
type SGDConfig struct {
	LR          float64 // Learning rate (default: 0.01)
	Momentum    float64 // Momentum factor (default: 0.0, range: [0, 1))
	MaxGradNorm float64 // Global gradient norm limit (default: 0, no clipping)
}

// NewSGD creates a new SGD optimizer.
//
// Parameters:
//   - params: Model parameters to optimize
//   - config: SGD configuration (LR, Momentum, MaxGradNorm)
//
// Returns a new SGD optimizer.
func NewSGD(params []*autodiff.Value, config SGDConfig) *SGD {
	if config.LR == 0 {
		config.LR = 0.01
	}

	return &SGD{
		params:      params,
		lr:          config.LR,
		momentum:    config.Momentum,
		maxGradNorm: config.MaxGradNorm,
		velocities:  make([]float64, len(params)),
	}
}

// Step performs a single optimization step.
func (s *SGD) Step() {
	grads := gradients(s.params)
	if s.maxGradNorm > 0 {
		s.lastNorm = clipByNorm(grads, s.maxGradNorm)
	}

	for i, param := range s.params {
		update := grads[i]
		if s.momentum != 0 {
			s.velocities[i] = s.momentum*s.velocities[i] + grads[i]
			update = s.velocities[i]
		}
		param.SetData(param.Data() - s.lr*update)
	}
}

// ZeroGrad clears gradients for all parameters.
func (s *SGD) ZeroGrad() {
	zeroGrad(s.params)
}

// GetLR returns the current learning rate.
func (s *SGD) GetLR() float64 {
	return s.lr
}

// SetLR updates the learning rate.
//
// Useful for learning rate scheduling during training.
func (s *SGD) SetLR(lr float64) {
	s.lr = lr
}

// LastGradNorm returns the gradient norm measured before clipping in the
// most recent Step. Zero when clipping is disabled.
func (s *SGD) LastGradNorm() float64 {
	return s.lastNorm
}
