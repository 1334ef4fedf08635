package optim_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/scalar/internal/autodiff"
	"github.com/born-ml/scalar/internal/nn"
	"github.com/born-ml/scalar/internal/optim"
)

// withGrad returns a leaf holding value whose gradient is grad.
func withGrad(value, grad float64) *autodiff.Value {
	x := autodiff.NewValue(value)
	autodiff.Backward(x.MulScalar(grad))
	return x
}

func TestSGD_SimpleUpdate(t *testing.T) {
	x := withGrad(2.0, 1.0)
	optimizer := optim.NewSGD([]*autodiff.Value{x}, optim.SGDConfig{LR: 0.1})

	optimizer.Step()

	// x_new = x_old - lr * grad = 2.0 - 0.1 * 1.0 = 1.9
	assert.InDelta(t, 1.9, x.Data(), 1e-12)
}

func TestSGD_WithMomentum(t *testing.T) {
	x := withGrad(1.0, 1.0)
	optimizer := optim.NewSGD([]*autodiff.Value{x}, optim.SGDConfig{LR: 0.1, Momentum: 0.9})

	// Step 1: v = 1, x = 1 - 0.1 = 0.9
	optimizer.Step()
	assert.InDelta(t, 0.9, x.Data(), 1e-12)

	// Step 2 with the same gradient: v = 0.9 + 1 = 1.9, x = 0.9 - 0.19 = 0.71
	optimizer.Step()
	assert.InDelta(t, 0.71, x.Data(), 1e-12)
}

func TestSGD_Defaults(t *testing.T) {
	optimizer := optim.NewSGD(nil, optim.SGDConfig{})
	assert.Equal(t, 0.01, optimizer.GetLR())

	optimizer.SetLR(0.001)
	assert.Equal(t, 0.001, optimizer.GetLR())
}

func TestOptimizers_LRFromConfig(t *testing.T) {
	p := []*autodiff.Value{withGrad(1, 2)}
	tests := []struct {
		name      string
		optimizer optim.Optimizer
		want      float64
	}{
		{"sgd", optim.NewSGD(p, optim.SGDConfig{LR: 0.3}), 0.3},
		{"adam", optim.NewAdam(p, optim.AdamConfig{LR: 0.02}), 0.02},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.optimizer.GetLR())
		})
	}
}

func TestSGD_GradientClipping(t *testing.T) {
	a := withGrad(0, 3)
	b := withGrad(0, 4)
	params := []*autodiff.Value{a, b}
	require.InDelta(t, 5.0, optim.GradNorm(params), 1e-12)

	optimizer := optim.NewSGD(params, optim.SGDConfig{LR: 1, MaxGradNorm: 1})
	optimizer.Step()

	assert.InDelta(t, 5.0, optimizer.LastGradNorm(), 1e-12)
	assert.InDelta(t, -0.6, a.Data(), 1e-12)
	assert.InDelta(t, -0.8, b.Data(), 1e-12)

	// Gradients on the parameters themselves are untouched.
	assert.Equal(t, 3.0, a.Grad())
}

func TestSGD_ClippingInactiveBelowLimit(t *testing.T) {
	a := withGrad(0, 0.3)
	optimizer := optim.NewSGD([]*autodiff.Value{a}, optim.SGDConfig{LR: 1, MaxGradNorm: 1})

	optimizer.Step()

	assert.InDelta(t, -0.3, a.Data(), 1e-12)
}

func TestGradNorm_Empty(t *testing.T) {
	assert.Zero(t, optim.GradNorm(nil))
}

func TestAdam_SimpleUpdate(t *testing.T) {
	x := withGrad(1.0, 1.0)
	optimizer := optim.NewAdam([]*autodiff.Value{x}, optim.AdamConfig{
		LR:    0.001,
		Betas: [2]float64{0.9, 0.999},
		Eps:   1e-8,
	})

	optimizer.Step()

	// m_hat = v_hat = 1, so x_new = 1.0 - 0.001 * 1 / (1 + 1e-8) ≈ 0.999
	assert.InDelta(t, 0.999, x.Data(), 1e-9)
	assert.Equal(t, 1, optimizer.GetTimestep())
}

func TestAdam_Defaults(t *testing.T) {
	optimizer := optim.NewAdam(nil, optim.AdamConfig{})
	assert.Equal(t, 0.001, optimizer.GetLR())
	assert.Equal(t, 0, optimizer.GetTimestep())

	optimizer.SetLR(0.01)
	assert.Equal(t, 0.01, optimizer.GetLR())
}

func TestOptimizers_ZeroGrad(t *testing.T) {
	optimizers := map[string]func([]*autodiff.Value) optim.Optimizer{
		"sgd":  func(p []*autodiff.Value) optim.Optimizer { return optim.NewSGD(p, optim.SGDConfig{}) },
		"adam": func(p []*autodiff.Value) optim.Optimizer { return optim.NewAdam(p, optim.AdamConfig{}) },
	}

	for name, build := range optimizers {
		t.Run(name, func(t *testing.T) {
			x := withGrad(1, 5)
			optimizer := build([]*autodiff.Value{x})

			optimizer.ZeroGrad()

			assert.Zero(t, x.Grad())
		})
	}
}

// toy dataset: four samples with three features and ±1 targets.
var (
	toyInputs = [][]float64{
		{2.0, 3.0, -1.0},
		{3.0, -1.0, 0.5},
		{0.5, 1.0, 1.0},
		{1.0, 1.0, -1.0},
	}
	toyTargets = []float64{1.0, -1.0, -1.0, 1.0}
)

func toyLoss(t *testing.T, model *nn.MLP) *autodiff.Value {
	t.Helper()
	preds := make([]*autodiff.Value, len(toyInputs))
	for i, x := range toyInputs {
		preds[i] = model.Output(nn.Inputs(x...))
	}
	loss, err := nn.SumSquaredError(preds, toyTargets)
	require.NoError(t, err)
	return loss
}

func TestOptimizers_TrainToyDataset(t *testing.T) {
	tests := []struct {
		name  string
		build func([]*autodiff.Value) optim.Optimizer
	}{
		{"sgd", func(p []*autodiff.Value) optim.Optimizer {
			return optim.NewSGD(p, optim.SGDConfig{LR: 0.05})
		}},
		{"sgd momentum clipped", func(p []*autodiff.Value) optim.Optimizer {
			return optim.NewSGD(p, optim.SGDConfig{LR: 0.01, Momentum: 0.9, MaxGradNorm: 5})
		}},
		{"adam", func(p []*autodiff.Value) optim.Optimizer {
			return optim.NewAdam(p, optim.AdamConfig{LR: 0.05})
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1337))
			model := nn.NewMLP(3, []int{4, 4, 1}, nn.Uniform(rng, -1, 1))
			optimizer := tt.build(model.Parameters())

			initial := toyLoss(t, model).Data()
			var final float64
			for range 200 {
				loss := toyLoss(t, model)
				optimizer.ZeroGrad()
				autodiff.Backward(loss)
				optimizer.Step()
				final = loss.Data()
			}

			require.False(t, math.IsNaN(final))
			assert.Less(t, final, initial)
			assert.Less(t, final, 0.5)
		})
	}
}
